package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rtservizi/fieldtrack/internal/store"
)

// PlantHandler manages plant endpoints.
type PlantHandler struct {
	store *store.Store
}

// NewPlantHandler constructs a PlantHandler.
func NewPlantHandler(st *store.Store) *PlantHandler {
	return &PlantHandler{store: st}
}

// createPlantRequest defines the request body for plant creation.
type createPlantRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Province    string `json:"province"`
	PostalCode  string `json:"postal_code"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Contact     string `json:"contact"`
	ClientID    uint64 `json:"client_id"`
}

// Create inserts a new plant.
func (h *PlantHandler) Create(c *gin.Context) {
	var body createPlantRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(body.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name"})
		return
	}
	if body.ClientID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing client_id"})
		return
	}

	plant, errCreate := h.store.CreatePlant(c.Request.Context(), store.PlantParams{
		Name:        strings.TrimSpace(body.Name),
		Address:     body.Address,
		City:        body.City,
		Province:    body.Province,
		PostalCode:  body.PostalCode,
		Email:       body.Email,
		PhoneNumber: body.PhoneNumber,
		Contact:     body.Contact,
		ClientID:    body.ClientID,
	})
	if errCreate != nil {
		respondStoreError(c, errCreate)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": plant.ID, "name": plant.Name, "client_id": plant.ClientID})
}

// ListForClient returns the plants owned by a client.
func (h *PlantHandler) ListForClient(c *gin.Context) {
	clientID, ok := parseIDParam(c)
	if !ok {
		return
	}
	rows, errList := h.store.ListPlantsForClient(c.Request.Context(), clientID)
	if errList != nil {
		respondStoreError(c, errList)
		return
	}
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"id":           row.ID,
			"name":         row.Name,
			"address":      row.Address,
			"city":         row.City,
			"province":     row.Province,
			"postal_code":  row.PostalCode,
			"email":        row.Email,
			"phone_number": row.PhoneNumber,
			"contact":      row.Contact,
			"client_id":    row.ClientID,
			"created_at":   row.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"plants": out})
}

// Delete removes a plant.
func (h *PlantHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if errDelete := h.store.DeletePlant(c.Request.Context(), id); errDelete != nil {
		respondStoreError(c, errDelete)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

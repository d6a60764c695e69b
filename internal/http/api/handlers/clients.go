package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rtservizi/fieldtrack/internal/store"
)

// ClientHandler manages client endpoints.
type ClientHandler struct {
	store *store.Store
}

// NewClientHandler constructs a ClientHandler.
func NewClientHandler(st *store.Store) *ClientHandler {
	return &ClientHandler{store: st}
}

// createClientRequest defines the request body for client creation.
type createClientRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Province    string `json:"province"`
	PostalCode  string `json:"postal_code"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Contact     string `json:"contact"`
}

// Create inserts a new client.
func (h *ClientHandler) Create(c *gin.Context) {
	var body createClientRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name"})
		return
	}

	client, errCreate := h.store.CreateClient(c.Request.Context(), store.ClientParams{
		Name:        name,
		Address:     body.Address,
		City:        body.City,
		Province:    body.Province,
		PostalCode:  body.PostalCode,
		Email:       body.Email,
		PhoneNumber: body.PhoneNumber,
		Contact:     body.Contact,
	})
	if errCreate != nil {
		respondStoreError(c, errCreate)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": client.ID, "name": client.Name})
}

// List returns clients, optionally narrowed by a name search.
func (h *ClientHandler) List(c *gin.Context) {
	rows, errList := h.store.ListClients(c.Request.Context(), strings.TrimSpace(c.Query("search")))
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
			"created_at":   row.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"clients": out})
}

// Delete removes a client.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if errDelete := h.store.DeleteClient(c.Request.Context(), id); errDelete != nil {
		respondStoreError(c, errDelete)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

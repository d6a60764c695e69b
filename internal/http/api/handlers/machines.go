package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rtservizi/fieldtrack/internal/store"
)

// MachineHandler manages machine endpoints.
type MachineHandler struct {
	store *store.Store
}

// NewMachineHandler constructs a MachineHandler.
func NewMachineHandler(st *store.Store) *MachineHandler {
	return &MachineHandler{store: st}
}

// createMachineRequest defines the request body for machine creation.
type createMachineRequest struct {
	Name           string `json:"name"`
	Code           string `json:"code"`
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	SerialNumber   string `json:"serial_number"`
	ProductionYear string `json:"production_year"`
	CostCenter     string `json:"cost_center"`
	Description    string `json:"description"`
	RoboticIsland  bool   `json:"robotic_island"`
	PlantID        uint64 `json:"plant_id"`
}

// Create inserts a new machine.
func (h *MachineHandler) Create(c *gin.Context) {
	var body createMachineRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(body.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name"})
		return
	}
	if body.PlantID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing plant_id"})
		return
	}

	machine, errCreate := h.store.CreateMachine(c.Request.Context(), store.MachineParams{
		Name:           strings.TrimSpace(body.Name),
		Code:           body.Code,
		Brand:          body.Brand,
		Model:          body.Model,
		SerialNumber:   body.SerialNumber,
		ProductionYear: body.ProductionYear,
		CostCenter:     body.CostCenter,
		Description:    body.Description,
		RoboticIsland:  body.RoboticIsland,
		PlantID:        body.PlantID,
	})
	if errCreate != nil {
		respondStoreError(c, errCreate)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": machine.ID, "name": machine.Name, "plant_id": machine.PlantID})
}

// ListForPlant returns the machines installed in a plant.
func (h *MachineHandler) ListForPlant(c *gin.Context) {
	plantID, ok := parseIDParam(c)
	if !ok {
		return
	}
	rows, errList := h.store.ListMachinesForPlant(c.Request.Context(), plantID)
	if errList != nil {
		respondStoreError(c, errList)
		return
	}
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"id":              row.ID,
			"name":            row.Name,
			"code":            row.Code,
			"brand":           row.Brand,
			"model":           row.Model,
			"serial_number":   row.SerialNumber,
			"production_year": row.ProductionYear,
			"cost_center":     row.CostCenter,
			"description":     row.Description,
			"robotic_island":  row.RoboticIsland,
			"plant_id":        row.PlantID,
			"created_at":      row.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"machines": out})
}

// List returns every machine joined to its owning plant and client.
func (h *MachineHandler) List(c *gin.Context) {
	rows, errList := h.store.ListMachinesWithOwners(c.Request.Context())
	if errList != nil {
		respondStoreError(c, errList)
		return
	}
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"id":              row.MachineID,
			"name":            row.Name,
			"code":            row.Code,
			"brand":           row.Brand,
			"model":           row.Model,
			"serial_number":   row.SerialNumber,
			"production_year": row.ProductionYear,
			"cost_center":     row.CostCenter,
			"description":     row.Description,
			"robotic_island":  row.RoboticIsland,
			"plant_id":        row.PlantID,
			"plant_name":      row.PlantName,
			"client_id":       row.ClientID,
			"client_name":     row.ClientName,
		})
	}
	c.JSON(http.StatusOK, gin.H{"machines": out})
}

// Delete removes a machine.
func (h *MachineHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if errDelete := h.store.DeleteMachine(c.Request.Context(), id); errDelete != nil {
		respondStoreError(c, errDelete)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

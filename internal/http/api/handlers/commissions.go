package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rtservizi/fieldtrack/internal/store"
)

// CommissionHandler manages commission endpoints.
type CommissionHandler struct {
	store *store.Store
}

// NewCommissionHandler constructs a CommissionHandler.
func NewCommissionHandler(st *store.Store) *CommissionHandler {
	return &CommissionHandler{store: st}
}

// createCommissionRequest defines the request body for commission creation.
type createCommissionRequest struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	ClientID    uint64 `json:"client_id"`
}

// Create inserts a new commission.
func (h *CommissionHandler) Create(c *gin.Context) {
	var body createCommissionRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	code := strings.TrimSpace(body.Code)
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
		return
	}
	if body.ClientID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing client_id"})
		return
	}

	commission, errCreate := h.store.CreateCommission(c.Request.Context(), store.CommissionParams{
		Code:        code,
		Description: body.Description,
		ClientID:    body.ClientID,
	})
	if errCreate != nil {
		respondStoreError(c, errCreate)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":        commission.ID,
		"code":      commission.Code,
		"status":    commission.Status,
		"client_id": commission.ClientID,
	})
}

// List returns every commission joined to its client for the acting user.
func (h *CommissionHandler) List(c *gin.Context) {
	acting, ok := actingUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing acting user"})
		return
	}
	rows, errList := h.store.ListCommissionsForUser(c.Request.Context(), acting.ID)
	if errList != nil {
		respondStoreError(c, errList)
		return
	}
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"id":          row.CommissionID,
			"code":        row.Code,
			"description": row.Description,
			"status":      row.Status,
			"client_id":   row.ClientID,
			"client_name": row.ClientName,
		})
	}
	c.JSON(http.StatusOK, gin.H{"commissions": out})
}

// Delete removes a commission.
func (h *CommissionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if errDelete := h.store.DeleteCommission(c.Request.Context(), id); errDelete != nil {
		respondStoreError(c, errDelete)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

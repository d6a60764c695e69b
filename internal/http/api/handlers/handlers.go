// Package handlers implements the gin endpoint handlers over the store.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rtservizi/fieldtrack/internal/models"
	"github.com/rtservizi/fieldtrack/internal/store"
	log "github.com/sirupsen/logrus"
)

// ContextUserKey is the gin context key holding the acting user.
const ContextUserKey = "actingUser"

// actingUser returns the authenticated user loaded by the auth middleware.
func actingUser(c *gin.Context) (*models.User, bool) {
	value, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// parseIDParam parses the :id path parameter.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, errParse := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if errParse != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// optionalIDQuery parses an optional numeric query parameter. Absent values
// and the historical "0" sentinel both mean "no filter".
func optionalIDQuery(c *gin.Context, name string) (*uint64, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	id, errParse := strconv.ParseUint(raw, 10, 64)
	if errParse != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return nil, false
	}
	if id == 0 {
		return nil, true
	}
	return &id, true
}

// respondStoreError maps store error kinds onto HTTP statuses.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("store operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

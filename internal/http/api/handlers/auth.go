package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rtservizi/fieldtrack/internal/config"
	"github.com/rtservizi/fieldtrack/internal/security"
	"github.com/rtservizi/fieldtrack/internal/store"
)

// AuthHandler manages the login endpoint.
type AuthHandler struct {
	store  *store.Store
	jwtCfg config.JWTConfig
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(st *store.Store, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{store: st, jwtCfg: jwtCfg}
}

// loginRequest defines the request body for login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and mints a login token.
func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	username := strings.TrimSpace(body.Username)
	if username == "" || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing credentials"})
		return
	}

	user, errFind := h.store.GetUserByUsername(c.Request.Context(), username)
	if errFind != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if !security.CheckPassword(user.Password, body.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, errMint := security.MintUserToken(h.jwtCfg.Secret, user.ID, h.jwtCfg.Expiry)
	if errMint != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mint token failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":                token,
		"user_id":              user.ID,
		"username":             user.Username,
		"role":                 user.Role,
		"must_change_password": user.TempPassword != "",
	})
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rtservizi/fieldtrack/internal/store"
)

// UserHandler manages user account endpoints.
type UserHandler struct {
	store *store.Store
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{store: st}
}

// createUserRequest defines the request body for user creation.
type createUserRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	Password    string `json:"password"`
}

// Create provisions a new user account. The temporary password is returned
// once so it can be handed to the operator for first login.
func (h *UserHandler) Create(c *gin.Context) {
	var body createUserRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	username := strings.TrimSpace(body.Username)
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing username"})
		return
	}
	email := strings.TrimSpace(body.Email)
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing email"})
		return
	}

	user, errCreate := h.store.CreateUser(c.Request.Context(), store.UserParams{
		FirstName:   strings.TrimSpace(body.FirstName),
		LastName:    strings.TrimSpace(body.LastName),
		Email:       email,
		PhoneNumber: strings.TrimSpace(body.PhoneNumber),
		Username:    username,
		Role:        strings.TrimSpace(body.Role),
		Password:    body.Password,
	})
	if errCreate != nil {
		respondStoreError(c, errCreate)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"email":         user.Email,
		"role":          user.Role,
		"temp_password": user.TempPassword,
	})
}

// List returns all user accounts.
func (h *UserHandler) List(c *gin.Context) {
	rows, errList := h.store.ListUsers(c.Request.Context())
	if errList != nil {
		respondStoreError(c, errList)
		return
	}
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"id":           row.ID,
			"first_name":   row.FirstName,
			"last_name":    row.LastName,
			"email":        row.Email,
			"phone_number": row.PhoneNumber,
			"username":     row.Username,
			"role":         row.Role,
			"is_protected": row.IsProtected,
			"created_at":   row.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

// Get returns a user by ID.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	user, errGet := h.store.GetUser(c.Request.Context(), id)
	if errGet != nil {
		respondStoreError(c, errGet)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"first_name":   user.FirstName,
		"last_name":    user.LastName,
		"email":        user.Email,
		"phone_number": user.PhoneNumber,
		"username":     user.Username,
		"role":         user.Role,
		"is_protected": user.IsProtected,
		"created_at":   user.CreatedAt,
	})
}

// Delete removes a user account.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	acting, ok := actingUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing acting user"})
		return
	}
	if errDelete := h.store.DeleteUser(c.Request.Context(), id, acting.ID); errDelete != nil {
		respondStoreError(c, errDelete)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

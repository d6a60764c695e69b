package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rtservizi/fieldtrack/internal/models"
	"github.com/rtservizi/fieldtrack/internal/security"
	"gorm.io/gorm"
)

// UserParams carries the fields of a new user account.
type UserParams struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Username    string
	Role        string
	Password    string // Optional; a temporary password is generated when empty.
}

// normalizeRole maps legacy localized role labels onto canonical roles.
func normalizeRole(role string) models.Role {
	switch role {
	case "Operatore":
		return models.RoleUser
	case "Dirigente":
		return models.RoleAdmin
	case string(models.RoleAdmin):
		return models.RoleAdmin
	default:
		return models.RoleUser
	}
}

// CreateUser provisions a new account. Username and email are each checked
// for uniqueness with distinct conflict messages. When no password is
// supplied a random temporary one is generated; the plaintext is retained in
// TempPassword for first-login flows while only the hash is used to sign in.
func (s *Store) CreateUser(ctx context.Context, p UserParams) (*models.User, error) {
	var existing models.User
	errFind := s.db.WithContext(ctx).Where("username = ?", p.Username).First(&existing).Error
	if errFind == nil {
		return nil, fmt.Errorf("%w: username %q already registered", ErrConflict, p.Username)
	}
	if !errors.Is(errFind, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", errFind)
	}

	errFind = s.db.WithContext(ctx).Where("email = ?", p.Email).First(&existing).Error
	if errFind == nil {
		return nil, fmt.Errorf("%w: email %q already registered", ErrConflict, p.Email)
	}
	if !errors.Is(errFind, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", errFind)
	}

	tempPassword := p.Password
	if tempPassword == "" {
		generated, errGen := security.GenerateTempPassword()
		if errGen != nil {
			return nil, fmt.Errorf("generate temp password: %w", errGen)
		}
		tempPassword = generated
	}
	hash, errHash := security.HashPassword(tempPassword)
	if errHash != nil {
		return nil, fmt.Errorf("hash password: %w", errHash)
	}

	user := models.User{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		PhoneNumber:  p.PhoneNumber,
		Username:     p.Username,
		Role:         normalizeRole(p.Role),
		Password:     hash,
		TempPassword: tempPassword,
		CreatedAt:    time.Now().UTC(),
	}
	if errCreate := s.db.WithContext(ctx).Create(&user).Error; errCreate != nil {
		return nil, fmt.Errorf("create user: %w", errCreate)
	}
	return &user, nil
}

// GetUser returns a user by ID.
func (s *Store) GetUser(ctx context.Context, userID uint64) (*models.User, error) {
	var user models.User
	if errFind := s.db.WithContext(ctx).First(&user, userID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("load user: %w", errFind)
	}
	return &user, nil
}

// GetUserByUsername returns a user by login name.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if errFind := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %q", ErrNotFound, username)
		}
		return nil, fmt.Errorf("load user: %w", errFind)
	}
	return &user, nil
}

// ListUsers returns all user accounts ordered by username.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var rows []models.User
	if errFind := s.db.WithContext(ctx).Order("username").Find(&rows).Error; errFind != nil {
		return nil, fmt.Errorf("list users: %w", errFind)
	}
	return rows, nil
}

// MarkUserProtected flags an account as protected from deletion.
func (s *Store) MarkUserProtected(ctx context.Context, userID uint64) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).Update("is_protected", true)
	if result.Error != nil {
		return fmt.Errorf("mark user protected: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	return nil
}

// DeleteUser removes a user account. Existence is checked first; then the
// delete is refused for protected accounts, for the acting user themself,
// and for admin accounts, in that priority order.
func (s *Store) DeleteUser(ctx context.Context, userID, actingUserID uint64) error {
	var user models.User
	if errFind := s.db.WithContext(ctx).First(&user, userID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return fmt.Errorf("load user: %w", errFind)
	}

	switch {
	case user.IsProtected:
		return fmt.Errorf("%w: user %d is protected", ErrForbidden, userID)
	case userID == actingUserID:
		return fmt.Errorf("%w: cannot delete yourself", ErrForbidden)
	case user.Role == models.RoleAdmin:
		return fmt.Errorf("%w: cannot delete an admin", ErrForbidden)
	}

	if errDelete := s.db.WithContext(ctx).Delete(&user).Error; errDelete != nil {
		return fmt.Errorf("delete user: %w", errDelete)
	}
	return nil
}

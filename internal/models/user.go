package models

import "time"

// Role identifies the authorization tier of a user account.
type Role string

const (
	// RoleUser is a regular operator account.
	RoleUser Role = "user"
	// RoleAdmin is an administrative account.
	RoleAdmin Role = "admin"
)

// User represents an operator account stored in the database.
type User struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	FirstName   string `gorm:"type:text"`                      // Given name.
	LastName    string `gorm:"type:text"`                      // Family name.
	Email       string `gorm:"type:text;not null;uniqueIndex"` // Unique email address.
	PhoneNumber string `gorm:"type:text"`                      // Contact phone number.
	Username    string `gorm:"type:text;not null;uniqueIndex"` // Unique login name.

	Role Role `gorm:"type:text;not null;default:'user'"` // Authorization tier.

	Password     string `gorm:"type:text;not null"` // Hashed password.
	TempPassword string `gorm:"type:text"`          // Plaintext temporary password for first-login flows.

	IsProtected bool `gorm:"not null;default:false"` // Protected accounts can never be deleted.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
}

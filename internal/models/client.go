package models

import "time"

// Client represents a customer company owning plants and commissions.
type Client struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Name        string `gorm:"type:text;not null;uniqueIndex"` // Unique company name.
	Address     string `gorm:"type:text"`                      // Street address.
	City        string `gorm:"type:text"`                      // City.
	Province    string `gorm:"type:text"`                      // Province code.
	PostalCode  string `gorm:"type:text"`                      // Postal code.
	Email       string `gorm:"type:text"`                      // Contact email.
	PhoneNumber string `gorm:"type:text"`                      // Contact phone number.
	Contact     string `gorm:"type:text"`                      // Contact person.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
}

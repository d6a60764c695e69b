package models

import "time"

// Plant represents a production site belonging to a client.
type Plant struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Name        string `gorm:"type:text;not null"` // Site name.
	Address     string `gorm:"type:text"`          // Street address.
	City        string `gorm:"type:text"`          // City.
	Province    string `gorm:"type:text"`          // Province code.
	PostalCode  string `gorm:"type:text"`          // Postal code.
	Email       string `gorm:"type:text"`          // Contact email.
	PhoneNumber string `gorm:"type:text"`          // Contact phone number.
	Contact     string `gorm:"type:text"`          // Contact person.

	ClientID uint64  `gorm:"not null;index"`         // Owning client ID.
	Client   *Client `gorm:"foreignKey:ClientID"`    // Owning client.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
}

package models

import "time"

// CommissionStatusOn marks a commission open for new reports.
const CommissionStatusOn = "on"

// Commission represents a work order opened for a client.
type Commission struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Code        string `gorm:"type:text;not null;uniqueIndex"` // Unique commission code.
	Description string `gorm:"type:text"`                      // Free-form description.
	Status      string `gorm:"type:text;not null;default:'on'"` // Lifecycle status.

	ClientID uint64  `gorm:"not null;index"`      // Owning client ID.
	Client   *Client `gorm:"foreignKey:ClientID"` // Owning client.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
}

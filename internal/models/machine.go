package models

import "time"

// Machine represents a serviceable machine installed in a plant.
type Machine struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Name           string `gorm:"type:text;not null"` // Machine name.
	Code           string `gorm:"type:text"`          // Internal machine code.
	Brand          string `gorm:"type:text"`          // Manufacturer brand.
	Model          string `gorm:"type:text"`          // Manufacturer model.
	SerialNumber   string `gorm:"type:text"`          // Serial number.
	ProductionYear string `gorm:"type:text"`          // Year of production.
	CostCenter     string `gorm:"type:text"`          // Accounting cost center.
	Description    string `gorm:"type:text"`          // Free-form description.
	RoboticIsland  bool   `gorm:"not null;default:false"` // Whether the machine is a robotic island.

	PlantID uint64 `gorm:"not null;index"`      // Owning plant ID.
	Plant   *Plant `gorm:"foreignKey:PlantID"`  // Owning plant.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
}

package models

import "time"

// WorkKind discriminates the target table of a report's work reference.
type WorkKind string

const (
	// WorkKindCommission means the report targets a commission.
	WorkKindCommission WorkKind = "commission"
	// WorkKindMachine means the report targets a machine.
	WorkKindMachine WorkKind = "machine"
)

// Valid reports whether the kind is one of the two known discriminators.
func (k WorkKind) Valid() bool {
	return k == WorkKindCommission || k == WorkKindMachine
}

// Report represents a field-service intervention record. WorkType and WorkID
// together form a polymorphic reference: WorkID resolves against commissions
// when WorkType is "commission" and against machines when it is "machine".
type Report struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Date time.Time `gorm:"not null;index"` // Business date of the intervention.

	InterventionDuration string `gorm:"type:text"` // Duration of the intervention.
	InterventionType     string `gorm:"type:text"` // Kind of intervention performed.
	InterventionLocation string `gorm:"type:text"` // Where the intervention took place.
	Description          string `gorm:"type:text"` // Work description.
	Supervisor           string `gorm:"type:text"` // Supervisor on site.
	Notes                string `gorm:"type:text"` // Additional notes.
	TripKms              string `gorm:"type:text"` // Trip distance in kilometers.
	Cost                 string `gorm:"type:text"` // Intervention cost.

	WorkType WorkKind `gorm:"type:text;not null;index:idx_reports_work,priority:1"` // Polymorphic discriminator.
	WorkID   uint64   `gorm:"not null;index:idx_reports_work,priority:2"`           // Polymorphic target ID.

	OperatorID uint64 `gorm:"not null;index"`        // Operator who filed the report.
	Operator   *User  `gorm:"foreignKey:OperatorID"` // Operator who filed the report.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
}

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rtservizi/fieldtrack/internal/models"
	"gorm.io/gorm"
)

// MachineParams carries the fields of a new machine.
type MachineParams struct {
	Name           string
	Code           string
	Brand          string
	Model          string
	SerialNumber   string
	ProductionYear string
	CostCenter     string
	Description    string
	RoboticIsland  bool
	PlantID        uint64
}

// MachineRow is a machine joined to its owning plant and client.
type MachineRow struct {
	MachineID      uint64
	Name           string
	Code           string
	Brand          string
	Model          string
	SerialNumber   string
	ProductionYear string
	CostCenter     string
	Description    string
	RoboticIsland  bool
	PlantID        uint64
	PlantName      string
	ClientID       uint64
	ClientName     string
}

// ListMachinesForPlant returns all machines installed in the given plant.
func (s *Store) ListMachinesForPlant(ctx context.Context, plantID uint64) ([]models.Machine, error) {
	var rows []models.Machine
	if errFind := s.db.WithContext(ctx).
		Where("plant_id = ?", plantID).Find(&rows).Error; errFind != nil {
		return nil, fmt.Errorf("list machines: %w", errFind)
	}
	return rows, nil
}

// ListMachinesWithOwners returns every machine joined transitively to its
// plant and client. Machines without a resolvable plant or client are
// excluded by the inner joins.
func (s *Store) ListMachinesWithOwners(ctx context.Context) ([]MachineRow, error) {
	var rows []MachineRow
	errScan := s.db.WithContext(ctx).
		Table("machines").
		Select(`machines.id AS machine_id, machines.name, machines.code, machines.brand,
			machines.model, machines.serial_number, machines.production_year,
			machines.cost_center, machines.description, machines.robotic_island,
			plants.id AS plant_id, plants.name AS plant_name,
			clients.id AS client_id, clients.name AS client_name`).
		Joins("JOIN plants ON machines.plant_id = plants.id").
		Joins("JOIN clients ON plants.client_id = clients.id").
		Scan(&rows).Error
	if errScan != nil {
		return nil, fmt.Errorf("list machines with owners: %w", errScan)
	}
	return rows, nil
}

// CreateMachine inserts a new machine into a plant.
func (s *Store) CreateMachine(ctx context.Context, p MachineParams) (*models.Machine, error) {
	machine := models.Machine{
		Name:           p.Name,
		Code:           p.Code,
		Brand:          p.Brand,
		Model:          p.Model,
		SerialNumber:   p.SerialNumber,
		ProductionYear: p.ProductionYear,
		CostCenter:     p.CostCenter,
		Description:    p.Description,
		RoboticIsland:  p.RoboticIsland,
		PlantID:        p.PlantID,
		CreatedAt:      time.Now().UTC(),
	}
	if errCreate := s.db.WithContext(ctx).Create(&machine).Error; errCreate != nil {
		return nil, fmt.Errorf("create machine: %w", errCreate)
	}
	return &machine, nil
}

// DeleteMachine removes a machine unless any machine-typed report still
// references it.
func (s *Store) DeleteMachine(ctx context.Context, machineID uint64) error {
	var machine models.Machine
	if errFind := s.db.WithContext(ctx).First(&machine, machineID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: machine %d", ErrNotFound, machineID)
		}
		return fmt.Errorf("load machine: %w", errFind)
	}

	var reports int64
	if errCount := s.db.WithContext(ctx).Model(&models.Report{}).
		Where("work_id = ? AND work_type = ?", machineID, models.WorkKindMachine).
		Count(&reports).Error; errCount != nil {
		return fmt.Errorf("count reports: %w", errCount)
	}
	if reports > 0 {
		return fmt.Errorf("%w: machine %d still has reports", ErrConflict, machineID)
	}

	if errDelete := s.db.WithContext(ctx).Delete(&machine).Error; errDelete != nil {
		return fmt.Errorf("delete machine: %w", errDelete)
	}
	return nil
}

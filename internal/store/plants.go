package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rtservizi/fieldtrack/internal/models"
	"gorm.io/gorm"
)

// PlantParams carries the fields of a new plant.
type PlantParams struct {
	Name        string
	Address     string
	City        string
	Province    string
	PostalCode  string
	Email       string
	PhoneNumber string
	Contact     string
	ClientID    uint64
}

// ListPlantsForClient returns all plants owned by the given client.
func (s *Store) ListPlantsForClient(ctx context.Context, clientID uint64) ([]models.Plant, error) {
	var rows []models.Plant
	if errFind := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).Find(&rows).Error; errFind != nil {
		return nil, fmt.Errorf("list plants: %w", errFind)
	}
	return rows, nil
}

// CreatePlant inserts a new plant for a client.
func (s *Store) CreatePlant(ctx context.Context, p PlantParams) (*models.Plant, error) {
	plant := models.Plant{
		Name:        p.Name,
		Address:     p.Address,
		City:        p.City,
		Province:    p.Province,
		PostalCode:  p.PostalCode,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		Contact:     p.Contact,
		ClientID:    p.ClientID,
		CreatedAt:   time.Now().UTC(),
	}
	if errCreate := s.db.WithContext(ctx).Create(&plant).Error; errCreate != nil {
		return nil, fmt.Errorf("create plant: %w", errCreate)
	}
	return &plant, nil
}

// DeletePlant removes a plant unless any machine still references it.
func (s *Store) DeletePlant(ctx context.Context, plantID uint64) error {
	var plant models.Plant
	if errFind := s.db.WithContext(ctx).First(&plant, plantID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: plant %d", ErrNotFound, plantID)
		}
		return fmt.Errorf("load plant: %w", errFind)
	}

	var machines int64
	if errCount := s.db.WithContext(ctx).Model(&models.Machine{}).
		Where("plant_id = ?", plantID).Count(&machines).Error; errCount != nil {
		return fmt.Errorf("count machines: %w", errCount)
	}
	if machines > 0 {
		return fmt.Errorf("%w: plant %d still has machines", ErrConflict, plantID)
	}

	if errDelete := s.db.WithContext(ctx).Delete(&plant).Error; errDelete != nil {
		return fmt.Errorf("delete plant: %w", errDelete)
	}
	return nil
}

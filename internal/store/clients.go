package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	dbutil "github.com/rtservizi/fieldtrack/internal/db"
	"github.com/rtservizi/fieldtrack/internal/models"
	"gorm.io/gorm"
)

// ClientParams carries the fields of a new client.
type ClientParams struct {
	Name        string
	Address     string
	City        string
	Province    string
	PostalCode  string
	Email       string
	PhoneNumber string
	Contact     string
}

// CreateClient inserts a new client after checking that the name is free.
func (s *Store) CreateClient(ctx context.Context, p ClientParams) (*models.Client, error) {
	var existing models.Client
	errFind := s.db.WithContext(ctx).Where("name = ?", p.Name).First(&existing).Error
	if errFind == nil {
		return nil, fmt.Errorf("%w: client name %q already registered", ErrConflict, p.Name)
	}
	if !errors.Is(errFind, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check client name: %w", errFind)
	}

	client := models.Client{
		Name:        p.Name,
		Address:     p.Address,
		City:        p.City,
		Province:    p.Province,
		PostalCode:  p.PostalCode,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		Contact:     p.Contact,
		CreatedAt:   time.Now().UTC(),
	}
	if errCreate := s.db.WithContext(ctx).Create(&client).Error; errCreate != nil {
		return nil, fmt.Errorf("create client: %w", errCreate)
	}
	return &client, nil
}

// ListClients returns all clients ordered by name, optionally narrowed by a
// case-insensitive name search.
func (s *Store) ListClients(ctx context.Context, search string) ([]models.Client, error) {
	q := s.db.WithContext(ctx).Model(&models.Client{})
	if search != "" {
		pattern := dbutil.NormalizeLikePattern(s.db, "%"+search+"%")
		q = q.Where(dbutil.CaseInsensitiveLikeExpr(s.db, "name"), pattern)
	}
	var rows []models.Client
	if errFind := q.Order("name").Find(&rows).Error; errFind != nil {
		return nil, fmt.Errorf("list clients: %w", errFind)
	}
	return rows, nil
}

// GetClient returns a client by ID.
func (s *Store) GetClient(ctx context.Context, clientID uint64) (*models.Client, error) {
	var client models.Client
	if errFind := s.db.WithContext(ctx).First(&client, clientID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: client %d", ErrNotFound, clientID)
		}
		return nil, fmt.Errorf("load client: %w", errFind)
	}
	return &client, nil
}

// DeleteClient removes a client unless any commission or plant still
// references it.
func (s *Store) DeleteClient(ctx context.Context, clientID uint64) error {
	var client models.Client
	if errFind := s.db.WithContext(ctx).First(&client, clientID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: client %d", ErrNotFound, clientID)
		}
		return fmt.Errorf("load client: %w", errFind)
	}

	var commissions int64
	if errCount := s.db.WithContext(ctx).Model(&models.Commission{}).
		Where("client_id = ?", clientID).Count(&commissions).Error; errCount != nil {
		return fmt.Errorf("count commissions: %w", errCount)
	}
	if commissions > 0 {
		return fmt.Errorf("%w: client %d still has commissions", ErrConflict, clientID)
	}

	var plants int64
	if errCount := s.db.WithContext(ctx).Model(&models.Plant{}).
		Where("client_id = ?", clientID).Count(&plants).Error; errCount != nil {
		return fmt.Errorf("count plants: %w", errCount)
	}
	if plants > 0 {
		return fmt.Errorf("%w: client %d still has plants", ErrConflict, clientID)
	}

	if errDelete := s.db.WithContext(ctx).Delete(&client).Error; errDelete != nil {
		return fmt.Errorf("delete client: %w", errDelete)
	}
	return nil
}

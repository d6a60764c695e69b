package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rtservizi/fieldtrack/internal/models"
	"gorm.io/gorm"
)

// CommissionParams carries the fields of a new commission.
type CommissionParams struct {
	Code        string
	Description string
	ClientID    uint64
}

// CommissionRow is a commission joined to its owning client.
type CommissionRow struct {
	CommissionID uint64
	Code         string
	Description  string
	Status       string
	ClientID     uint64
	ClientName   string
}

// ListCommissionsForUser returns every commission joined to its client.
// The userID parameter is accepted but not applied: all commissions are
// visible to every operator. Callers rely on that visibility policy.
func (s *Store) ListCommissionsForUser(ctx context.Context, userID uint64) ([]CommissionRow, error) {
	_ = userID

	var rows []CommissionRow
	errScan := s.db.WithContext(ctx).
		Table("commissions").
		Select(`commissions.id AS commission_id, commissions.code, commissions.description,
			commissions.status, clients.id AS client_id, clients.name AS client_name`).
		Joins("JOIN clients ON commissions.client_id = clients.id").
		Scan(&rows).Error
	if errScan != nil {
		return nil, fmt.Errorf("list commissions: %w", errScan)
	}
	return rows, nil
}

// ListCommissions returns commissions joined to their client, ordered by
// client name, optionally narrowed to one client.
func (s *Store) ListCommissions(ctx context.Context, clientID *uint64) ([]CommissionRow, error) {
	q := s.db.WithContext(ctx).
		Table("commissions").
		Select(`commissions.id AS commission_id, commissions.code, commissions.description,
			commissions.status, clients.id AS client_id, clients.name AS client_name`).
		Joins("JOIN clients ON commissions.client_id = clients.id")
	if clientID != nil {
		q = q.Where("commissions.client_id = ?", *clientID)
	}

	var rows []CommissionRow
	if errScan := q.Order("clients.name").Scan(&rows).Error; errScan != nil {
		return nil, fmt.Errorf("list commissions: %w", errScan)
	}
	return rows, nil
}

// CreateCommission inserts a new commission after checking that the code is
// free. New commissions start in the "on" status.
func (s *Store) CreateCommission(ctx context.Context, p CommissionParams) (*models.Commission, error) {
	var existing models.Commission
	errFind := s.db.WithContext(ctx).Where("code = ?", p.Code).First(&existing).Error
	if errFind == nil {
		return nil, fmt.Errorf("%w: commission code %q already registered", ErrConflict, p.Code)
	}
	if !errors.Is(errFind, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check commission code: %w", errFind)
	}

	commission := models.Commission{
		Code:        p.Code,
		Description: p.Description,
		Status:      models.CommissionStatusOn,
		ClientID:    p.ClientID,
		CreatedAt:   time.Now().UTC(),
	}
	if errCreate := s.db.WithContext(ctx).Create(&commission).Error; errCreate != nil {
		return nil, fmt.Errorf("create commission: %w", errCreate)
	}
	return &commission, nil
}

// DeleteCommission removes a commission unless any commission-typed report
// still references it.
func (s *Store) DeleteCommission(ctx context.Context, commissionID uint64) error {
	var commission models.Commission
	if errFind := s.db.WithContext(ctx).First(&commission, commissionID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: commission %d", ErrNotFound, commissionID)
		}
		return fmt.Errorf("load commission: %w", errFind)
	}

	var reports int64
	if errCount := s.db.WithContext(ctx).Model(&models.Report{}).
		Where("work_id = ? AND work_type = ?", commissionID, models.WorkKindCommission).
		Count(&reports).Error; errCount != nil {
		return fmt.Errorf("count reports: %w", errCount)
	}
	if reports > 0 {
		return fmt.Errorf("%w: commission %d still has reports", ErrConflict, commissionID)
	}

	if errDelete := s.db.WithContext(ctx).Delete(&commission).Error; errDelete != nil {
		return fmt.Errorf("delete commission: %w", errDelete)
	}
	return nil
}

// Package store is the data-access layer for the field-service entities.
// Every operation runs against a single transactional GORM session; callers
// discriminate failures with errors.Is against the error kinds in errors.go.
package store

import "gorm.io/gorm"

// Store mediates all reads and writes against the entity model.
type Store struct {
	db *gorm.DB
}

// New constructs a Store on top of an open database connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying connection for callers that need dialect helpers.
func (s *Store) DB() *gorm.DB {
	return s.db
}

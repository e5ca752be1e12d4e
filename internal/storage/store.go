// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/peticao/internal/models"
)

var (
	// ErrNotFound is wrapped by stores when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is wrapped by stores when an update is based on a
	// version that has since been replaced.
	ErrConflict = errors.New("case was modified concurrently")
)

// ListOptions filters ListCases.
type ListOptions struct {
	// Status restricts the result to one status. Empty means all.
	Status models.Status

	// Limit caps the number of cases returned. Zero means no limit.
	Limit int
}

// Store defines the interface for case storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateCase persists a new case.
	// The ID, CreatedAt and UpdatedAt fields are populated by the store.
	CreateCase(ctx context.Context, c *models.Case) error

	// GetCase retrieves a case by its ID.
	// Returns an error wrapping ErrNotFound if the case does not exist.
	GetCase(ctx context.Context, caseID string) (*models.Case, error)

	// UpdateCase replaces an existing case, refreshes UpdatedAt and
	// increments Version. The write only succeeds if the stored version
	// still equals c.Version; otherwise it returns an error wrapping
	// ErrConflict. Returns an error wrapping ErrNotFound if the case does
	// not exist.
	UpdateCase(ctx context.Context, c *models.Case) error

	// DeleteCase removes a case.
	// Returns an error wrapping ErrNotFound if the case does not exist.
	DeleteCase(ctx context.Context, caseID string) error

	// ListCases returns cases, most recently updated first.
	ListCases(ctx context.Context, opts ListOptions) ([]*models.Case, error)

	// PutEvidenceBlob stores evidence content under its digest.
	// Storing the same digest twice is a no-op.
	PutEvidenceBlob(ctx context.Context, digest string, content []byte) error

	// GetEvidenceBlob returns the content stored under digest.
	// Returns an error wrapping ErrNotFound if no content was stored.
	GetEvidenceBlob(ctx context.Context, digest string) ([]byte, error)

	// Close releases any resources held by the store.
	Close() error
}

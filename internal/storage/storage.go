// Package storage defines persistence for the document corpus and the
// history of optimization runs.
package storage

import (
	"context"
	"errors"

	"github.com/hyperjump/hirogeru/internal/models"
)

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("run not found")

// Storage persists the indexed corpus snapshot and run history.
type Storage interface {
	// Document operations. The document table always mirrors the indexed
	// corpus, so a rebuild replaces the whole snapshot at once.
	ReplaceDocuments(ctx context.Context, docs []models.Document) error
	ListDocuments(ctx context.Context) ([]models.Document, error)
	CountDocuments(ctx context.Context) (int64, error)

	// Run operations
	SaveRun(ctx context.Context, run *models.Run) error
	GetRun(ctx context.Context, id string) (*models.Run, error)
	ListRuns(ctx context.Context, limit int) ([]*models.Run, error)
	CountRuns(ctx context.Context) (int64, error)

	Close() error
}

package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrRecordNotFound is the sentinel wrapped by NotFoundError.
	ErrRecordNotFound = errors.New("records: record not found")
	// ErrSlugRequired indicates a record without slug.
	ErrSlugRequired = errors.New("records: slug is required")
	// ErrSlugExists indicates a slug collision.
	ErrSlugExists = errors.New("records: slug already exists")
)

// NotFoundError describes a failed lookup.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrRecordNotFound
}

// Repository persists translatable records.
type Repository interface {
	Create(ctx context.Context, record *Record) (*Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	GetBySlug(ctx context.Context, slug string) (*Record, error)
	Update(ctx context.Context, record *Record) (*Record, error)
	List(ctx context.Context) ([]*Record, error)
}

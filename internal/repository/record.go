package repository

import (
	"context"
	"errors"

	"nursery-api/internal/domain"
)

// ErrNotFound is returned when a record does not exist for the given owner.
// A record owned by someone else is reported the same way; owner scoping
// must not leak existence.
var ErrNotFound = errors.New("record not found")

// ListLimit caps every listing; there is no pagination beyond it.
const ListLimit = 1000

// RecordRepository exposes persistence operations shared by all six record
// kinds. One implementation serves every kind.
type RecordRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, record *domain.Record) error
	ListByOwner(ctx context.Context, kind domain.RecordKind, owner string) ([]domain.Record, error)
	Delete(ctx context.Context, kind domain.RecordKind, owner, id string) error
}

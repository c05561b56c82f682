package bridge

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a referenced bridge does not exist.
var ErrNotFound = errors.New("bridge not found")

type Repository interface {
	Create(ctx context.Context, b *Bridge) error
	GetByID(ctx context.Context, id uuid.UUID) (*Bridge, error)
	// GetActiveByPair returns the active bridge for the exact pair, or
	// ErrNotFound when none exists.
	GetActiveByPair(ctx context.Context, patientID, donorID string) (*Bridge, error)
	Update(ctx context.Context, b *Bridge) error
	ListByPatient(ctx context.Context, patientID string, activeOnly bool) ([]*Bridge, error)
	ListByDonor(ctx context.Context, donorID string, activeOnly bool) ([]*Bridge, error)
}

// TxRunner runs fn atomically. The pg implementation wraps fn in a database
// transaction joined by every repository call made inside it.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

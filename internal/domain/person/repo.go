package person

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a referenced person does not exist.
var ErrNotFound = errors.New("person not found")

// DonorFilter narrows donor listing queries. A nil BloodTypes slice matches
// every blood type.
type DonorFilter struct {
	BloodTypes      []BloodType
	ExcludeInactive bool
	EligibleOnly    bool
}

type Repository interface {
	Create(ctx context.Context, p *Person) error
	GetByID(ctx context.Context, id string) (*Person, error)
	Update(ctx context.Context, p *Person) error
	ListDonors(ctx context.Context, f DonorFilter, limit, offset int) ([]*Person, int, error)
}

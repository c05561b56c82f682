package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Ananya-Nair20/T-Care/internal/domain/person"
)

// Registry creates and looks up patient-donor bridge relationships.
type Registry struct {
	repo    Repository
	persons person.Repository
	tx      TxRunner
}

func NewRegistry(repo Repository, persons person.Repository, tx TxRunner) *Registry {
	return &Registry{repo: repo, persons: persons, tx: tx}
}

// CreateOrGet returns the active bridge for the pair, creating one if none
// exists. Creation is idempotent: a second call with the same pair returns
// the first bridge untouched. A new bridge and the in-bridge flags on both
// person records are committed as one transaction.
func (r *Registry) CreateOrGet(ctx context.Context, patientID, donorID string, compatibilityScore *float64) (*Bridge, error) {
	patient, err := r.persons.GetByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("patient %s: %w", patientID, err)
	}
	donor, err := r.persons.GetByID(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("donor %s: %w", donorID, err)
	}
	if patient.Role != person.RolePatient {
		return nil, fmt.Errorf("person %s is not a patient", patientID)
	}
	if donor.Role != person.RoleDonor {
		return nil, fmt.Errorf("person %s is not a donor", donorID)
	}

	existing, err := r.repo.GetActiveByPair(ctx, patientID, donorID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	b := &Bridge{
		PatientID:          patientID,
		DonorID:            donorID,
		IsActive:           true,
		CompatibilityScore: compatibilityScore,
	}
	err = r.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := r.repo.Create(ctx, b); err != nil {
			return err
		}
		patient.InBridge = true
		if err := r.persons.Update(ctx, patient); err != nil {
			return err
		}
		donor.InBridge = true
		return r.persons.Update(ctx, donor)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Deactivate ends a relationship. The row is kept for history.
func (r *Registry) Deactivate(ctx context.Context, id uuid.UUID) error {
	b, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	b.IsActive = false
	return r.repo.Update(ctx, b)
}

// ListForPatient returns the patient's bridges in repository order.
func (r *Registry) ListForPatient(ctx context.Context, patientID string, activeOnly bool) ([]*Bridge, error) {
	return r.repo.ListByPatient(ctx, patientID, activeOnly)
}

// ListForDonor returns the donor's bridges in repository order.
func (r *Registry) ListForDonor(ctx context.Context, donorID string, activeOnly bool) ([]*Bridge, error) {
	return r.repo.ListByDonor(ctx, donorID, activeOnly)
}

// RecordDonation bumps the bridge's donation counters. Implements
// person.BridgeRecorder.
func (r *Registry) RecordDonation(ctx context.Context, id uuid.UUID, donatedAt time.Time) error {
	b, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	b.TotalDonations++
	b.LastDonationDate = &donatedAt
	return r.repo.Update(ctx, b)
}

package person

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// donationCooldownDays is the whole-blood donation interval. A donor who
// donates today is ineligible until this many days have passed.
const donationCooldownDays = 90

// BridgeRecorder propagates a recorded donation onto the bridge relationship
// it was given through. Wired in main to avoid a dependency cycle with the
// bridge package.
type BridgeRecorder interface {
	RecordDonation(ctx context.Context, bridgeID uuid.UUID, donatedAt time.Time) error
}

// TxRunner runs a closure inside a database transaction so that repository
// calls made from it commit or roll back together.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	repo    Repository
	bridges BridgeRecorder
	tx      TxRunner
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SetBridgeRecorder attaches an optional BridgeRecorder to the service.
func (s *Service) SetBridgeRecorder(br BridgeRecorder) {
	s.bridges = br
}

// SetTxRunner attaches the transaction runner used by donation recording.
func (s *Service) SetTxRunner(tx TxRunner) {
	s.tx = tx
}

func (s *Service) runTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.tx != nil {
		return s.tx.WithinTx(ctx, fn)
	}
	return fn(ctx)
}

func (s *Service) Register(ctx context.Context, p *Person) error {
	if p.ID == "" {
		return fmt.Errorf("person id is required")
	}
	if !p.Role.IsValid() {
		return fmt.Errorf("role must be %q or %q", RolePatient, RoleDonor)
	}
	if !p.BloodType.IsValid() {
		return fmt.Errorf("invalid blood type %q", p.BloodType)
	}
	if (p.Latitude == nil) != (p.Longitude == nil) {
		return fmt.Errorf("latitude and longitude must be set together")
	}
	if p.Latitude != nil && (*p.Latitude < -90 || *p.Latitude > 90 || *p.Longitude < -180 || *p.Longitude > 180) {
		return fmt.Errorf("coordinates out of range")
	}
	if p.EligibilityStatus == "" {
		p.EligibilityStatus = EligibilityUnknown
	}
	if !p.EligibilityStatus.IsValid() {
		return fmt.Errorf("invalid eligibility status %q", p.EligibilityStatus)
	}
	p.ActivityStatus = Active
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id string) (*Person, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListDonors(ctx context.Context, f DonorFilter, limit, offset int) ([]*Person, int, error) {
	return s.repo.ListDonors(ctx, f, limit, offset)
}

// Deactivate flips the activity status flag. Records are never deleted.
func (s *Service) Deactivate(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.ActivityStatus = Inactive
	return s.repo.Update(ctx, p)
}

// RecordDonation updates the donor's counters and cooldown state after a
// completed donation, and bumps the bridge relationship when one is named.
// The donor update and the bridge bump run in one transaction: a bad bridge
// id must not leave the donor in cooldown.
func (s *Service) RecordDonation(ctx context.Context, donorID string, bridgeID *uuid.UUID, donatedAt time.Time) (*Person, error) {
	var donor *Person
	err := s.runTx(ctx, func(ctx context.Context) error {
		var err error
		donor, err = s.repo.GetByID(ctx, donorID)
		if err != nil {
			return err
		}
		if donor.Role != RoleDonor {
			return fmt.Errorf("person %s is not a donor", donorID)
		}

		donor.DonationsTillDate++
		donor.LastDonationDate = &donatedAt
		next := donatedAt.AddDate(0, 0, donationCooldownDays)
		donor.NextEligibleDate = &next
		donor.EligibilityStatus = Ineligible
		if donor.TotalCalls > 0 {
			ratio := float64(donor.TotalCalls) / float64(donor.DonationsTillDate)
			donor.CallsToDonationsRatio = &ratio
		}

		if err := s.repo.Update(ctx, donor); err != nil {
			return err
		}

		if bridgeID != nil && s.bridges != nil {
			return s.bridges.RecordDonation(ctx, *bridgeID, donatedAt)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return donor, nil
}

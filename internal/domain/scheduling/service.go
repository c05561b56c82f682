package scheduling

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Ananya-Nair20/T-Care/internal/domain/matching"
	"github.com/Ananya-Nair20/T-Care/internal/domain/person"
)

// ErrInvalidInput is returned for malformed request parameters.
var ErrInvalidInput = errors.New("invalid input")

// ledgerDateLayout is the calendar-date key used by the scheduling ledger.
const ledgerDateLayout = "2006-01-02"

// poolFetchLimit bounds a single donor pool query.
const poolFetchLimit = 10000

// EmergencyDonor is a ranked nearest-donor result.
type EmergencyDonor struct {
	Donor      *person.Person `json:"donor"`
	DistanceKm float64        `json:"distance_km"`
}

// ScheduleAssignment is a committed (donor, date) pairing for an upcoming
// transfusion. Transient: the ledger, not this struct, is the record.
type ScheduleAssignment struct {
	Donor         *person.Person `json:"donor"`
	ScheduledDate time.Time      `json:"scheduled_date"`
	DistanceKm    float64        `json:"distance_km"`
}

// ScheduleRequest asks for donors to cover a recurring transfusion.
type ScheduleRequest struct {
	PatientID       string
	Location        matching.GeoPoint
	BloodType       person.BloodType
	TransfusionDate time.Time
	UnitsNeeded     int
}

// DonorPool is the read side of the donor store used by the scheduler.
type DonorPool interface {
	ListDonors(ctx context.Context, f person.DonorFilter, limit, offset int) ([]*person.Person, int, error)
}

// Scheduler assigns donors to future donation dates. The ledger of committed
// (donor, date) pairs lives for the lifetime of the Scheduler instance and is
// append-only; entries are never expired.
//
// TODO: stale ledger entries for past dates are never released. A retention
// policy needs a product decision before it can be built.
type Scheduler struct {
	pool DonorPool

	mu     sync.Mutex
	ledger map[string]map[string]struct{} // donor id -> committed dates
}

func NewScheduler(pool DonorPool) *Scheduler {
	return &Scheduler{
		pool:   pool,
		ledger: make(map[string]map[string]struct{}),
	}
}

func (s *Scheduler) eligibleDonors(ctx context.Context, bloodType person.BloodType) ([]*person.Person, error) {
	donors, _, err := s.pool.ListDonors(ctx, person.DonorFilter{
		BloodTypes:      []person.BloodType{bloodType},
		ExcludeInactive: true,
		EligibleOnly:    true,
	}, poolFetchLimit, 0)
	if err != nil {
		return nil, err
	}
	located := donors[:0]
	for _, d := range donors {
		if d.HasLocation() {
			located = append(located, d)
		}
	}
	return located, nil
}

// NearestEmergencyDonors returns the topN eligible donors of the exact blood
// type, closest first. A ranked read only: the ledger is not consulted.
func (s *Scheduler) NearestEmergencyDonors(ctx context.Context, loc matching.GeoPoint, bloodType person.BloodType, topN int) ([]*EmergencyDonor, error) {
	if topN <= 0 {
		return nil, fmt.Errorf("%w: top_n must be positive, got %d", ErrInvalidInput, topN)
	}
	if !bloodType.IsValid() {
		return nil, fmt.Errorf("%w: invalid blood type %q", ErrInvalidInput, bloodType)
	}

	donors, err := s.eligibleDonors(ctx, bloodType)
	if err != nil {
		return nil, err
	}

	results := make([]*EmergencyDonor, 0, len(donors))
	for _, d := range donors {
		results = append(results, &EmergencyDonor{
			Donor:      d,
			DistanceKm: matching.DistanceKm(loc, matching.GeoPoint{Latitude: *d.Latitude, Longitude: *d.Longitude}),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	if len(results) > topN {
		results = results[:topN]
	}
	return results, nil
}

// ScheduleRecurring commits donors to donate exactly one day before the
// transfusion date. Candidates are walked in priority order (lifetime
// donations descending, then latitude ascending as a coarse geographic
// grouping) and any donor already committed to the target date is skipped.
// Greedy and single-pass: when fewer free donors exist than units needed,
// fewer assignments are returned.
func (s *Scheduler) ScheduleRecurring(ctx context.Context, req ScheduleRequest) ([]*ScheduleAssignment, error) {
	if req.UnitsNeeded <= 0 {
		return nil, fmt.Errorf("%w: units_needed must be positive, got %d", ErrInvalidInput, req.UnitsNeeded)
	}
	if !req.BloodType.IsValid() {
		return nil, fmt.Errorf("%w: invalid blood type %q", ErrInvalidInput, req.BloodType)
	}
	if req.TransfusionDate.IsZero() {
		return nil, fmt.Errorf("%w: transfusion_date is required", ErrInvalidInput)
	}

	donors, err := s.eligibleDonors(ctx, req.BloodType)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(donors, func(i, j int) bool {
		if donors[i].DonationsTillDate != donors[j].DonationsTillDate {
			return donors[i].DonationsTillDate > donors[j].DonationsTillDate
		}
		return *donors[i].Latitude < *donors[j].Latitude
	})

	scheduledDate := req.TransfusionDate.AddDate(0, 0, -1)
	dateKey := scheduledDate.Format(ledgerDateLayout)

	// The free-check and the commit must happen under one lock so that
	// concurrent calls cannot double-book a donor on the same date.
	s.mu.Lock()
	defer s.mu.Unlock()

	var assigned []*ScheduleAssignment
	for _, d := range donors {
		if _, booked := s.ledger[d.ID][dateKey]; booked {
			continue
		}
		if s.ledger[d.ID] == nil {
			s.ledger[d.ID] = make(map[string]struct{})
		}
		s.ledger[d.ID][dateKey] = struct{}{}

		assigned = append(assigned, &ScheduleAssignment{
			Donor:         d,
			ScheduledDate: scheduledDate,
			DistanceKm:    matching.DistanceKm(req.Location, matching.GeoPoint{Latitude: *d.Latitude, Longitude: *d.Longitude}),
		})
		if len(assigned) >= req.UnitsNeeded {
			break
		}
	}
	return assigned, nil
}

// CommittedDates returns the ledger entries for a donor, sorted. Intended
// for diagnostics and tests.
func (s *Scheduler) CommittedDates(donorID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	dates := make([]string, 0, len(s.ledger[donorID]))
	for d := range s.ledger[donorID] {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

package matching

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Ananya-Nair20/T-Care/internal/domain/person"
)

// ErrInvalidInput is returned for malformed request parameters. The request
// is rejected before any computation.
var ErrInvalidInput = errors.New("invalid input")

// MatchCandidate is a transient scoring result, never persisted.
type MatchCandidate struct {
	Donor      *person.Person `json:"donor"`
	DistanceKm float64        `json:"distance_km"`
	Score      float64        `json:"score"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
}

// Repository is the donor/patient store the match finder reads from.
type Repository interface {
	GetByID(ctx context.Context, id string) (*person.Person, error)
	ListDonors(ctx context.Context, f person.DonorFilter, limit, offset int) ([]*person.Person, int, error)
}

// candidateFetchLimit bounds a single candidate query. Matching is a ranked
// read over the donor pool, not a paginated listing.
const candidateFetchLimit = 10000

type Service struct {
	repo          Repository
	scorer        *Scorer
	maxDistanceKm float64
}

func NewService(repo Repository, weights Weights, maxDistanceKm float64) *Service {
	return &Service{
		repo:          repo,
		scorer:        NewScorer(weights, maxDistanceKm),
		maxDistanceKm: maxDistanceKm,
	}
}

// FindMatches returns the top scoring donors for a patient, best first.
// An unknown patient yields an empty result, not an error. Emergency
// requests restrict candidates to currently eligible donors but waive the
// maximum distance cutoff. Ties in score keep the repository's fetch order.
func (s *Service) FindMatches(ctx context.Context, patientID string, limit int, emergency bool) ([]*MatchCandidate, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidInput, limit)
	}

	patient, err := s.repo.GetByID(ctx, patientID)
	if errors.Is(err, person.ErrNotFound) {
		return []*MatchCandidate{}, nil
	}
	if err != nil {
		return nil, err
	}
	if !patient.HasLocation() {
		return []*MatchCandidate{}, nil
	}
	patientLoc := GeoPoint{Latitude: *patient.Latitude, Longitude: *patient.Longitude}

	donors, _, err := s.repo.ListDonors(ctx, person.DonorFilter{
		BloodTypes:      CompatibleDonorTypes(patient.BloodType),
		ExcludeInactive: true,
		EligibleOnly:    emergency,
	}, candidateFetchLimit, 0)
	if err != nil {
		return nil, err
	}

	var candidates []*MatchCandidate
	for _, donor := range donors {
		if !donor.HasLocation() {
			continue
		}
		distance := DistanceKm(patientLoc, GeoPoint{Latitude: *donor.Latitude, Longitude: *donor.Longitude})
		if !emergency && distance > s.maxDistanceKm {
			continue
		}
		score, breakdown := s.scorer.Score(donor, patient, distance)
		if score <= 0 {
			continue
		}
		candidates = append(candidates, &MatchCandidate{
			Donor:      donor,
			DistanceKm: distance,
			Score:      score,
			Breakdown:  breakdown,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

package matching

import (
	"fmt"
	"math"
	"time"

	"github.com/Ananya-Nair20/T-Care/internal/domain/person"
)

// Weights configures the four scoring components. The weights must be
// non-negative and sum to 1.0.
type Weights struct {
	Compatibility float64
	Distance      float64
	Availability  float64
	Engagement    float64
}

// DefaultWeights mirrors the production defaults: compatibility 40%,
// distance 30%, availability 20%, engagement 10%.
func DefaultWeights() Weights {
	return Weights{Compatibility: 0.4, Distance: 0.3, Availability: 0.2, Engagement: 0.1}
}

const weightSumTolerance = 1e-9

func (w Weights) Validate() error {
	if w.Compatibility < 0 || w.Distance < 0 || w.Availability < 0 || w.Engagement < 0 {
		return fmt.Errorf("scoring weights must be non-negative")
	}
	sum := w.Compatibility + w.Distance + w.Availability + w.Engagement
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("scoring weights must sum to 1.0, got %g", sum)
	}
	return nil
}

// Scorer computes weighted match scores. now is injectable for tests and
// defaults to time.Now.
type Scorer struct {
	weights       Weights
	maxDistanceKm float64
	now           func() time.Time
}

func NewScorer(weights Weights, maxDistanceKm float64) *Scorer {
	return &Scorer{weights: weights, maxDistanceKm: maxDistanceKm, now: time.Now}
}

// ScoreBreakdown carries the unweighted component values of a score.
type ScoreBreakdown struct {
	Compatibility float64 `json:"compatibility"`
	Distance      float64 `json:"distance"`
	Availability  float64 `json:"availability"`
	Engagement    float64 `json:"engagement"`
}

// Score returns the donor's weighted match score in [0,1] together with the
// component breakdown. An incompatible donor always scores exactly 0
// regardless of the other components. Pure: neither record is mutated.
func (s *Scorer) Score(donor, patient *person.Person, distanceKm float64) (float64, ScoreBreakdown) {
	var bd ScoreBreakdown

	if !CanDonate(donor.BloodType, patient.BloodType) {
		return 0, bd
	}
	bd.Compatibility = 0.8
	if donor.BloodType == patient.BloodType {
		bd.Compatibility = 1.0
	}

	if distanceKm <= s.maxDistanceKm {
		bd.Distance = 1.0 - distanceKm/s.maxDistanceKm
	}

	switch {
	case donor.EligibilityStatus == person.Eligible:
		bd.Availability = 1.0
	case donor.NextEligibleDate != nil:
		if donor.NextEligibleDate.Sub(s.now()) <= 7*24*time.Hour {
			bd.Availability = 0.5
		}
	}

	switch {
	case donor.DonationsTillDate >= 10:
		bd.Engagement = 1.0
	case donor.DonationsTillDate >= 5:
		bd.Engagement = 0.7
	case donor.DonationsTillDate >= 1:
		bd.Engagement = 0.5
	}
	if r := donor.CallsToDonationsRatio; r != nil && *r > 0 && *r <= 2 {
		bd.Engagement = math.Min(bd.Engagement+0.3, 1.0)
	}

	score := bd.Compatibility*s.weights.Compatibility +
		bd.Distance*s.weights.Distance +
		bd.Availability*s.weights.Availability +
		bd.Engagement*s.weights.Engagement
	return score, bd
}

package bridge

import (
	"time"

	"github.com/google/uuid"
)

// Bridge maps to the bridge_relationships table: a standing association
// between one patient and one donor. At most one active bridge exists per
// (patient, donor) pair; ended bridges are deactivated, never deleted.
type Bridge struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	PatientID           string     `db:"patient_id" json:"patient_id"`
	DonorID             string     `db:"donor_id" json:"donor_id"`
	IsActive            bool       `db:"is_active" json:"is_active"`
	CompatibilityScore  *float64   `db:"compatibility_score" json:"compatibility_score,omitempty"`
	TotalDonations      int        `db:"total_donations" json:"total_donations"`
	LastDonationDate    *time.Time `db:"last_donation_date" json:"last_donation_date,omitempty"`
	NextTransfusionDate *time.Time `db:"next_transfusion_date" json:"next_transfusion_date,omitempty"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updated_at"`
}

package person

import (
	"fmt"
	"strings"
	"time"
)

// Role distinguishes the two sides of a bridge relationship.
type Role string

const (
	RolePatient Role = "patient"
	RoleDonor   Role = "donor"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RolePatient || r == RoleDonor
}

// BloodType is one of the eight ABO/Rh groups.
type BloodType string

const (
	APositive  BloodType = "A+"
	ANegative  BloodType = "A-"
	BPositive  BloodType = "B+"
	BNegative  BloodType = "B-"
	ABPositive BloodType = "AB+"
	ABNegative BloodType = "AB-"
	OPositive  BloodType = "O+"
	ONegative  BloodType = "O-"
)

// AllBloodTypes lists every blood type in a fixed order.
var AllBloodTypes = []BloodType{
	APositive, ANegative, BPositive, BNegative,
	ABPositive, ABNegative, OPositive, ONegative,
}

// IsValid reports whether the blood type is one of the eight groups.
func (b BloodType) IsValid() bool {
	switch b {
	case APositive, ANegative, BPositive, BNegative,
		ABPositive, ABNegative, OPositive, ONegative:
		return true
	}
	return false
}

// longFormBloodTypes maps spelled-out registry values to their symbols.
var longFormBloodTypes = map[string]BloodType{
	"A POSITIVE":  APositive,
	"A NEGATIVE":  ANegative,
	"B POSITIVE":  BPositive,
	"B NEGATIVE":  BNegative,
	"AB POSITIVE": ABPositive,
	"AB NEGATIVE": ABNegative,
	"O POSITIVE":  OPositive,
	"O NEGATIVE":  ONegative,
}

// ParseBloodType normalizes wire or registry input ("a+", " AB NEGATIVE ")
// into a BloodType. It returns an error for anything outside the eight groups.
func ParseBloodType(s string) (BloodType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if bt, ok := longFormBloodTypes[normalized]; ok {
		return bt, nil
	}
	bt := BloodType(normalized)
	if !bt.IsValid() {
		return "", fmt.Errorf("unknown blood type %q", s)
	}
	return bt, nil
}

// EligibilityStatus is the donor's medical cooldown state.
type EligibilityStatus string

const (
	Eligible           EligibilityStatus = "eligible"
	Ineligible         EligibilityStatus = "ineligible"
	EligibilityUnknown EligibilityStatus = "unknown"
)

func (e EligibilityStatus) IsValid() bool {
	return e == Eligible || e == Ineligible || e == EligibilityUnknown
}

// ActivityStatus soft-deactivates a person without deleting the record.
type ActivityStatus string

const (
	Active   ActivityStatus = "active"
	Inactive ActivityStatus = "inactive"
)

func (a ActivityStatus) IsValid() bool {
	return a == Active || a == Inactive
}

// Person maps to the persons table. Donor-only fields are zero-valued on
// patient records.
type Person struct {
	ID                    string            `db:"id" json:"id"`
	Role                  Role              `db:"role" json:"role"`
	BloodType             BloodType         `db:"blood_type" json:"blood_type"`
	Latitude              *float64          `db:"latitude" json:"latitude,omitempty"`
	Longitude             *float64          `db:"longitude" json:"longitude,omitempty"`
	EligibilityStatus     EligibilityStatus `db:"eligibility_status" json:"eligibility_status"`
	NextEligibleDate      *time.Time        `db:"next_eligible_date" json:"next_eligible_date,omitempty"`
	LastDonationDate      *time.Time        `db:"last_donation_date" json:"last_donation_date,omitempty"`
	DonationsTillDate     int               `db:"donations_till_date" json:"donations_till_date"`
	TotalCalls            int               `db:"total_calls" json:"total_calls"`
	CallsToDonationsRatio *float64          `db:"calls_to_donations_ratio" json:"calls_to_donations_ratio,omitempty"`
	ActivityStatus        ActivityStatus    `db:"activity_status" json:"activity_status"`
	InBridge              bool              `db:"in_bridge" json:"in_bridge"`
	CreatedAt             time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time         `db:"updated_at" json:"updated_at"`
}

// HasLocation reports whether both coordinates are present.
func (p *Person) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}

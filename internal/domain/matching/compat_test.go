package matching

import (
	"testing"

	"github.com/Ananya-Nair20/T-Care/internal/domain/person"
)

func contains(types []person.BloodType, bt person.BloodType) bool {
	for _, t := range types {
		if t == bt {
			return true
		}
	}
	return false
}

func TestCompatibleDonorTypes_InverseOfTable(t *testing.T) {
	// For every patient type, the derived donor set must be exactly the set
	// of donor rows whose donation list contains the patient type.
	for _, patient := range person.AllBloodTypes {
		derived := CompatibleDonorTypes(patient)
		for _, donor := range person.AllBloodTypes {
			want := contains(bloodCompatibility[donor], patient)
			got := contains(derived, donor)
			if want != got {
				t.Errorf("patient %s donor %s: table says %v, derived says %v", patient, donor, want, got)
			}
		}
	}
}

func TestCompatibleDonorTypes_UniversalRecipient(t *testing.T) {
	donors := CompatibleDonorTypes(person.ABPositive)
	if len(donors) != 8 {
		t.Errorf("AB+ should receive from all 8 donor types, got %d: %v", len(donors), donors)
	}
}

func TestCompatibleDonorTypes_ONegativePatient(t *testing.T) {
	donors := CompatibleDonorTypes(person.ONegative)
	if len(donors) != 1 || donors[0] != person.ONegative {
		t.Errorf("O- patient should only receive O-, got %v", donors)
	}
}

func TestCanDonate_UniversalDonor(t *testing.T) {
	for _, patient := range person.AllBloodTypes {
		if !CanDonate(person.ONegative, patient) {
			t.Errorf("O- should donate to %s", patient)
		}
	}
}

func TestCanDonate_Incompatible(t *testing.T) {
	if CanDonate(person.APositive, person.ONegative) {
		t.Error("A+ must not donate to O-")
	}
	if CanDonate(person.ABPositive, person.APositive) {
		t.Error("AB+ must not donate to A+")
	}
}

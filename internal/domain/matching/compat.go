package matching

import "github.com/Ananya-Nair20/T-Care/internal/domain/person"

// bloodCompatibility is the fixed donation table, keyed by donor type. The
// value is the set of patient types that donor can supply. O- donates to
// everyone; AB+ receives from everyone.
var bloodCompatibility = map[person.BloodType][]person.BloodType{
	person.ONegative:  {person.ONegative, person.OPositive, person.ANegative, person.APositive, person.BNegative, person.BPositive, person.ABNegative, person.ABPositive},
	person.OPositive:  {person.OPositive, person.APositive, person.BPositive, person.ABPositive},
	person.ANegative:  {person.ANegative, person.APositive, person.ABNegative, person.ABPositive},
	person.APositive:  {person.APositive, person.ABPositive},
	person.BNegative:  {person.BNegative, person.BPositive, person.ABNegative, person.ABPositive},
	person.BPositive:  {person.BPositive, person.ABPositive},
	person.ABNegative: {person.ABNegative, person.ABPositive},
	person.ABPositive: {person.ABPositive},
}

// CompatibleDonorTypes returns every donor blood type that can donate to the
// given patient type. It is the inverse of bloodCompatibility, derived from
// the table rather than maintained as a second structure so the two can
// never drift apart. Donor types are returned in the fixed order of
// person.AllBloodTypes.
func CompatibleDonorTypes(patient person.BloodType) []person.BloodType {
	var donors []person.BloodType
	for _, donor := range person.AllBloodTypes {
		for _, target := range bloodCompatibility[donor] {
			if target == patient {
				donors = append(donors, donor)
				break
			}
		}
	}
	return donors
}

// CanDonate reports whether the donor type may supply the patient type.
func CanDonate(donor, patient person.BloodType) bool {
	for _, target := range bloodCompatibility[donor] {
		if target == patient {
			return true
		}
	}
	return false
}

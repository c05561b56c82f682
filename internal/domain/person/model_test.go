package person

import "testing"

func TestParseBloodType(t *testing.T) {
	tests := []struct {
		in   string
		want BloodType
	}{
		{"A+", APositive},
		{"a+", APositive},
		{" ab- ", ABNegative},
		{"O NEGATIVE", ONegative},
		{"b positive", BPositive},
		{"AB POSITIVE", ABPositive},
	}
	for _, tt := range tests {
		got, err := ParseBloodType(tt.in)
		if err != nil {
			t.Errorf("ParseBloodType(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBloodType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseBloodType_Invalid(t *testing.T) {
	for _, in := range []string{"", "C+", "A", "positive", "O--"} {
		if _, err := ParseBloodType(in); err == nil {
			t.Errorf("ParseBloodType(%q): expected error", in)
		}
	}
}

func TestBloodType_IsValid(t *testing.T) {
	if len(AllBloodTypes) != 8 {
		t.Fatalf("expected exactly 8 blood types, got %d", len(AllBloodTypes))
	}
	for _, bt := range AllBloodTypes {
		if !bt.IsValid() {
			t.Errorf("%s should be valid", bt)
		}
	}
	if BloodType("X+").IsValid() {
		t.Error("X+ should not be valid")
	}
}

func TestEnums_IsValid(t *testing.T) {
	if !RoleDonor.IsValid() || !RolePatient.IsValid() || Role("admin").IsValid() {
		t.Error("role validity check broken")
	}
	if !Eligible.IsValid() || !Ineligible.IsValid() || !EligibilityUnknown.IsValid() {
		t.Error("eligibility validity check broken")
	}
	if EligibilityStatus("maybe").IsValid() {
		t.Error("unexpected eligibility status accepted")
	}
	if !Active.IsValid() || !Inactive.IsValid() || ActivityStatus("paused").IsValid() {
		t.Error("activity validity check broken")
	}
}

func TestPerson_HasLocation(t *testing.T) {
	lat, lon := 28.6, 77.2
	p := &Person{}
	if p.HasLocation() {
		t.Error("empty person should have no location")
	}
	p.Latitude = &lat
	if p.HasLocation() {
		t.Error("latitude alone is not a location")
	}
	p.Longitude = &lon
	if !p.HasLocation() {
		t.Error("both coordinates set should count as located")
	}
}

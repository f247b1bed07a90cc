package mapping

import "testing"

func TestValidTechniqueID(t *testing.T) {
	valid := []string{"T1059", "T1059.001", "T0001", "T9999.999"}
	for _, id := range valid {
		if !ValidTechniqueID(id) {
			t.Errorf("ValidTechniqueID(%q) = false, want true", id)
		}
	}

	invalid := []string{"", "t1059", "T105", "T10599", "T1059.1", "T1059.0001", "1059", "T1059.001.002", " T1059"}
	for _, id := range invalid {
		if ValidTechniqueID(id) {
			t.Errorf("ValidTechniqueID(%q) = true, want false", id)
		}
	}
}

func TestNormalizeBool(t *testing.T) {
	cases := []struct {
		cell  string
		value bool
		ok    bool
	}{
		{"x", true, true},
		{"X", true, true},
		{"yes", true, true},
		{"Y", true, true},
		{"TRUE", true, true},
		{"1", true, true},
		{" x ", true, true},
		{"", false, true},
		{"no", false, true},
		{"n", false, true},
		{"False", false, true},
		{"0", false, true},
		{"maybe", false, false},
		{"2", false, false},
		{"xx", false, false},
	}

	for _, tc := range cases {
		value, ok := NormalizeBool(tc.cell)
		if value != tc.value || ok != tc.ok {
			t.Errorf("NormalizeBool(%q) = (%v, %v), want (%v, %v)", tc.cell, value, ok, tc.value, tc.ok)
		}
	}
}

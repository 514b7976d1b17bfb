package equity

import "testing"

func TestCompliancePredicates_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		pred func(float64) bool
		x    float64
		want bool
	}{
		{"cod lower bound", CODMet, 5, true},
		{"cod below lower", CODMet, 4.999, false},
		{"cod upper bound", CODMet, 15, true},
		{"cod above upper", CODMet, 15.001, false},
		{"prd lower bound", PRDMet, 0.98, true},
		{"prd above upper", PRDMet, 1.031, false},
		{"prb inside", PRBMet, 0.0, true},
		{"prb below lower", PRBMet, -0.051, false},
		{"prb upper bound", PRBMet, 0.05, true},
		{"mki lower bound", MKIMet, 0.95, true},
		{"mki above upper", MKIMet, 1.051, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.x); got != tt.want {
				t.Errorf("predicate(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

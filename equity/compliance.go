package equity

// IAAO Standard on Ratio Studies acceptance intervals (closed on both ends).
const (
	CODStandardLow  = 5.0
	CODStandardHigh = 15.0
	PRDStandardLow  = 0.98
	PRDStandardHigh = 1.03
	PRBStandardLow  = -0.05
	PRBStandardHigh = 0.05
	MKIStandardLow  = 0.95
	MKIStandardHigh = 1.05
)

// CODMet reports whether a COD value meets the IAAO uniformity standard.
func CODMet(x float64) bool { return x >= CODStandardLow && x <= CODStandardHigh }

// PRDMet reports whether a PRD value meets the IAAO vertical equity standard.
func PRDMet(x float64) bool { return x >= PRDStandardLow && x <= PRDStandardHigh }

// PRBMet reports whether a PRB value meets the IAAO vertical equity standard.
func PRBMet(x float64) bool { return x >= PRBStandardLow && x <= PRBStandardHigh }

// MKIMet reports whether a Gini-based index (KI or MKI) meets the accepted
// range. The standard publishes a single interval for the pair.
func MKIMet(x float64) bool { return x >= MKIStandardLow && x <= MKIStandardHigh }

// Package equity computes IAAO ratio-study fairness metrics: COD for
// horizontal equity, PRD/PRB and the Gini-based KI/MKI for vertical
// equity, plus the matching compliance predicates.
//
// Every metric validates its inputs through assessgo/validate before
// computing and returns an error rather than NaN for degenerate data.
package equity

import (
	"math"

	"assessgo/domain/core"
	"assessgo/validate"

	"github.com/montanaflynn/stats"
)

// COD computes the coefficient of dispersion: the average absolute percent
// deviation from the median ratio. Lower values indicate tighter horizontal
// equity. COD is extremely sensitive to outlier ratios; trim with the
// outlier package first when following IAAO guidance.
func COD(ratio []float64) (float64, error) {
	if err := validate.Vectors(ratio); err != nil {
		return 0, err
	}

	median, err := stats.Median(ratio)
	if err != nil {
		return 0, core.NewDegeneracyError("median ratio")
	}
	if median == 0 {
		return 0, core.NewDegeneracyError("median ratio is zero")
	}

	sumAbsDev := 0.0
	for _, r := range ratio {
		sumAbsDev += math.Abs(r - median)
	}

	return 100 / median * (sumAbsDev / float64(len(ratio))), nil
}

// ratios divides assessed values by sale prices pairwise. Inputs must
// already be validated.
func ratios(assessed, salePrice []float64) []float64 {
	out := make([]float64, len(assessed))
	for i := range assessed {
		out[i] = assessed[i] / salePrice[i]
	}
	return out
}

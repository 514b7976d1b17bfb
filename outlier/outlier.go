// Package outlier flags extreme values in ratio-study vectors. The IAAO
// recommends trimming outlier ratios before computing COD or PRD; whether
// to trim is left to the caller.
package outlier

import (
	"fmt"

	"assessgo/domain/core"
	"assessgo/validate"

	"github.com/montanaflynn/stats"
)

// DefaultIQRMultiplier is the conventional fence multiplier for ratio
// studies (IAAO Appendix B.1). It is a policy constant, not a derived one.
const DefaultIQRMultiplier = 3.0

// Default quantile fences for the quantile screen.
const (
	DefaultLowerQuantile = 0.05
	DefaultUpperQuantile = 0.95
)

// Method selects an outlier screening policy.
type Method string

const (
	MethodIQR      Method = "iqr"
	MethodQuantile Method = "quantile"
)

// IQR flags values falling outside [Q1 - mult*IQR, Q3 + mult*IQR]. The
// returned slice is aligned with the input.
func IQR(x []float64, mult float64) ([]bool, error) {
	if err := validate.Vectors(x); err != nil {
		return nil, err
	}
	if mult <= 0 {
		return nil, core.NewConfigError("iqr multiplier must be greater than 0")
	}

	q, err := stats.Quartile(x)
	if err != nil {
		return nil, err
	}
	iqr := q.Q3 - q.Q1
	lower := q.Q1 - mult*iqr
	upper := q.Q3 + mult*iqr

	flags := make([]bool, len(x))
	for i, v := range x {
		flags[i] = v < lower || v > upper
	}
	return flags, nil
}

// Quantile flags values falling below the lo quantile or above the hi
// quantile. Both probabilities must lie strictly inside (0, 1) with
// lo < hi.
func Quantile(x []float64, lo, hi float64) ([]bool, error) {
	if err := validate.Vectors(x); err != nil {
		return nil, err
	}
	if lo <= 0 || hi >= 1 || lo >= hi {
		return nil, core.NewConfigError("quantile bounds must satisfy 0 < lo < hi < 1")
	}

	lowerFence, err := stats.Percentile(x, lo*100)
	if err != nil {
		return nil, err
	}
	upperFence, err := stats.Percentile(x, hi*100)
	if err != nil {
		return nil, err
	}

	flags := make([]bool, len(x))
	for i, v := range x {
		flags[i] = v < lowerFence || v > upperFence
	}
	return flags, nil
}

// Flag screens x with the named method using its default configuration.
func Flag(x []float64, method Method) ([]bool, error) {
	switch method {
	case MethodIQR:
		return IQR(x, DefaultIQRMultiplier)
	case MethodQuantile:
		return Quantile(x, DefaultLowerQuantile, DefaultUpperQuantile)
	default:
		return nil, core.NewConfigError(fmt.Sprintf("unknown outlier method %q", method))
	}
}

// Trim returns x with flagged values removed.
func Trim(x []float64, flags []bool) []float64 {
	kept := make([]float64, 0, len(x))
	for i, v := range x {
		if !flags[i] {
			kept = append(kept, v)
		}
	}
	return kept
}

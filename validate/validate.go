// Package validate enforces the input contract shared by every ratio-study
// metric: finite, strictly positive float64 vectors of matching length.
//
// All violations found in one call are aggregated into a single error so
// callers see every problem at once rather than fixing them one by one.
package validate

import (
	"math"

	"assessgo/domain/core"
)

const (
	reasonMissing  = "input values cannot be missing (NaN)"
	reasonLength   = "input vectors must have length greater than 1"
	reasonInfinite = "input values cannot be infinite"
	reasonPositive = "input values must be greater than 0"
	reasonAligned  = "input vectors must have the same length"
)

// Vectors checks every vector against the shared contract. It returns nil
// when all vectors are clean, otherwise one core.ErrInvalidInput listing
// each distinct violated condition. Missing observations are represented
// as NaN; there is no separate null in a []float64.
func Vectors(vectors ...[]float64) error {
	var reasons []string
	seen := make(map[string]bool)
	add := func(reason string) {
		if !seen[reason] {
			seen[reason] = true
			reasons = append(reasons, reason)
		}
	}

	for _, v := range vectors {
		if len(v) <= 1 {
			add(reasonLength)
		}
		for _, x := range v {
			switch {
			case math.IsNaN(x):
				add(reasonMissing)
			case math.IsInf(x, 0):
				add(reasonInfinite)
			case x <= 0:
				add(reasonPositive)
			}
		}
	}

	for i := 1; i < len(vectors); i++ {
		if len(vectors[i]) != len(vectors[0]) {
			add(reasonAligned)
			break
		}
	}

	if len(reasons) > 0 {
		return core.NewInputError(reasons)
	}
	return nil
}

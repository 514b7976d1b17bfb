package equity

import (
	"assessgo/validate"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// PRD computes the price-related differential: the mean ratio divided by
// the sale-price-weighted mean ratio. PRD centers slightly above 1; values
// above the standard range indicate regressivity (low-value properties
// over-assessed relative to high-value ones).
func PRD(assessed, salePrice []float64) (float64, error) {
	if err := validate.Vectors(assessed, salePrice); err != nil {
		return 0, err
	}

	ratio := ratios(assessed, salePrice)
	mean, err := stats.Mean(ratio)
	if err != nil {
		return 0, err
	}
	weighted := stat.Mean(ratio, salePrice)

	return mean / weighted, nil
}

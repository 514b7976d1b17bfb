package equity

import (
	"math"

	"assessgo/domain/core"
	"assessgo/validate"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// prbConfidenceLevel is the two-sided confidence level for the PRB interval.
const prbConfidenceLevel = 0.95

// PRBResult holds the PRB point estimate and its 95% confidence interval.
type PRBResult struct {
	PRB float64    `json:"prb"`
	CI  [2]float64 `json:"ci_95"`
}

// Round returns a copy with the point estimate and both interval bounds
// independently rounded to the given number of decimal places.
func (r PRBResult) Round(places int) PRBResult {
	return PRBResult{
		PRB: roundTo(r.PRB, places),
		CI:  [2]float64{roundTo(r.CI[0], places), roundTo(r.CI[1], places)},
	}
}

func roundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}

// PRB computes the price-related bias coefficient: the slope of a
// no-intercept OLS regression of the normalized ratio deviation
// (ratio - median)/median on log2((assessed/median + sale)/2). A PRB of
// 0.02 means ratios rise about 2% whenever values double. Zero indicates
// vertical equity, positive progressivity, negative regressivity.
func PRB(assessed, salePrice []float64) (PRBResult, error) {
	if err := validate.Vectors(assessed, salePrice); err != nil {
		return PRBResult{}, err
	}

	ratio := ratios(assessed, salePrice)
	median, err := stats.Median(ratio)
	if err != nil {
		return PRBResult{}, core.NewDegeneracyError("median ratio")
	}
	if median == 0 {
		return PRBResult{}, core.NewDegeneracyError("median ratio is zero")
	}

	n := len(ratio)
	lhs := make([]float64, n)
	rhs := make([]float64, n)
	sumRhs2 := 0.0
	for i := range ratio {
		lhs[i] = (ratio[i] - median) / median
		rhs[i] = math.Log2((assessed[i]/median + salePrice[i]) / 2)
		sumRhs2 += rhs[i] * rhs[i]
	}

	if sumRhs2 == 0 {
		return PRBResult{}, core.NewDegeneracyError("singular regression design")
	}

	// Regression through the origin: the single slope is the PRB value.
	_, slope := stat.LinearRegression(rhs, lhs, nil, true)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return PRBResult{}, core.NewDegeneracyError("regression slope")
	}

	// Closed-form standard error from the residual variance. With one
	// regressor and no intercept the residual degrees of freedom are n-1.
	rss := 0.0
	for i := range lhs {
		resid := lhs[i] - slope*rhs[i]
		rss += resid * resid
	}
	df := float64(n - 1)
	se := math.Sqrt(rss / df / sumRhs2)

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	tCrit := tDist.Quantile(1 - (1-prbConfidenceLevel)/2)

	return PRBResult{
		PRB: slope,
		CI:  [2]float64{slope - tCrit*se, slope + tCrit*se},
	}, nil
}

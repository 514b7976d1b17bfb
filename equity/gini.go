package equity

import (
	"sort"

	"assessgo/domain/core"
	"assessgo/validate"
)

// KI computes the Kakwani Index: the difference between the Gini
// coefficient of assessed values and the Gini coefficient of sale prices,
// both taken over the sale-price-sorted order. Zero indicates vertical
// equity.
func KI(assessed, salePrice []float64) (float64, error) {
	giniAssessed, giniSale, err := saleOrderedGini(assessed, salePrice)
	if err != nil {
		return 0, err
	}
	return giniAssessed - giniSale, nil
}

// MKI computes the Modified Kakwani Index: the ratio of the two
// sale-ordered Gini coefficients. One indicates vertical equity.
func MKI(assessed, salePrice []float64) (float64, error) {
	giniAssessed, giniSale, err := saleOrderedGini(assessed, salePrice)
	if err != nil {
		return 0, err
	}
	if giniSale == 0 {
		return 0, core.NewDegeneracyError("sale-price gini is zero")
	}
	return giniAssessed / giniSale, nil
}

// saleOrderedGini sorts property pairs ascending by sale price and computes
// the rank-weighted Gini coefficient of each sequence over that single
// shared ordering. Using the sale-price-induced order for both sequences
// is what distinguishes these indices from two independent Ginis.
func saleOrderedGini(assessed, salePrice []float64) (giniAssessed, giniSale float64, err error) {
	if err := validate.Vectors(assessed, salePrice); err != nil {
		return 0, 0, err
	}

	n := len(assessed)
	type pair struct{ sale, assessed float64 }
	pairs := make([]pair, n)
	for i := range assessed {
		pairs[i] = pair{sale: salePrice[i], assessed: assessed[i]}
	}
	// Stable sort keeps tied sale prices paired with their own assessments.
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].sale < pairs[j].sale })

	var sumAssessed, sumSale float64
	var rankedAssessed, rankedSale float64
	for i, p := range pairs {
		rank := float64(i + 1)
		sumAssessed += p.assessed
		sumSale += p.sale
		rankedAssessed += p.assessed * rank
		rankedSale += p.sale * rank
	}

	nf := float64(n)
	giniAssessed = (2*rankedAssessed/sumAssessed - (nf + 1)) / nf
	giniSale = (2*rankedSale/sumSale - (nf + 1)) / nf
	return giniAssessed, giniSale, nil
}

// Package sample provides fixture data for ratio-study examples and tests:
// a fixed reference study and a seeded synthetic generator. The metric
// packages never depend on it.
package sample

import "math/rand/v2"

// Fixed reference study: 32 residential parcels with assessments centered
// a little under full market value, the usual shape of an open-market
// ratio study.
var (
	referenceAssessed = []float64{
		98000, 143500, 187200, 246000, 305500, 87300, 121000, 164800,
		219400, 287600, 94100, 132700, 176900, 231800, 298200, 105600,
		151200, 198400, 257300, 318900, 90800, 138400, 182600, 240100,
		311700, 99700, 147800, 192300, 251600, 324400, 112300, 158600,
	}
	referenceSale = []float64{
		105000, 149000, 196500, 262000, 329500, 89500, 128000, 171200,
		234600, 301400, 101300, 136200, 189700, 244900, 317800, 108200,
		160400, 203100, 274800, 334600, 97600, 141000, 195400, 249800,
		335100, 102900, 157300, 198900, 268400, 341200, 115800, 163200,
	}
)

// Reference returns copies of the bundled assessed and sale-price vectors.
func Reference() (assessed, salePrice []float64) {
	assessed = make([]float64, len(referenceAssessed))
	salePrice = make([]float64, len(referenceSale))
	copy(assessed, referenceAssessed)
	copy(salePrice, referenceSale)
	return assessed, salePrice
}

// ReferenceRatios returns the precomputed ratio vector of the bundled study.
func ReferenceRatios() []float64 {
	out := make([]float64, len(referenceAssessed))
	for i := range referenceAssessed {
		out[i] = referenceAssessed[i] / referenceSale[i]
	}
	return out
}

// GeneratorConfig configures the synthetic study generator.
type GeneratorConfig struct {
	Parcels      int     `json:"parcels"`
	MeanRatio    float64 `json:"mean_ratio"`
	RatioStdDev  float64 `json:"ratio_std_dev"`
	MinSalePrice float64 `json:"min_sale_price"`
	MaxSalePrice float64 `json:"max_sale_price"`

	// ChasedShare is the fraction of parcels assessed exactly at their
	// sale price, simulating sales chasing for detector demos.
	ChasedShare float64 `json:"chased_share"`

	Seed uint64 `json:"seed"`
}

// DefaultGeneratorConfig returns sensible defaults for an un-chased study.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Parcels:      1000,
		MeanRatio:    0.95,
		RatioStdDev:  0.10,
		MinSalePrice: 60000,
		MaxSalePrice: 450000,
		ChasedShare:  0,
		Seed:         42,
	}
}

// Generator produces synthetic assessed/sale-price studies.
type Generator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewGenerator creates a generator seeded from the config. The same seed
// always produces the same study.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{
		config: config,
		rng:    rand.New(rand.NewPCG(config.Seed, config.Seed)),
	}
}

// Generate builds one study. Chased parcels come first so callers can
// inspect them; ratios are clamped away from zero to keep the study valid.
func (g *Generator) Generate() (assessed, salePrice []float64) {
	n := g.config.Parcels
	assessed = make([]float64, n)
	salePrice = make([]float64, n)
	chased := int(float64(n) * g.config.ChasedShare)

	for i := 0; i < n; i++ {
		sale := g.config.MinSalePrice + g.rng.Float64()*(g.config.MaxSalePrice-g.config.MinSalePrice)
		salePrice[i] = sale

		if i < chased {
			assessed[i] = sale
			continue
		}

		ratio := g.config.MeanRatio + g.rng.NormFloat64()*g.config.RatioStdDev
		if ratio < 0.05 {
			ratio = 0.05
		}
		assessed[i] = sale * ratio
	}
	return assessed, salePrice
}

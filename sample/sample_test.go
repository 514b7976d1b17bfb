package sample

import (
	"testing"

	"assessgo/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference_IsValidStudy(t *testing.T) {
	assessed, salePrice := Reference()

	require.Equal(t, len(assessed), len(salePrice))
	assert.NoError(t, validate.Vectors(assessed, salePrice))
}

func TestReferenceRatios_MatchPairs(t *testing.T) {
	assessed, salePrice := Reference()
	ratios := ReferenceRatios()

	require.Equal(t, len(assessed), len(ratios))
	for i := range ratios {
		assert.InDelta(t, assessed[i]/salePrice[i], ratios[i], 1e-12)
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Parcels = 100

	a1, s1 := NewGenerator(cfg).Generate()
	a2, s2 := NewGenerator(cfg).Generate()

	assert.Equal(t, a1, a2)
	assert.Equal(t, s1, s2)
}

func TestGenerator_ChasedShare(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Parcels = 200
	cfg.ChasedShare = 0.25

	assessed, salePrice := NewGenerator(cfg).Generate()

	for i := 0; i < 50; i++ {
		assert.Equal(t, salePrice[i], assessed[i], "parcel %d should be chased", i)
	}
	assert.NoError(t, validate.Vectors(assessed, salePrice))
}

func TestGenerator_OutputValidates(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Parcels = 500
	cfg.Seed = 7

	assessed, salePrice := NewGenerator(cfg).Generate()

	assert.NoError(t, validate.Vectors(assessed, salePrice))
}

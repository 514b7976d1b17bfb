package chasing

import (
	"math/rand/v2"
	"testing"

	"assessgo/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

// smoothRatios builds a perfectly smooth sample by taking evenly spaced
// quantiles of a normal distribution, so the empirical CDF has no jumps
// beyond 1/n.
func smoothRatios(n int, mu, sigma float64) []float64 {
	dist := distuv.Normal{Mu: mu, Sigma: sigma}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = dist.Quantile((float64(i) + 0.5) / float64(n))
	}
	return out
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

func seededDetector(method Method) *Detector {
	d := NewDetector()
	d.Method = method
	d.Src = rand.NewPCG(7, 7)
	return d
}

func TestDetect_CDFFlagsDuplicateClusterInBand(t *testing.T) {
	// 100 of 1000 ratios pinned at exactly 1.00: a 10% CDF jump inside the
	// default band.
	ratios := append(smoothRatios(900, 1.0, 0.15), ones(100)...)

	chased, err := seededDetector(MethodCDF).Detect(ratios, ones(len(ratios)))

	require.NoError(t, err)
	assert.True(t, chased)
}

func TestDetect_CDFPassesSmoothSample(t *testing.T) {
	ratios := smoothRatios(1000, 1.0, 0.15)

	chased, err := seededDetector(MethodCDF).Detect(ratios, ones(len(ratios)))

	require.NoError(t, err)
	assert.False(t, chased)
}

func TestDetect_DistFlagsBunchedSample(t *testing.T) {
	ratios := append(smoothRatios(900, 1.0, 0.15), ones(100)...)

	chased, err := seededDetector(MethodDist).Detect(ratios, ones(len(ratios)))

	require.NoError(t, err)
	assert.True(t, chased)
}

func TestDetect_DistPassesSmoothSample(t *testing.T) {
	ratios := smoothRatios(1000, 1.0, 0.15)

	chased, err := seededDetector(MethodDist).Detect(ratios, ones(len(ratios)))

	require.NoError(t, err)
	assert.False(t, chased)
}

func TestDetect_BothRequiresAgreement(t *testing.T) {
	chasedSample := append(smoothRatios(900, 1.0, 0.15), ones(100)...)
	smoothSample := smoothRatios(1000, 1.0, 0.15)

	both := seededDetector(MethodBoth)

	chased, err := both.Detect(chasedSample, ones(len(chasedSample)))
	require.NoError(t, err)
	assert.True(t, chased)

	both.Src = rand.NewPCG(7, 7)
	chased, err = both.Detect(smoothSample, ones(len(smoothSample)))
	require.NoError(t, err)
	assert.False(t, chased)
}

func TestDetect_SeededSourceIsDeterministic(t *testing.T) {
	ratios := smoothRatios(200, 1.0, 0.15)
	sale := ones(len(ratios))

	first := seededDetector(MethodDist)
	second := seededDetector(MethodDist)

	a, err := first.Detect(ratios, sale)
	require.NoError(t, err)
	b, err := second.Detect(ratios, sale)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestDetect_ConfigValidation(t *testing.T) {
	est := smoothRatios(50, 1.0, 0.1)
	sale := ones(len(est))

	d := NewDetector()
	d.Gap = 0
	_, err := d.Detect(est, sale)
	require.Error(t, err)
	assert.True(t, core.IsConfigError(err))

	d = NewDetector()
	d.Gap = 1.2
	_, err = d.Detect(est, sale)
	require.Error(t, err)
	assert.True(t, core.IsConfigError(err))

	d = NewDetector()
	d.Bounds = [2]float64{1.02, 0.98}
	_, err = d.Detect(est, sale)
	require.Error(t, err)
	assert.True(t, core.IsConfigError(err))

	d = NewDetector()
	d.Method = Method("ks")
	_, err = d.Detect(est, sale)
	require.Error(t, err)
	assert.True(t, core.IsConfigError(err))
}

func TestDetect_SmallSampleProceedsWithAdvisory(t *testing.T) {
	// Below the threshold detection still runs and returns a result.
	est := smoothRatios(10, 1.0, 0.1)

	_, err := seededDetector(MethodCDF).Detect(est, ones(len(est)))

	require.NoError(t, err)
}

func TestDetect_RejectsInvalidInput(t *testing.T) {
	_, err := NewDetector().Detect([]float64{1, 0, 2}, []float64{1, 1, 1})

	require.Error(t, err)
	assert.True(t, core.IsInputError(err))
}

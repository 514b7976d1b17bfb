// Package chasing detects sales chasing: selective reappraisal that shifts
// assessed values toward known sale prices. Both detection methods are
// heuristics, not hypothesis tests; they estimate whether the ratio
// distribution looks manipulated, without a probability attached.
package chasing

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"sort"

	"assessgo/domain/core"
	"assessgo/validate"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Method selects the detection heuristic.
type Method string

const (
	// MethodCDF flags discontinuous jumps in the empirical CDF of the
	// ratios. Un-chased ratios have a smooth CDF; a flat spot near 1 is
	// suspicious.
	MethodCDF Method = "cdf"
	// MethodDist compares how much of the ratio mass sits inside the band
	// against a synthetic normal distribution with the same mean and
	// standard deviation (IAAO Appendix E, Section 4). Chased ratios bunch
	// up in the center.
	MethodDist Method = "dist"
	// MethodBoth requires both heuristics to agree.
	MethodBoth Method = "both"
)

const (
	// DefaultGap is the detection threshold: the maximum allowed CDF jump,
	// and the maximum allowed in-band share difference.
	DefaultGap = 0.03

	// SmallSampleThreshold is the sample size below which detection
	// reliability degrades. A policy constant from the domain literature.
	SmallSampleThreshold = 30

	// DefaultSampleSize is the synthetic reference draw size for MethodDist.
	DefaultSampleSize = 10000
)

// DefaultBounds is the ratio band of interest around 1. A narrow band
// prevents false positives at the tails.
var DefaultBounds = [2]float64{0.98, 1.02}

// Detector holds sales-chasing detection configuration. The zero value is
// not usable; construct with NewDetector and override fields as needed.
type Detector struct {
	Bounds     [2]float64
	Gap        float64
	Method     Method
	SampleSize int

	// Src seeds the synthetic reference draw used by MethodDist. When nil
	// the global source is used: results are statistically stable but not
	// bit-reproducible across runs. Fix a source for deterministic output.
	Src rand.Source
}

// NewDetector returns a detector with the default band, gap, and method.
func NewDetector() *Detector {
	return &Detector{
		Bounds:     DefaultBounds,
		Gap:        DefaultGap,
		Method:     MethodBoth,
		SampleSize: DefaultSampleSize,
	}
}

// Detect reports whether the estimate/sale-price pairs look sales chased
// under the configured method. Configuration is validated before any
// computation; small samples proceed with a logged advisory.
func (d *Detector) Detect(estimate, salePrice []float64) (bool, error) {
	if d.Gap <= 0 || d.Gap >= 1 {
		return false, core.NewConfigError("gap must be a positive value less than 1")
	}
	if d.Bounds[0] >= d.Bounds[1] {
		return false, core.NewConfigError("bounds must have the left value lower than the right value")
	}
	if err := validate.Vectors(estimate, salePrice); err != nil {
		return false, err
	}
	if len(estimate) < SmallSampleThreshold {
		log.Printf("[chasing] advisory: detection can be misleading on small samples (n=%d < %d)",
			len(estimate), SmallSampleThreshold)
	}

	switch d.Method {
	case MethodCDF:
		return d.detectCDF(estimate, salePrice), nil
	case MethodDist:
		return d.detectDist(estimate, salePrice), nil
	case MethodBoth:
		return d.detectCDF(estimate, salePrice) && d.detectDist(estimate, salePrice), nil
	default:
		return false, core.NewConfigError(fmt.Sprintf("unknown chasing method %q", d.Method))
	}
}

// detectCDF looks for the largest jump in the empirical CDF of the sorted
// ratios and flags when it exceeds the gap strictly inside the band.
func (d *Detector) detectCDF(estimate, salePrice []float64) bool {
	ratio := ratios(estimate, salePrice)
	sort.Float64s(ratio)
	n := len(ratio)

	// Empirical CDF at each sorted ratio: fraction of samples <= value.
	// Tied values share the CDF level of the last element of their run.
	cdf := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && ratio[j+1] == ratio[i] {
			j++
		}
		level := float64(j+1) / float64(n)
		for k := i; k <= j; k++ {
			cdf[k] = level
		}
		i = j + 1
	}

	maxDiff := math.Inf(-1)
	diffLoc := 0.0
	for i := 1; i < n; i++ {
		if diff := cdf[i] - cdf[i-1]; diff > maxDiff {
			maxDiff = diff
			diffLoc = ratio[i]
		}
	}

	return maxDiff > d.Gap && diffLoc > d.Bounds[0] && diffLoc < d.Bounds[1]
}

// detectDist draws a synthetic normal sample matching the observed ratio
// mean and standard deviation, then compares in-band shares.
func (d *Detector) detectDist(estimate, salePrice []float64) bool {
	ratio := ratios(estimate, salePrice)
	mean, _ := stats.Mean(ratio)
	// Population standard deviation, matching the reference distribution's
	// moment estimate rather than the sample-corrected one.
	stdDev, _ := stats.StandardDeviationPopulation(ratio)

	size := d.SampleSize
	if size <= 0 {
		size = DefaultSampleSize
	}

	ideal := distuv.Normal{Mu: mean, Sigma: stdDev, Src: d.Src}
	inBandIdeal := 0
	for i := 0; i < size; i++ {
		if v := ideal.Rand(); v >= d.Bounds[0] && v <= d.Bounds[1] {
			inBandIdeal++
		}
	}
	pctIdeal := float64(inBandIdeal) / float64(size)

	inBandActual := 0
	for _, r := range ratio {
		if r >= d.Bounds[0] && r <= d.Bounds[1] {
			inBandActual++
		}
	}
	pctActual := float64(inBandActual) / float64(len(ratio))

	return math.Abs(pctActual-pctIdeal) > d.Gap
}

func ratios(estimate, salePrice []float64) []float64 {
	out := make([]float64, len(estimate))
	for i := range estimate {
		out[i] = estimate[i] / salePrice[i]
	}
	return out
}

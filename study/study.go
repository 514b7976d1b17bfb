// Package study runs a complete ratio study over one set of property
// pairs: every equity metric, the matching compliance verdicts, and the
// sales-chasing detector, collected into a single report artifact.
package study

import (
	"context"

	"assessgo/chasing"
	"assessgo/domain/core"
	"assessgo/equity"
	"assessgo/outlier"
	"assessgo/validate"

	"golang.org/x/sync/errgroup"
)

// Options configures a study run.
type Options struct {
	// TrimOutliers drops properties whose ratio falls outside the IQR
	// fences before computing COD and PRD, per IAAO guidance. PRB and the
	// Gini indices always see the full sample.
	TrimOutliers  bool
	IQRMultiplier float64

	// Detector overrides the sales-chasing configuration. Nil uses
	// chasing.NewDetector defaults.
	Detector *chasing.Detector
}

// Report is the result artifact of one study run.
type Report struct {
	ID        core.StudyID     `json:"id"`
	CreatedAt core.Timestamp   `json:"created_at"`
	Parcels   int              `json:"parcels"`
	Trimmed   int              `json:"trimmed"`
	COD       float64          `json:"cod"`
	PRD       float64          `json:"prd"`
	PRB       equity.PRBResult `json:"prb"`
	KI        float64          `json:"ki"`
	MKI       float64          `json:"mki"`
	CODMet    bool             `json:"cod_met"`
	PRDMet    bool             `json:"prd_met"`
	PRBMet    bool             `json:"prb_met"`
	MKIMet    bool             `json:"mki_met"`
	Chased    bool             `json:"sales_chased"`
}

// Run computes the full metric suite. The metrics are pure and
// independent, so they execute concurrently; the first error cancels the
// run and no partial report is returned.
func Run(ctx context.Context, assessed, salePrice []float64, opts Options) (*Report, error) {
	if err := validate.Vectors(assessed, salePrice); err != nil {
		return nil, err
	}

	codAssessed, codSale := assessed, salePrice
	trimmed := 0
	if opts.TrimOutliers {
		mult := opts.IQRMultiplier
		if mult <= 0 {
			mult = outlier.DefaultIQRMultiplier
		}
		ratio := make([]float64, len(assessed))
		for i := range assessed {
			ratio[i] = assessed[i] / salePrice[i]
		}
		flags, err := outlier.IQR(ratio, mult)
		if err != nil {
			return nil, err
		}
		codAssessed = outlier.Trim(assessed, flags)
		codSale = outlier.Trim(salePrice, flags)
		trimmed = len(assessed) - len(codAssessed)
	}

	det := opts.Detector
	if det == nil {
		det = chasing.NewDetector()
	}

	report := &Report{
		ID:        core.StudyID(core.NewID()),
		CreatedAt: core.Now(),
		Parcels:   len(assessed),
		Trimmed:   trimmed,
	}

	codRatio := make([]float64, len(codAssessed))
	for i := range codAssessed {
		codRatio[i] = codAssessed[i] / codSale[i]
	}

	// Each goroutine writes a disjoint set of report fields.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		cod, err := equity.COD(codRatio)
		if err != nil {
			return err
		}
		report.COD = cod
		report.CODMet = equity.CODMet(cod)
		return nil
	})
	g.Go(func() error {
		prd, err := equity.PRD(codAssessed, codSale)
		if err != nil {
			return err
		}
		report.PRD = prd
		report.PRDMet = equity.PRDMet(prd)
		return nil
	})
	g.Go(func() error {
		prb, err := equity.PRB(assessed, salePrice)
		if err != nil {
			return err
		}
		report.PRB = prb
		report.PRBMet = equity.PRBMet(prb.PRB)
		return nil
	})
	g.Go(func() error {
		ki, err := equity.KI(assessed, salePrice)
		if err != nil {
			return err
		}
		mki, err := equity.MKI(assessed, salePrice)
		if err != nil {
			return err
		}
		report.KI = ki
		report.MKI = mki
		report.MKIMet = equity.MKIMet(mki)
		return nil
	})
	g.Go(func() error {
		chased, err := det.Detect(assessed, salePrice)
		if err != nil {
			return err
		}
		report.Chased = chased
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

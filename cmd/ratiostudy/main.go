// Command ratiostudy runs the full equity metric suite over a study file
// or a generated sample and prints the report as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"assessgo/adapters/excel"
	"assessgo/chasing"
	"assessgo/sample"
	"assessgo/study"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for RATIOSTUDY_FILE and column names.
	_ = godotenv.Load()

	var (
		file        = flag.String("file", os.Getenv("RATIOSTUDY_FILE"), "xlsx or csv study file; empty generates a sample study")
		assessedCol = flag.String("assessed-col", envOr("RATIOSTUDY_ASSESSED_COL", "assessed"), "assessed value column header")
		saleCol     = flag.String("sale-col", envOr("RATIOSTUDY_SALE_COL", "sale_price"), "sale price column header")
		parcels     = flag.Int("parcels", 1000, "sample study size when no file is given")
		seed        = flag.Uint64("seed", 42, "sample study seed")
		chasedShare = flag.Float64("chased-share", 0, "fraction of sample parcels assessed at sale price")
		trim        = flag.Bool("trim", false, "trim IQR outlier ratios before COD/PRD")
		method      = flag.String("method", string(chasing.MethodBoth), "chasing detection method: cdf, dist, or both")
		gap         = flag.Float64("gap", chasing.DefaultGap, "chasing detection gap threshold")
	)
	flag.Parse()

	if err := run(*file, *assessedCol, *saleCol, *parcels, *seed, *chasedShare, *trim, *method, *gap); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(file, assessedCol, saleCol string, parcels int, seed uint64, chasedShare float64, trim bool, method string, gap float64) error {
	var assessed, salePrice []float64
	if file != "" {
		data, err := excel.NewStudyReader(file).ReadStudy(assessedCol, saleCol)
		if err != nil {
			return err
		}
		assessed, salePrice = data.Assessed, data.SalePrice
	} else {
		cfg := sample.DefaultGeneratorConfig()
		cfg.Parcels = parcels
		cfg.Seed = seed
		cfg.ChasedShare = chasedShare
		assessed, salePrice = sample.NewGenerator(cfg).Generate()
	}

	det := chasing.NewDetector()
	det.Method = chasing.Method(method)
	det.Gap = gap

	report, err := study.Run(context.Background(), assessed, salePrice, study.Options{
		TrimOutliers: trim,
		Detector:     det,
	})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

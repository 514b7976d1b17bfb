// Package excel reads ratio-study input files: assessed values and sale
// prices pulled by header name from an xlsx worksheet or a CSV file.
package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// StudyData holds one loaded ratio study.
type StudyData struct {
	Assessed  []float64
	SalePrice []float64
}

// Parcels returns the number of loaded property pairs.
func (d *StudyData) Parcels() int { return len(d.Assessed) }

// StudyReader handles reading Excel and CSV study files.
type StudyReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewStudyReader creates a reader that handles both Excel and CSV files.
func NewStudyReader(filePath string) *StudyReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &StudyReader{filePath: filePath, fileType: fileType}
}

// ReadStudy reads the named assessed and sale-price columns.
func (r *StudyReader) ReadStudy(assessedColumn, saleColumn string) (*StudyData, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("%s file must have at least a header row and one data row",
			strings.ToUpper(r.fileType))
	}

	return r.extractStudy(rows, assessedColumn, saleColumn)
}

// readExcelRows reads all rows from Sheet1.
func (r *StudyReader) readExcelRows() ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	log.Printf("[StudyReader] Excel file read in %.2fms (%d rows)",
		float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

func (r *StudyReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	startTime := time.Now()
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	log.Printf("[StudyReader] CSV file read in %.2fms (%d rows)",
		float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

// extractStudy locates the two columns by header and parses every data row.
func (r *StudyReader) extractStudy(rows [][]string, assessedColumn, saleColumn string) (*StudyData, error) {
	headerRow := rows[0]
	assessedIdx, saleIdx := -1, -1
	for i, header := range headerRow {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case strings.ToLower(assessedColumn):
			assessedIdx = i
		case strings.ToLower(saleColumn):
			saleIdx = i
		}
	}
	if assessedIdx < 0 {
		return nil, fmt.Errorf("assessed column %q not found in header", assessedColumn)
	}
	if saleIdx < 0 {
		return nil, fmt.Errorf("sale price column %q not found in header", saleColumn)
	}

	data := &StudyData{}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if assessedIdx >= len(row) || saleIdx >= len(row) {
			return nil, fmt.Errorf("row %d is missing study columns", i+1)
		}

		assessed, err := strconv.ParseFloat(strings.TrimSpace(row[assessedIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid assessed value %q", i+1, row[assessedIdx])
		}
		sale, err := strconv.ParseFloat(strings.TrimSpace(row[saleIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid sale price %q", i+1, row[saleIdx])
		}

		data.Assessed = append(data.Assessed, assessed)
		data.SalePrice = append(data.SalePrice, sale)
	}

	log.Printf("[StudyReader] %s study loaded (%d parcels)",
		strings.ToUpper(r.fileType), data.Parcels())
	return data, nil
}

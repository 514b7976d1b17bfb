package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "study.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadStudy_CSV(t *testing.T) {
	path := writeTempCSV(t, "pin,assessed,sale_price\n1,100000,105000\n2,150000,149000\n")

	data, err := NewStudyReader(path).ReadStudy("assessed", "sale_price")

	require.NoError(t, err)
	assert.Equal(t, 2, data.Parcels())
	assert.Equal(t, []float64{100000, 150000}, data.Assessed)
	assert.Equal(t, []float64{105000, 149000}, data.SalePrice)
}

func TestReadStudy_CSVHeaderLookupIsCaseInsensitive(t *testing.T) {
	path := writeTempCSV(t, "PIN,Assessed,Sale_Price\n1,100000,105000\n2,150000,149000\n")

	data, err := NewStudyReader(path).ReadStudy("assessed", "sale_price")

	require.NoError(t, err)
	assert.Equal(t, 2, data.Parcels())
}

func TestReadStudy_MissingColumn(t *testing.T) {
	path := writeTempCSV(t, "pin,assessed\n1,100000\n")

	_, err := NewStudyReader(path).ReadStudy("assessed", "sale_price")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sale_price")
}

func TestReadStudy_InvalidNumber(t *testing.T) {
	path := writeTempCSV(t, "assessed,sale_price\n100000,n/a\n")

	_, err := NewStudyReader(path).ReadStudy("assessed", "sale_price")

	require.Error(t, err)
}

func TestReadStudy_MissingFile(t *testing.T) {
	_, err := NewStudyReader(filepath.Join(t.TempDir(), "nope.csv")).ReadStudy("assessed", "sale_price")

	require.Error(t, err)
}

func TestReadStudy_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"assessed", "sale_price"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{100000, 105000}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{150000, 149000}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	data, err := NewStudyReader(path).ReadStudy("assessed", "sale_price")

	require.NoError(t, err)
	assert.Equal(t, 2, data.Parcels())
	assert.Equal(t, []float64{100000, 150000}, data.Assessed)
	assert.Equal(t, []float64{105000, 149000}, data.SalePrice)
}

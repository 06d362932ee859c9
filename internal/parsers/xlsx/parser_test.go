package xlsx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, sheet string, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParser_Parse(t *testing.T) {
	content := buildWorkbook(t, "Sheet1", [][]interface{}{
		{"product_id", "product_name", "price"},
		{"P001", " lapte zuzu ", 9.9},
		{},
		{"P002", "pâine albă", "3,20"},
	})

	result, err := NewParser(DefaultOptions()).Parse(content)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, 2, result.TotalRows)

	assert.Equal(t, []string{"P001", "lapte zuzu", "9.9"}, result.Records[0].Fields)
	assert.Equal(t, 2, result.Records[0].RowNumber)
	assert.Equal(t, []string{"P002", "pâine albă", "3,20"}, result.Records[1].Fields)
	assert.Equal(t, 4, result.Records[1].RowNumber)
}

func TestParser_SheetSelection(t *testing.T) {
	content := buildWorkbook(t, "Preturi", [][]interface{}{
		{"id"},
		{"P1"},
	})

	result, err := NewParser(XlsxParserOptions{HasHeader: true, SheetName: "Preturi"}).Parse(content)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	_, err = NewParser(XlsxParserOptions{SheetName: "Missing"}).Parse(content)
	assert.Error(t, err)
}

func TestParser_InvalidContent(t *testing.T) {
	_, err := NewParser(DefaultOptions()).Parse([]byte("not a workbook"))
	assert.Error(t, err)
}

func TestSerialToDate(t *testing.T) {
	date, ok := SerialToDate(45778)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), date)

	_, ok = SerialToDate(0)
	assert.False(t, ok)
}

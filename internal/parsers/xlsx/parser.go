package xlsx

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/kosarica/price-comparator/internal/types"
)

// XlsxParserOptions represents XLSX parser options
type XlsxParserOptions struct {
	// HasHeader indicates whether the first row is a header
	HasHeader bool `json:"hasHeader,omitempty"`
	// SkipEmptyRows indicates whether to skip empty rows
	SkipEmptyRows bool `json:"skipEmptyRows,omitempty"`
	// SheetName selects the sheet to parse (default: first sheet)
	SheetName string `json:"sheetName,omitempty"`
}

// DefaultOptions returns default XLSX parser options
func DefaultOptions() XlsxParserOptions {
	return XlsxParserOptions{
		HasHeader:     true,
		SkipEmptyRows: true,
	}
}

// Parser reads worksheet rows as raw records
type Parser struct {
	options XlsxParserOptions
}

// NewParser creates a new XLSX parser
func NewParser(options XlsxParserOptions) *Parser {
	return &Parser{options: options}
}

// Parse reads the selected worksheet and returns its data rows with trimmed cell values.
func (p *Parser) Parse(content []byte) (*types.ParseResult, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close workbook")
		}
	}()

	sheetName, err := p.selectSheet(f)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheetName, err)
	}

	result := &types.ParseResult{
		Records: make([]types.RawRecord, 0, len(rows)),
	}

	headerSkipped := !p.options.HasHeader
	for i, row := range rows {
		if p.options.SkipEmptyRows && isEmptyRow(row) {
			continue
		}
		if !headerSkipped {
			headerSkipped = true
			continue
		}

		fields := make([]string, len(row))
		for j, cell := range row {
			fields[j] = strings.TrimSpace(cell)
		}

		result.TotalRows++
		result.Records = append(result.Records, types.RawRecord{
			RowNumber: i + 1, // 1-based for user-facing
			Fields:    fields,
		})
	}

	return result, nil
}

// selectSheet selects the configured sheet, or the first one
func (p *Parser) selectSheet(f *excelize.File) (string, error) {
	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	if p.options.SheetName == "" {
		return sheetList[0], nil
	}
	for _, name := range sheetList {
		if name == p.options.SheetName {
			return name, nil
		}
	}
	return "", fmt.Errorf("sheet %q not found. Available sheets: %s", p.options.SheetName, strings.Join(sheetList, ", "))
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// SerialToDate converts an Excel serial date to a calendar date.
// Excel counts days from 1899-12-30 once its 1900 leap-year bug is accounted for.
func SerialToDate(serial float64) (time.Time, bool) {
	if serial < 1 {
		return time.Time{}, false
	}
	date, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}

package types

// FileType represents supported file types
type FileType string

const (
	FileTypeCSV  FileType = "csv"
	FileTypeXLSX FileType = "xlsx"
)

// FileKind distinguishes price files from discount files
type FileKind string

const (
	FileKindPrices    FileKind = "prices"
	FileKindDiscounts FileKind = "discounts"
)

// RawRecord is one data row from a CSV or XLSX file, before typing
type RawRecord struct {
	RowNumber int      `json:"rowNumber"`
	Fields    []string `json:"fields"`
}

// ParseError represents a parsing error
type ParseError struct {
	RowNumber     *int    `json:"rowNumber,omitempty"`
	Field         *string `json:"field,omitempty"`
	Message       string  `json:"message"`
	OriginalValue *string `json:"originalValue,omitempty"`
}

// ParseResult represents result of parsing a file into raw records
type ParseResult struct {
	Records   []RawRecord  `json:"records"`
	Errors    []ParseError `json:"errors,omitempty"`
	TotalRows int          `json:"totalRows"`
}

// IngestionStatus represents status of an ingested file
type IngestionStatus string

const (
	StatusCompleted IngestionStatus = "completed"
	StatusSkipped   IngestionStatus = "skipped"
	StatusFailed    IngestionStatus = "failed"
)

// StringPtr returns a pointer to the given string
func StringPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to the given int
func IntPtr(i int) *int {
	return &i
}

package csv

import "github.com/kosarica/price-comparator/internal/parsers/charset"

// CsvDelimiter represents supported CSV delimiters
type CsvDelimiter string

const (
	DelimiterComma     CsvDelimiter = ","
	DelimiterSemicolon CsvDelimiter = ";"
	DelimiterTab       CsvDelimiter = "\t"
)

// CsvParserOptions represents CSV parser options
type CsvParserOptions struct {
	// Delimiter is detected from the content when empty
	Delimiter CsvDelimiter `json:"delimiter,omitempty"`
	// Encoding is detected from the content when empty
	Encoding      charset.Encoding `json:"encoding,omitempty"`
	HasHeader     bool             `json:"hasHeader,omitempty"`
	SkipEmptyRows bool             `json:"skipEmptyRows,omitempty"`
	QuoteChar     rune             `json:"quoteChar,omitempty"`
}

// DefaultOptions returns default CSV parser options
func DefaultOptions() CsvParserOptions {
	return CsvParserOptions{
		HasHeader:     true,
		SkipEmptyRows: true,
		QuoteChar:     '"',
	}
}

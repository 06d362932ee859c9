package csv

import (
	"fmt"
	"strings"

	"github.com/kosarica/price-comparator/internal/parsers/charset"
	"github.com/kosarica/price-comparator/internal/types"
)

// Parser splits CSV content into raw records with encoding and delimiter detection
type Parser struct {
	options CsvParserOptions
}

// NewParser creates a new CSV parser with the given options
func NewParser(options CsvParserOptions) *Parser {
	if options.QuoteChar == 0 {
		options.QuoteChar = '"'
	}
	return &Parser{options: options}
}

// Parse decodes content to UTF-8 and returns its data rows. Field values are trimmed.
func (p *Parser) Parse(content []byte) (*types.ParseResult, error) {
	opts := p.options

	if opts.Encoding == "" {
		opts.Encoding = charset.DetectEncoding(content)
	}

	decoded, err := charset.Decode(content, opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}

	if opts.Delimiter == "" {
		opts.Delimiter = DetectDelimiter(decoded)
	}
	delimiter := []rune(string(opts.Delimiter))[0]

	result := &types.ParseResult{
		Records: make([]types.RawRecord, 0),
	}

	lines := strings.Split(strings.ReplaceAll(decoded, "\r\n", "\n"), "\n")
	headerSkipped := !opts.HasHeader
	for i, line := range lines {
		rowNumber := i + 1

		if strings.TrimSpace(line) == "" {
			if opts.SkipEmptyRows || i == len(lines)-1 {
				continue
			}
		}

		if !headerSkipped {
			headerSkipped = true
			continue
		}

		fields := SplitCSVLine(line, delimiter, opts.QuoteChar)
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
		}

		result.TotalRows++
		result.Records = append(result.Records, types.RawRecord{
			RowNumber: rowNumber,
			Fields:    fields,
		})
	}

	return result, nil
}

package csv

import (
	"strings"
	"unicode/utf8"
)

// DetectDelimiter detects the CSV delimiter by analyzing the first few lines
func DetectDelimiter(content string) CsvDelimiter {
	// Take first 5 non-empty lines
	sampleLines := make([]string, 0, 5)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			sampleLines = append(sampleLines, trimmed)
			if len(sampleLines) >= 5 {
				break
			}
		}
	}

	if len(sampleLines) == 0 {
		return DelimiterSemicolon
	}

	delimiters := []CsvDelimiter{DelimiterSemicolon, DelimiterComma, DelimiterTab}
	bestDelimiter := DelimiterSemicolon
	maxConsistency := 0.0

	for _, delim := range delimiters {
		delimStr := string(delim)
		counts := make([]int, 0, len(sampleLines))
		sum := 0
		for _, line := range sampleLines {
			count := strings.Count(line, delimStr)
			counts = append(counts, count)
			sum += count
		}

		avgCount := float64(sum) / float64(len(counts))
		if avgCount == 0 {
			continue
		}

		// All lines should have similar counts
		variance := 0.0
		for _, c := range counts {
			diff := float64(c) - avgCount
			variance += diff * diff
		}
		variance /= float64(len(counts))

		consistency := avgCount / (1.0 + variance)
		if consistency > maxConsistency {
			maxConsistency = consistency
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// SplitCSVLine splits a CSV line handling quoted fields
func SplitCSVLine(line string, delimiter rune, quoteChar rune) []string {
	fields := make([]string, 0, 10)
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); {
		r, width := utf8.DecodeRuneInString(line[i:])
		i += width

		if inQuotes {
			if r == quoteChar {
				// Doubled quote is an escaped quote
				if next, nextWidth := utf8.DecodeRuneInString(line[i:]); i < len(line) && next == quoteChar {
					current.WriteRune(quoteChar)
					i += nextWidth
					continue
				}
				inQuotes = false
				continue
			}
			current.WriteRune(r)
			continue
		}

		switch r {
		case quoteChar:
			inQuotes = true
		case delimiter:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	return append(fields, current.String())
}

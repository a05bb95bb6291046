package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peekknuf/modelfit/internal/tabular"
)

// Options configures the CSV reader collaborator. The reader owns
// everything the quality core refuses to do: tokenizing, missing-value
// detection, and the one-time numeric/categorical kind decision.
type Options struct {
	Delimiter     rune
	TrimSpace     bool
	MissingTokens []string
}

// DefaultOptions returns the reader defaults: comma-delimited, space
// trimming, pandas-style missing tokens.
func DefaultOptions() Options {
	return Options{
		Delimiter:     ',',
		TrimSpace:     true,
		MissingTokens: []string{"", "NA", "N/A", "null", "NULL", "NaN", "nan"},
	}
}

// ReadTableFile reads a CSV file into a tabular view.
func ReadTableFile(path string, opts Options) (*tabular.View, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return ReadTable(file, opts)
}

// ReadTable reads CSV data into a tabular view. The first record is
// the header row. Every column's kind is inferred once here: numeric
// when all non-missing values parse as numbers, categorical otherwise.
func ReadTable(r io.Reader, opts Options) (*tabular.View, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	// Field-count checking is done here so ragged input surfaces as
	// InvalidInput instead of a generic parse error.
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read headers: %w", err)
	}

	missing := make(map[string]struct{}, len(opts.MissingTokens))
	for _, tok := range opts.MissingTokens {
		missing[tok] = struct{}{}
	}

	raw := make([][]string, len(headers))
	masks := make([][]bool, len(headers))
	rows := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if len(record) != len(headers) {
			return nil, tabular.Invalidf("row %d has %d fields, header has %d", rows+2, len(record), len(headers))
		}

		rows++
		for i, value := range record {
			if opts.TrimSpace {
				value = strings.TrimSpace(value)
			}
			_, isMissing := missing[value]
			raw[i] = append(raw[i], value)
			masks[i] = append(masks[i], isMissing)
		}
	}

	columns := make([]tabular.Column, 0, len(headers))
	for i, name := range headers {
		if opts.TrimSpace {
			name = strings.TrimSpace(name)
		}
		columns = append(columns, buildColumn(name, raw[i], masks[i]))
	}
	return tabular.New(columns)
}

// buildColumn decides the column kind and materializes it. A column
// with no non-missing values carries no type evidence and stays
// categorical.
func buildColumn(name string, values []string, mask []bool) tabular.Column {
	numeric := false
	for i, v := range values {
		if mask[i] {
			continue
		}
		if !isNumericToken(v) {
			return tabular.CategoricalColumn(name, values, mask)
		}
		numeric = true
	}
	if !numeric {
		return tabular.CategoricalColumn(name, values, mask)
	}

	floats := make([]float64, len(values))
	for i, v := range values {
		if mask[i] {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			// isNumericToken over-approximates ParseFloat; treat
			// stragglers as categorical rather than guessing.
			return tabular.CategoricalColumn(name, values, mask)
		}
		floats[i] = f
	}
	return tabular.NumericColumn(name, floats, mask)
}

// isNumericToken is a fast pre-check that avoids strconv on obviously
// non-numeric values.
func isNumericToken(s string) bool {
	if len(s) == 0 || len(s) > 64 {
		return false
	}

	i := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		i = 1
	}

	digits := false
	hasDot := false
	hasExp := false
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.':
			if hasDot || hasExp {
				return false
			}
			hasDot = true
		case c == 'e' || c == 'E':
			if hasExp || !digits || i == len(s)-1 {
				return false
			}
			hasExp = true
			// Allow a sign right after the exponent.
			if s[i+1] == '-' || s[i+1] == '+' {
				i++
				if i == len(s)-1 {
					return false
				}
			}
		default:
			return false
		}
	}
	return digits
}

package topsis

import (
	"strconv"
	"strings"

	apperrors "topsiscli/internal/errors"
	"topsiscli/internal/table"
)

// Impact declares the preferred direction of a criterion column.
type Impact string

const (
	// Benefit means higher criterion values are better
	Benefit Impact = "+"
	// Cost means lower criterion values are better
	Cost Impact = "-"
)

// IsValid checks if the impact is one of the two supported directions
func (i Impact) IsValid() bool {
	return i == Benefit || i == Cost
}

// String returns the human-readable name of the impact direction
func (i Impact) String() string {
	switch i {
	case Benefit:
		return "benefit"
	case Cost:
		return "cost"
	default:
		return "unknown"
	}
}

// ImpactsFromStrings converts raw symbols to Impact values without checking
// them. Validation of the symbols is the validator's job, so unknown symbols
// pass through here and are rejected there.
func ImpactsFromStrings(symbols []string) []Impact {
	impacts := make([]Impact, len(symbols))
	for i, s := range symbols {
		impacts[i] = Impact(s)
	}
	return impacts
}

// ParseWeights parses a comma-separated list of real numbers, as given on the
// command line. No positivity constraint is enforced.
func ParseWeights(arg string) ([]float64, error) {
	parts := strings.Split(arg, ",")
	weights := make([]float64, len(parts))
	for i, part := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, apperrors.NewParsingError(
				"weights must be a comma-separated list of numbers", err).
				WithContext("position", i+1).
				WithContext("value", part)
		}
		weights[i] = w
	}
	return weights, nil
}

// ParseImpacts splits a comma-separated list of impact symbols. The symbols
// themselves are not validated here; see ImpactsFromStrings.
func ParseImpacts(arg string) []Impact {
	return ImpactsFromStrings(strings.Split(arg, ","))
}

// Decision is the numeric view of an alternative table: the identifier column
// and the rows x N criteria matrix, with original row order preserved.
// It is a value computed once per run and never mutated by the pipeline.
type Decision struct {
	Names  []string
	Matrix [][]float64
}

// Criteria returns the number of criterion columns
func (d *Decision) Criteria() int {
	if len(d.Matrix) == 0 {
		return 0
	}
	return len(d.Matrix[0])
}

// Alternatives returns the number of rows
func (d *Decision) Alternatives() int {
	return len(d.Names)
}

// NewDecision extracts the identifier column and criteria matrix from a raw
// table. Every cell beyond the first column must parse as a float; the first
// failure is reported as a NON_NUMERIC_CRITERION error with the offending
// position attached.
func NewDecision(t *table.Table) (*Decision, error) {
	names := make([]string, len(t.Rows))
	matrix := make([][]float64, len(t.Rows))

	for i, row := range t.Rows {
		names[i] = row[0]
		values := make([]float64, len(row)-1)
		for j, cell := range row[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				// A row may carry more cells than the header names
				column := strconv.Itoa(j + 2)
				if j+1 < len(t.Header) {
					column = t.Header[j+1]
				}
				return nil, apperrors.NewNonNumericCriterionError(
					"all columns from the 2nd to the last must contain numeric values", err).
					WithContext("row", i+1).
					WithContext("column", column).
					WithContext("value", cell)
			}
			values[j] = v
		}
		matrix[i] = values
	}

	return &Decision{Names: names, Matrix: matrix}, nil
}

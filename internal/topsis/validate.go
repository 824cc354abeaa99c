package topsis

import (
	"context"
	"fmt"

	apperrors "topsiscli/internal/errors"
	"topsiscli/internal/table"
)

// Validate checks the structural and semantic preconditions on the input
// table and parameters before the engine may run. It performs the actual read
// of the table to inspect shape and cell types, so a missing or unreadable
// file surfaces here. Absence of an error is the success signal.
//
// Exactly one of the flat taxonomy conditions is reported on failure:
// MISSING_FILE, INSUFFICIENT_COLUMNS, NON_NUMERIC_CRITERION,
// DIMENSION_MISMATCH or INVALID_IMPACT.
func (c *Calculator) Validate(ctx context.Context, tablePath string, weights []float64, impacts []Impact) error {
	c.logger.DebugContext(ctx, "validating inputs",
		"path", tablePath,
		"weights", len(weights),
		"impacts", len(impacts),
	)

	tbl, err := table.Load(tablePath, c.delimiter)
	if err != nil {
		return err
	}

	if tbl.Columns() < 3 {
		return apperrors.NewInsufficientColumnsError(
			"the input file must have at least 3 columns (name + criteria)").
			WithContext("columns", tbl.Columns())
	}

	// Full-column numeric check, not spot-checked: NewDecision parses every
	// criterion cell and reports the first failure.
	if _, err := NewDecision(tbl); err != nil {
		return err
	}

	criteria := tbl.Columns() - 1
	if len(weights) != len(impacts) || len(weights) != criteria {
		return apperrors.NewDimensionMismatchError(
			"the number of weights, impacts, and numeric columns must be the same").
			WithContext("weights", len(weights)).
			WithContext("impacts", len(impacts)).
			WithContext("criteria", criteria)
	}

	for i, impact := range impacts {
		if !impact.IsValid() {
			return apperrors.NewInvalidImpactError(
				fmt.Sprintf("impacts must be '+' or '-', got %q at position %d", string(impact), i+1))
		}
	}

	return nil
}

package topsis

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"topsiscli/internal/table"
)

// Output column names appended to the input table.
const (
	ScoreColumn = "TOPSIS Score"
	RankColumn  = "Rank"
)

// DefaultScorePrecision is the number of decimals used when formatting
// scores for output.
const DefaultScorePrecision = 4

// Calculator orchestrates the TOPSIS ranking pipeline: normalize, weight,
// ideal solutions, separations, score and rank.
type Calculator struct {
	logger    *slog.Logger
	delimiter rune
	precision int
}

// NewCalculator creates a new TOPSIS calculator
func NewCalculator(logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Calculator{
		logger:    logger,
		delimiter: table.DefaultDelimiter,
		precision: DefaultScorePrecision,
	}
}

// SetDelimiter sets the field separator used for reading and writing
// delimited files.
func (c *Calculator) SetDelimiter(delim rune) {
	c.delimiter = delim
}

// SetPrecision sets the number of decimals for formatted scores.
func (c *Calculator) SetPrecision(precision int) error {
	if precision < 0 {
		return fmt.Errorf("invalid score precision: %d", precision)
	}
	c.precision = precision
	return nil
}

// Run executes the full pipeline over the table at tablePath and writes the
// augmented table to outputPath. It assumes Validate has already passed and
// does not re-validate: malformed numeric input that slipped through, such as
// a zero-norm column, propagates NaN or Inf into the output silently.
//
// The input table is re-read here rather than reusing the validator's copy,
// so the two phases stay independent. Original row order is preserved in the
// output; ranks are assigned by descending score but reported alongside each
// row in its original position.
func (c *Calculator) Run(ctx context.Context, tablePath string, weights []float64, impacts []Impact, outputPath string) error {
	start := time.Now()

	c.logger.InfoContext(ctx, "starting topsis ranking",
		"input", tablePath,
		"criteria", len(weights),
	)

	tbl, err := table.Load(tablePath, c.delimiter)
	if err != nil {
		return fmt.Errorf("load table: %w", err)
	}

	decision, err := NewDecision(tbl)
	if err != nil {
		return fmt.Errorf("extract decision matrix: %w", err)
	}

	scores, ranks := c.Evaluate(ctx, decision, weights, impacts)

	scoreCol := make([]string, len(scores))
	rankCol := make([]string, len(ranks))
	for i := range scores {
		scoreCol[i] = table.FormatFloat(scores[i], c.precision)
		rankCol[i] = strconv.Itoa(ranks[i])
	}

	if err := tbl.AppendColumn(ScoreColumn, scoreCol); err != nil {
		return fmt.Errorf("append score column: %w", err)
	}
	if err := tbl.AppendColumn(RankColumn, rankCol); err != nil {
		return fmt.Errorf("append rank column: %w", err)
	}

	if err := table.WriteCSV(tbl, outputPath, c.delimiter); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	c.logger.InfoContext(ctx, "topsis ranking completed",
		"output", outputPath,
		"alternatives", decision.Alternatives(),
		"duration", time.Since(start),
	)

	return nil
}

// Evaluate runs the numeric pipeline over an extracted decision matrix and
// returns the closeness scores and dense ranks, both aligned with the
// original row order.
func (c *Calculator) Evaluate(ctx context.Context, decision *Decision, weights []float64, impacts []Impact) (scores []float64, ranks []int) {
	normed := Normalize(decision.Matrix)
	weighted := ApplyWeights(normed, weights)
	pis, nis := IdealSolutions(weighted, impacts)
	distP, distN := Separations(weighted, pis, nis)
	scores = Scores(distP, distN)
	ranks = Ranks(scores)

	c.logger.DebugContext(ctx, "pipeline stages completed",
		"rows", decision.Alternatives(),
		"criteria", decision.Criteria(),
	)

	return scores, ranks
}

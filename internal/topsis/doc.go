// Package topsis implements the TOPSIS multi-criteria decision method
// (Technique for Order Preference by Similarity to Ideal Solution).
//
// Given a table of alternatives scored across N numeric criteria, a weight
// per criterion and a directional impact per criterion (benefit or cost),
// the package computes a composite closeness score in [0,1] per alternative
// and a dense ranking from best (rank 1) to worst.
//
// # Architecture
//
// The package separates validation from computation:
//
//   - types.go: Impact direction, decision matrix extraction, CLI parsing helpers
//   - validate.go: precondition checks with a flat, typed error taxonomy
//   - pipeline.go: the pure numeric stages (normalize, weight, ideals, separations, score)
//   - rank.go: dense ranking with a deterministic tie-break on original row order
//   - calculator.go: orchestration, logging and output persistence
//
// The validator must succeed before Run is invoked; Run does not re-validate.
//
// # Usage Example
//
//	calc := topsis.NewCalculator(slog.Default())
//
//	weights, err := topsis.ParseWeights("1,1,1,2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	impacts := topsis.ParseImpacts("+,+,-,+")
//
//	ctx := context.Background()
//	if err := calc.Validate(ctx, "data.csv", weights, impacts); err != nil {
//	    log.Fatal(err)
//	}
//	if err := calc.Run(ctx, "data.csv", weights, impacts, "result.csv"); err != nil {
//	    log.Fatal(err)
//	}
//
// The output file mirrors the input with two extra trailing columns,
// "TOPSIS Score" and "Rank", and preserves the input row order.
package topsis

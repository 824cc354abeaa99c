// Command topsis ranks alternatives in a delimited table using the TOPSIS
// multi-criteria decision method.
//
// Usage:
//
//	topsis <InputDataFile> <Weights> <Impacts> <ResultFileName>
//
// Weights is a comma-separated list of real numbers and Impacts a
// comma-separated list of '+' (benefit) or '-' (cost) symbols, one per
// criterion column. The result file mirrors the input with two extra
// trailing columns, "TOPSIS Score" and "Rank".
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"topsiscli/internal/config"
	"topsiscli/internal/topsis"
)

const usage = "Usage: topsis <InputDataFile> <Weights> <Impacts> <ResultFileName>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code. All failures are
// reported on stdout prefixed "Error:"; the exit code on failure is 1 unless
// the legacy_exit_code config switch restores the original tool's quirk of
// exiting 0 after printing the error.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 4 {
		fmt.Fprintln(stdout, usage)
		return 1
	}
	inputFile, weightsArg, impactsArg, outputFile := args[0], args[1], args[2], args[3]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	failureCode := 1
	if cfg.CLI.LegacyExitCode {
		failureCode = 0
	}

	logger := cfg.NewLogger(stderr)
	logger.Debug("configuration loaded", "config", cfg.String())

	weights, err := topsis.ParseWeights(weightsArg)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return failureCode
	}
	impacts := topsis.ParseImpacts(impactsArg)

	calc := topsis.NewCalculator(logger)
	calc.SetDelimiter(cfg.DelimiterRune())
	if err := calc.SetPrecision(cfg.Output.Precision); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return failureCode
	}

	ctx := context.Background()

	if err := calc.Validate(ctx, inputFile, weights, impacts); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return failureCode
	}

	if err := calc.Run(ctx, inputFile, weights, impacts, outputFile); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return failureCode
	}

	fmt.Fprintf(stdout, "Results saved to %s\n", outputFile)
	return 0
}

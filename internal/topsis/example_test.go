package topsis_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"topsiscli/internal/topsis"
)

// Example_basicUsage demonstrates validating and ranking a small table of
// phone models: price is a cost criterion, storage and camera are benefits.
func Example_basicUsage() {
	dir, err := os.MkdirTemp("", "topsis-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	inputPath := filepath.Join(dir, "phones.csv")
	outputPath := filepath.Join(dir, "result.csv")

	data := "Model,Price,Storage,Camera\n" +
		"M1,250,16,12\n" +
		"M2,200,16,8\n" +
		"M3,300,32,16\n" +
		"M4,275,32,8\n"
	if err := os.WriteFile(inputPath, []byte(data), 0644); err != nil {
		fmt.Println(err)
		return
	}

	weights, err := topsis.ParseWeights("1,1,2")
	if err != nil {
		fmt.Println(err)
		return
	}
	impacts := topsis.ParseImpacts("-,+,+")

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	calc := topsis.NewCalculator(logger)

	ctx := context.Background()
	if err := calc.Validate(ctx, inputPath, weights, impacts); err != nil {
		fmt.Println(err)
		return
	}
	if err := calc.Run(ctx, inputPath, weights, impacts, outputPath); err != nil {
		fmt.Println(err)
		return
	}

	out, err := os.ReadFile(outputPath)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(string(out))

	// Output:
	// Model,Price,Storage,Camera,TOPSIS Score,Rank
	// M1,250,16,12,0.4294,2
	// M2,200,16,8,0.2016,4
	// M3,300,32,16,0.7984,1
	// M4,275,32,8,0.3102,3
}

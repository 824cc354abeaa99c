package topsis

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRanks(t *testing.T) {
	tests := []struct {
		name     string
		scores   []float64
		expected []int
	}{
		{
			name:     "already ordered",
			scores:   []float64{0.9, 0.5, 0.1},
			expected: []int{1, 2, 3},
		},
		{
			name:     "reverse ordered",
			scores:   []float64{0.1, 0.5, 0.9},
			expected: []int{3, 2, 1},
		},
		{
			name:     "mixed",
			scores:   []float64{0.4294, 0.2016, 0.7984, 0.3102},
			expected: []int{2, 4, 1, 3},
		},
		{
			name:     "single row",
			scores:   []float64{0.5},
			expected: []int{1},
		},
		{
			name:     "empty",
			scores:   nil,
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Ranks(tt.scores))
		})
	}
}

func TestRanks_Dense(t *testing.T) {
	scores := []float64{0.3, 0.8, 0.1, 0.6, 0.2}
	ranks := Ranks(scores)

	// Ranks must be exactly {1..n}: dense, no gaps, no duplicates
	sorted := append([]int(nil), ranks...)
	sort.Ints(sorted)
	for i, r := range sorted {
		assert.Equal(t, i+1, r)
	}
}

func TestRanks_TieBreakOriginalOrder(t *testing.T) {
	// Equal scores keep original row order: the earlier row gets the
	// better rank
	ranks := Ranks([]float64{0.5, 0.7, 0.5, 0.5})

	assert.Equal(t, []int{2, 1, 3, 4}, ranks)
}

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without cause",
			err:      NewDimensionMismatchError("weights and impacts differ"),
			expected: "[DIMENSION_MISMATCH] weights and impacts differ",
		},
		{
			name:     "with cause",
			err:      NewMissingFileError("input file does not exist", stderrors.New("no such file")),
			expected: "[MISSING_FILE] input file does not exist: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("underlying failure")
	err := NewParsingError("read header", cause)

	assert.True(t, stderrors.Is(err, cause))
}

func TestAppError_WithContext(t *testing.T) {
	err := NewNonNumericCriterionError("cell is not numeric", nil).
		WithContext("column", 3).
		WithContext("row", 12)

	assert.Equal(t, 3, err.Context["column"])
	assert.Equal(t, 12, err.Context["row"])
}

func TestTypeOf(t *testing.T) {
	t.Run("direct app error", func(t *testing.T) {
		err := NewInvalidImpactError("impact must be + or -")
		assert.Equal(t, ErrTypeInvalidImpact, TypeOf(err))
	})

	t.Run("wrapped app error", func(t *testing.T) {
		inner := NewInsufficientColumnsError("table has 2 columns, need at least 3")
		wrapped := fmt.Errorf("validate inputs: %w", inner)

		assert.Equal(t, ErrTypeInsufficientColumns, TypeOf(wrapped))
		assert.True(t, IsType(wrapped, ErrTypeInsufficientColumns))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.Equal(t, ErrorType(""), TypeOf(stderrors.New("plain")))
		assert.False(t, IsType(stderrors.New("plain"), ErrTypeParsing))
	})
}

func TestTaxonomyConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected ErrorType
	}{
		{"missing file", NewMissingFileError("m", nil), ErrTypeMissingFile},
		{"insufficient columns", NewInsufficientColumnsError("m"), ErrTypeInsufficientColumns},
		{"non-numeric criterion", NewNonNumericCriterionError("m", nil), ErrTypeNonNumericCriterion},
		{"dimension mismatch", NewDimensionMismatchError("m"), ErrTypeDimensionMismatch},
		{"invalid impact", NewInvalidImpactError("m"), ErrTypeInvalidImpact},
		{"parsing", NewParsingError("m", nil), ErrTypeParsing},
		{"storage", NewStorageError("m", nil), ErrTypeStorage},
		{"config", NewConfigError("m", nil), ErrTypeConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Type)
		})
	}
}

package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Validation conditions checked before the engine runs
	ErrTypeMissingFile         ErrorType = "MISSING_FILE"
	ErrTypeInsufficientColumns ErrorType = "INSUFFICIENT_COLUMNS"
	ErrTypeNonNumericCriterion ErrorType = "NON_NUMERIC_CRITERION"
	ErrTypeDimensionMismatch   ErrorType = "DIMENSION_MISMATCH"
	ErrTypeInvalidImpact       ErrorType = "INVALID_IMPACT"

	// Boundary conditions from table I/O and configuration
	ErrTypeParsing ErrorType = "PARSING"
	ErrTypeStorage ErrorType = "STORAGE"
	ErrTypeConfig  ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// TypeOf returns the ErrorType of err, or the empty string when err is not an
// AppError anywhere in its chain.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// IsType reports whether err carries the given error type.
func IsType(err error, errType ErrorType) bool {
	return TypeOf(err) == errType
}

// Helper functions for the flat validation taxonomy

// NewMissingFileError reports an input path that is not an existing readable file
func NewMissingFileError(message string, cause error) *AppError {
	return NewAppError(ErrTypeMissingFile, message, cause)
}

// NewInsufficientColumnsError reports a table with fewer than id + 2 criteria columns
func NewInsufficientColumnsError(message string) *AppError {
	return NewAppError(ErrTypeInsufficientColumns, message, nil)
}

// NewNonNumericCriterionError reports a criterion cell that failed numeric parsing
func NewNonNumericCriterionError(message string, cause error) *AppError {
	return NewAppError(ErrTypeNonNumericCriterion, message, cause)
}

// NewDimensionMismatchError reports unequal weights/impacts/criteria counts
func NewDimensionMismatchError(message string) *AppError {
	return NewAppError(ErrTypeDimensionMismatch, message, nil)
}

// NewInvalidImpactError reports an impact symbol that is not Benefit or Cost
func NewInvalidImpactError(message string) *AppError {
	return NewAppError(ErrTypeInvalidImpact, message, nil)
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewConfigError creates a configuration-related error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

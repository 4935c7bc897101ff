package meta

import (
	"errors"
	"regexp/syntax"
)

// ErrPatternTooLong is returned when a pattern exceeds Config.MaxPatternLen.
var ErrPatternTooLong = errors.New("pattern exceeds configured maximum length")

// CompileError represents a pattern compilation error.
type CompileError struct {
	Pattern string
	Engine  Kind
	Err     error
}

// Error implements the error interface.
// For syntax errors, returns the error directly to match stdlib behavior.
func (e *CompileError) Error() string {
	var syntaxErr *syntax.Error
	if errors.As(e.Err, &syntaxErr) {
		return e.Err.Error()
	}
	return "regexp: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// needsBacktracker reports whether err is an RE2 rejection that regexp2 can
// still handle: lookaround groups and repeat counts above 1000.
func needsBacktracker(err error) bool {
	var syntaxErr *syntax.Error
	if !errors.As(err, &syntaxErr) {
		return false
	}
	switch syntaxErr.Code {
	case syntax.ErrInvalidPerlOp, syntax.ErrInvalidRepeatSize:
		return true
	}
	return false
}

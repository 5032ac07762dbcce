package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by aggregates that are undefined over zero records.
	ErrEmptyInput = errors.New("empty input")
	// ErrDivisionByZero is returned by ratio computations with a zero denominator.
	ErrDivisionByZero = errors.New("division by zero")
)

// SchemaMismatchError reports a source row or header that cannot be mapped onto TransactionRecord.
type SchemaMismatchError struct {
	Column string
	Row    int // 1-based data row, 0 for header problems
	Value  string
	Reason string
	Err    error
}

func (e *SchemaMismatchError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("schema mismatch: column %q: %s", e.Column, e.Reason)
	}
	msg := fmt.Sprintf("schema mismatch: row %d, column %q, value %q: %s", e.Row, e.Column, e.Value, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SchemaMismatchError) Unwrap() error {
	return e.Err
}

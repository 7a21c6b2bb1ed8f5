package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCriteria marks caller input rejected before the store is touched.
	ErrInvalidCriteria = errors.New("invalid criteria")
	// ErrQueryFailed marks a store-side failure.
	ErrQueryFailed = errors.New("query failed")
	// ErrNotFound is returned by single-row lookups that match nothing.
	ErrNotFound = errors.New("not found")
)

// InvalidCriteriaError describes a rejected filter key or value.
// Key is empty when the problem is not tied to one key (e.g. the limit).
type InvalidCriteriaError struct {
	Key    string
	Reason string
}

func (e *InvalidCriteriaError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("invalid criteria: %s", e.Reason)
	}
	return fmt.Sprintf("invalid criteria %q: %s", e.Key, e.Reason)
}

func (e *InvalidCriteriaError) Is(target error) bool {
	return target == ErrInvalidCriteria
}

// InvalidCriteria is shorthand for building an *InvalidCriteriaError.
func InvalidCriteria(key, format string, args ...any) error {
	return &InvalidCriteriaError{Key: key, Reason: fmt.Sprintf(format, args...)}
}

// QueryFailedError wraps the store error behind a failed operation.
type QueryFailedError struct {
	Op    string
	Code  string // SQLSTATE, when the server reported one
	Cause error
}

func (e *QueryFailedError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: query failed (sqlstate %s): %v", e.Op, e.Code, e.Cause)
	}
	return fmt.Sprintf("%s: query failed: %v", e.Op, e.Cause)
}

func (e *QueryFailedError) Is(target error) bool {
	return target == ErrQueryFailed
}

func (e *QueryFailedError) Unwrap() error {
	return e.Cause
}

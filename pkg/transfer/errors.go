package transfer

import (
	"errors"
	"fmt"
)

// NetworkError is returned when an RPC endpoint or the indexer is unreachable.
// Network errors are retried and then degrade the affected field to unknown.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// NewNetworkError wraps err as a NetworkError.
func NewNetworkError(op string, err error) error {
	return &NetworkError{Op: op, Err: err}
}

// ValidationError reports malformed input. It is never retried.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError builds a ValidationError.
func NewValidationError(field, value string, err error) error {
	return &ValidationError{Field: field, Value: value, Err: err}
}

// ChainStateError means a receipt or event is not observable yet.
// It is a normal transient state, not a failure.
type ChainStateError struct {
	ChainID uint64
	Hash    string
	Reason  string
}

func (e *ChainStateError) Error() string {
	return fmt.Sprintf("chain %d: %s: %s", e.ChainID, e.Hash, e.Reason)
}

// RevertClass classifies a reverted claim transaction.
type RevertClass string

const (
	AlreadyExecuted RevertClass = "ALREADY_EXECUTED"
	NotYetConfirmed RevertClass = "NOT_YET_CONFIRMED"
	GenericRevert   RevertClass = "GENERIC_REVERT"
)

// ExecutionError reports a failed claim. It is never retried automatically.
type ExecutionError struct {
	Class  RevertClass
	Reason string
	TxHash string
	Err    error
}

func (e *ExecutionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("claim failed (%s): %s", e.Class, e.Reason)
	}
	return fmt.Sprintf("claim failed (%s)", e.Class)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// IsNetwork reports whether err is, or wraps, a NetworkError.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsChainState reports whether err is, or wraps, a ChainStateError.
func IsChainState(err error) bool {
	var ce *ChainStateError
	return errors.As(err, &ce)
}

// AsExecution extracts an ExecutionError from err.
func AsExecution(err error) (*ExecutionError, bool) {
	var ee *ExecutionError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}

package yatabl

import (
	"errors"
	"fmt"
)

// Sentinel errors for contract violations.
// Use with errors.Is() for checking.
//
// Validation failures raised by caller-supplied yatables are never wrapped
// and never match any of these.

var (
	// ErrContractViolation indicates the caller broke a precondition of the
	// tagging protocol. Every *ContractError matches it.
	ErrContractViolation = errors.New("tag contract violation")

	// ErrNotTagged indicates Untag or GetIdentifier was called on a value that
	// carries no tag
	ErrNotTagged = errors.New("value is not tagged")

	// ErrNilValue indicates a nil pointer was offered for tagging
	ErrNilValue = errors.New("value cannot be nil")

	// ErrZeroSize indicates the pointed-to type has no size, so distinct
	// values cannot be told apart by address
	ErrZeroSize = errors.New("zero-size values cannot be tagged")

	// ErrUnsupportedArgs indicates TagArgs or IsTaggedArgs received an
	// argument shape outside the recognized forms
	ErrUnsupportedArgs = errors.New("unsupported argument shape")
)

// ContractError reports a contract violation by operation.
type ContractError struct {
	// Op is the public operation that detected the violation, e.g. "Untag".
	Op string
	// Reason describes the offending input.
	Reason string
	// Err is the specific sentinel (ErrNotTagged, ErrNilValue, ...).
	Err error
}

func (e *ContractError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("yatabl: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("yatabl: %s: %v: %s", e.Op, e.Err, e.Reason)
}

// Unwrap exposes both ErrContractViolation and the specific sentinel.
func (e *ContractError) Unwrap() []error {
	return []error{ErrContractViolation, e.Err}
}

func contractErrorf(op string, err error, format string, args ...any) *ContractError {
	return &ContractError{Op: op, Reason: fmt.Sprintf(format, args...), Err: err}
}

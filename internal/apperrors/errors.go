package apperrors

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUpstreamUnavailable indicates that the external rate service could not be reached
// or returned an unusable response.
var ErrUpstreamUnavailable = errors.New("upstream rate service unavailable")

// ValidationError carries a user-facing validation message.
// errors.Is(err, ErrValidation) matches it, so handlers only need one branch.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// NewInsufficientBalanceError builds the user-facing message for a sale that
// exceeds the user's USD balance. The balance keeps a trailing ".0" on whole
// values ("20.0 USD", not "20 USD"), preserving the historical message format.
func NewInsufficientBalanceError(saldo float64) error {
	return &ValidationError{Msg: "Saldo insuficiente. Saldo atual: " + formatBalance(saldo) + " USD"}
}

func formatBalance(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

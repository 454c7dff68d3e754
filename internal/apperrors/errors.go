package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrInternalServer      = errors.New("internal server error")
	ErrInvalidAuthHeader   = errors.New("invalid or missing Authorization header")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrInvalidCredentials  = errors.New("invalid login or password")
	ErrAccountInactive     = errors.New("account is inactive")
	ErrWithdrawalNotFound  = errors.New("withdrawal not found")
	ErrBankAccountNotFound = errors.New("bank account not found")
	ErrBankAccountInUse    = errors.New("bank account has associated withdrawals")
	ErrAlertNotFound       = errors.New("alert not found")
	ErrPendingCapReached   = errors.New("too many unresolved withdrawal requests")
	ErrProofRequired       = errors.New("proof of payment reference is required")
)

// ValidationError carries the field-level messages produced by the
// validation package.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// StateConflictError reports an illegal withdrawal status transition,
// naming both the current and the attempted state.
type StateConflictError struct {
	From string
	To   string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("cannot transition withdrawal from %q to %q", e.From, e.To)
}

// ConstraintError is a database uniqueness violation translated into a
// field-specific message.
type ConstraintError struct {
	Field   string
	Message string
}

func (e *ConstraintError) Error() string {
	return e.Message
}

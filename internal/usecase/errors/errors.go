package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrConflict      = errors.New("resource conflict")
	ErrInternalError = errors.New("internal server error")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserNotActive      = errors.New("user is not active")
	ErrEmailAlreadyUsed   = errors.New("email already in use")
)

// Meeting flow errors
var (
	ErrFlowConflict     = errors.New("there's already an active meeting flow")
	ErrFlowNotFound     = errors.New("no active meeting flow")
	ErrInvalidFlowState = errors.New("meeting flow is in invalid state")
	ErrStaleFlow        = errors.New("meeting flow changed concurrently")
	ErrFlowBusy         = errors.New("meeting flow is busy")
	ErrSummaryFailed    = errors.New("failed to generate meeting minutes")
)

// Meeting errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrMinutesNotFound = errors.New("minutes not archived")
	ErrArchiveDisabled = errors.New("minutes archive is disabled")
)

// Contact errors
var (
	ErrInvalidContact = errors.New("invalid contact")
)

// Integration errors
var (
	ErrExternalService = errors.New("external service failed")
)

// StateError reports an operation attempted in the wrong flow state.
// It matches ErrInvalidFlowState with errors.Is.
type StateError struct {
	Operation string
	Current   string
	Expected  string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s: flow is %s, expected %s", e.Operation, e.Current, e.Expected)
}

func (e *StateError) Unwrap() error {
	return ErrInvalidFlowState
}

// InputError carries a user-facing reason for rejected input.
// It matches ErrInvalidInput, and Kind when set, with errors.Is.
type InputError struct {
	Reason string
	Kind   error
}

// Invalid creates an InputError
func Invalid(format string, args ...interface{}) error {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}

func (e *InputError) Error() string {
	return e.Reason
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func (e *InputError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// InvalidContact creates an InputError of kind ErrInvalidContact
func InvalidContact(format string, args ...interface{}) error {
	return &InputError{Reason: fmt.Sprintf(format, args...), Kind: ErrInvalidContact}
}

// ExternalError reports a failed call to an outside service.
// It matches ErrExternalService and the cause with errors.Is.
type ExternalError struct {
	Service string
	Err     error
}

// External wraps err as a failure of service
func External(service string, err error) error {
	return &ExternalError{Service: service, Err: err}
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ExternalError) Unwrap() []error {
	return []error{ErrExternalService, e.Err}
}

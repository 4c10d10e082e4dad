package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidPassword   = errors.New("invalid password")

	// Contact errors
	ErrContactNotFound = errors.New("contact not found")

	// Meeting errors
	ErrMeetingNotFound = errors.New("meeting not found")

	// Flow errors
	ErrFlowNotFound      = errors.New("meeting flow not found")
	ErrFlowAlreadyActive = errors.New("meeting flow already active")
	ErrFlowVersionStale  = errors.New("meeting flow version is stale")
	ErrInvalidPayload    = errors.New("invalid flow payload")

	// Settings errors
	ErrSettingsNotFound = errors.New("settings not found")
)

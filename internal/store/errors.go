package store

import "errors"

// Store errors are sentinel values so callers can branch with errors.Is.
// NotFound/UnknownTenant/InvariantViolation mean the request is structurally
// invalid and retrying without correction will not help.
var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateID        = errors.New("id already exists")
	ErrUnknownTenant      = errors.New("tenant does not exist")
	ErrInvariantViolation = errors.New("session tenant does not match doctor tenant")
	ErrInvalidState       = errors.New("operation not allowed in current session state")
)

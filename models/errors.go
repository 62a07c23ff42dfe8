package models

import "errors"

// Sentinel errors for the failure modes the API distinguishes. The HTTP
// status for each is assigned in one place, helper.GetStatusCode.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrDuplicateReview  = errors.New("review for this title already exists")

	// Signup and token-exchange failures, each with its own status.
	ErrEmailMismatch = errors.New("username is registered with a different email")
	ErrMissingField  = errors.New("required field is missing")
	ErrUnknownUser   = errors.New("unknown username")
	ErrBadCode       = errors.New("invalid confirmation code")
)

// ValidationError reports a rejected input value together with the field it
// arrived in, so responses can be keyed per field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

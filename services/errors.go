package services

// ValidationError marks bad or missing caller input. Controllers surface its
// message to the client with a 400; every other service error is reported
// generically and only logged in full server-side.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with a caller-facing message
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

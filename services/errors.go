package services

// ValidationError reports missing or malformed input. The API boundary
// maps it to HTTP 400 with the message verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }

package hiremind

import "fmt"

const genericErrorMessage = "an error occurred while talking to the HireMind service"

// ServiceError is the single shape every transport failure is normalized to
// before it reaches domain logic: network errors, non-2xx statuses and
// malformed bodies are indistinguishable at this level. No caller inspects a
// raw transport error.
type ServiceError struct {
	Message    string
	StatusCode int
	Detail     string
}

func (e *ServiceError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (status %d): %s", e.Message, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// newTransportError normalizes a failure that happened before any HTTP status
// was received, such as a refused connection or an exceeded timeout.
func newTransportError(err error) *ServiceError {
	message := genericErrorMessage
	if err != nil {
		message = err.Error()
	}

	return &ServiceError{
		Message:    message,
		StatusCode: 500,
	}
}

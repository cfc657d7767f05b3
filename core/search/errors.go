package search

import "fmt"

// APIError indicates the service was reachable but rejected the call.
type APIError struct {
	// StatusCode is the HTTP status returned by the service.
	StatusCode int
	// Body is the raw response body.
	Body string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("service returned status %d: %s", e.StatusCode, e.Body)
}

// TransportError indicates the service could not be reached at all
// (DNS, TLS, or connection failure).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

package framework

import "fmt"

// TransportError means that no HTTP response was received at all, for instance because the
// host could not be resolved or the connection was refused. Tests must treat it as a failure.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s failed: %s", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError means that a response was received but its body could not be decoded into the
// requested shape. The Response is still returned alongside it.
type DecodeError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode response body (status %d): %s; body was: %s", e.StatusCode, e.Err, e.Body)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

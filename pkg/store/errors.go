package store

import "fmt"

// NetworkError is a transport-level failure: the request never produced an
// HTTP status (connection refused, DNS, canceled context, ...).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("store: network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a non-2xx response. Non-2xx bodies carry no guaranteed
// schema, so the status code alone is the failure signal.
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("store: server returned %d", e.Status)
}

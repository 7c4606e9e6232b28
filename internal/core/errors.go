package core

import (
	"errors"
	"fmt"
)

// BackendError marks a failure of an external collaborator (the
// completion endpoint or the memory service): unreachable, timed out,
// or rejecting the payload. Adapters raise it; the agent and loader
// boundaries catch it and degrade instead of propagating.
type BackendError struct {
	Service string // "mem0" or "llm"
	Op      string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Service, e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func NewBackendError(service, op string, err error) *BackendError {
	return &BackendError{Service: service, Op: op, Err: err}
}

func IsBackendError(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}

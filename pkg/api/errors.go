package api

import (
	"errors"
	"fmt"
)

// ErrTimeout reports that the bound wait elapsed before the service
// responded. The in-flight request is abandoned, not cancelled.
var ErrTimeout = errors.New("request took too long")

// ServiceError means the service responded but signaled failure.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("service returned status %d", e.StatusCode)
}

// NotFoundError covers an id-based fetch failing for any reason; callers
// are not told whether the id was unknown or the network failed.
type NotFoundError struct {
	ID  string
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("recipe %q could not be loaded: %v", e.ID, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// UploadError carries the service's rejection message for a recipe create.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("recipe upload rejected: %v", e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

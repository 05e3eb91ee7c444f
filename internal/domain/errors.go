package domain

import (
	"errors"
	"fmt"
)

var (
	ErrIncompleteSession = errors.New("store id and file name are both required")
	ErrSessionActive     = errors.New("a document is already open")
	ErrUploadInProgress  = errors.New("another upload is in progress")
)

// ValidationError rejects a file before anything is sent to the backend.
type ValidationError struct {
	FileName string
	Ext      string
}

func (e *ValidationError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("file %q has no extension", e.FileName)
	}
	return fmt.Sprintf("file type %q is not supported", e.Ext)
}

// ServiceError is a non-2xx or malformed response from the document service.
type ServiceError struct {
	Op     string
	Status int
	Detail string
}

func (e *ServiceError) Error() string {
	return e.Detail
}

// NetworkError is a request that never produced a response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

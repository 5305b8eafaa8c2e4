package uploader

import (
	"errors"
	"fmt"
)

var (
	ErrNoFileSelected    = errors.New("no file selected")
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrMalformedResponse = errors.New("malformed response body")
)

// UploadError annotates an upload failure with the step that failed and,
// when a response was received, its status code.
type UploadError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *UploadError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *UploadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

package abxreport

import (
	"errors"
	"fmt"
)

// ErrNoInput indicates the resolved input set was empty.
var ErrNoInput = errors.New("no input documents found")

// DocumentError represents a failure while processing a single input
// document. The batch continues past it; earlier sheets are unaffected.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %q: %v", e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// NewDocumentError creates a new DocumentError.
func NewDocumentError(path string, err error) *DocumentError {
	return &DocumentError{Path: path, Err: err}
}

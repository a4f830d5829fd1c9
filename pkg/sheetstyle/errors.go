package sheetstyle

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx package.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrMissingPart indicates a required package part is absent.
var ErrMissingPart = errors.New("missing package part")

// PartError represents a failure to read one package part.
type PartError struct {
	Part string // e.g. "xl/workbook.xml", "xl/calcChain.xml", "theme"
	Err  error
}

func (e *PartError) Error() string {
	return fmt.Sprintf("part %s: %v", e.Part, e.Err)
}

func (e *PartError) Unwrap() error {
	return e.Err
}

// NewPartError creates a new PartError.
func NewPartError(part string, err error) *PartError {
	return &PartError{
		Part: part,
		Err:  err,
	}
}

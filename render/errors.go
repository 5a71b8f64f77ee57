package render

import (
	"errors"
	"fmt"
)

// Rendering produces legal documents, so requests are validated up front and
// rejected instead of degrading into a partially blank page.
var (
	// ErrMissingRequiredField is returned when document_type or document_id
	// is absent. All other fields degrade to defaults.
	ErrMissingRequiredField = errors.New("missing required document field")

	// ErrUnsupportedDocumentType is returned for a document type outside the
	// closed contract/invoice/receipt set.
	ErrUnsupportedDocumentType = errors.New("unsupported document type")

	// ErrFormattingError is returned when a currency code cannot be used for
	// locale-aware formatting.
	ErrFormattingError = errors.New("currency formatting error")
)

// RenderError carries the failing field alongside the sentinel cause.
type RenderError struct {
	Field string
	Err   error
}

func (e *RenderError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("render: field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("render: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

func fieldErr(field string, err error) error {
	return &RenderError{Field: field, Err: err}
}

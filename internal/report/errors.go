package report

import "fmt"

// DecodeError indicates the report bytes did not match the assumed encoding
// or were not well-formed JSON.
type DecodeError struct {
	Encoding string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode report as %s: %v", e.Encoding, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// SchemaError indicates a required report field is absent.
type SchemaError struct {
	Field string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("report is missing required field %q", e.Field)
}

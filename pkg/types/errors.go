// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// MissingFieldError reports a required attribute absent from a raw crop or
// environment record. It is raised where records are constructed from input,
// never by the scorer.
type MissingFieldError struct {
	// Record identifies the record, e.g. `crop "Wheat"`, "crop #3", or "environment".
	Record string

	// Field is the missing attribute name as it appears in the source.
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing field %q", e.Record, e.Field)
}

// InvalidFieldError reports a present but unusable value at a record boundary.
type InvalidFieldError struct {
	Record string
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s: field %q = %g: %s", e.Record, e.Field, e.Value, e.Reason)
}

// ConfigError reports invalid configuration, such as scoring weights that do
// not sum to 1.0.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}

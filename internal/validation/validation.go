// Package validation implements the presence checks applied on create and the
// enum and date checks applied on update.
package validation

import (
	"fmt"
	"strings"
	"time"
)

// MissingFieldsError reports required fields that were absent or empty.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

// InvalidValueError reports a field whose value is outside its allowed set.
type InvalidValueError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("Invalid %s: %q (allowed: %s)", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// Field pairs a wire name with the value supplied for it.
type Field struct {
	Name  string
	Value string
}

// Required returns a *MissingFieldsError naming every field whose value is
// empty, in the order given, or nil. Whitespace counts as a value.
func Required(fields ...Field) error {
	var missing []string
	for _, f := range fields {
		if f.Value == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingFieldsError{Fields: missing}
}

// OneOf returns an *InvalidValueError unless value is one of allowed.
func OneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &InvalidValueError{Field: field, Value: value, Allowed: allowed}
}

// dateTimeLayouts are tried in order. The zone-less forms are what HTML
// datetime-local inputs submit.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// DateTime parses an RFC 3339 timestamp or a zone-less local date-time, which
// is read as UTC. It returns an *InvalidValueError for anything else.
func DateTime(field, value string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &InvalidValueError{
		Field:   field,
		Value:   value,
		Allowed: []string{"RFC 3339", "YYYY-MM-DDTHH:MM[:SS]"},
	}
}

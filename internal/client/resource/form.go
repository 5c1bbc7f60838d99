package resource

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field describes one form field of a resource kind.
type Field struct {
	Name      string // API and form key, e.g. "contenu"
	Label     string // shown to the user; Name when empty
	Required  bool
	MinLength int
}

// DisplayName returns Label, falling back to Name.
func (f Field) DisplayName() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Values holds form field values by field name.
type Values map[string]string

// Clone returns an independent copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Rule identifies the validation rule a field broke.
type Rule string

const (
	RuleRequired  Rule = "required"
	RuleMinLength Rule = "minlength"
)

// FieldError reports one failed rule.
type FieldError struct {
	Field string
	Rule  Rule
	Min   int
}

func (e FieldError) Error() string {
	switch e.Rule {
	case RuleRequired:
		return e.Field + " is Required"
	case RuleMinLength:
		return fmt.Sprintf("%s should have at least %d Characters", e.Field, e.Min)
	default:
		return e.Field + " is invalid"
	}
}

// ValidationError is returned by Submit when the form does not validate.
// No request has been made.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid form: " + strings.Join(msgs, "; ")
}

// For returns the message for field, or "" when it is valid.
func (e *ValidationError) For(field string) string {
	return messageFor(e.Fields, field)
}

func messageFor(errs []FieldError, field string) string {
	for _, f := range errs {
		if f.Field == field {
			return f.Error()
		}
	}
	return ""
}

// Validate checks values against fields in declaration order and returns at
// most one error per field. Length is counted in characters. MinLength is
// not applied to an empty optional field.
func Validate(fields []Field, values Values) []FieldError {
	var errs []FieldError
	for _, f := range fields {
		v := values[f.Name]
		if v == "" {
			if f.Required {
				errs = append(errs, FieldError{Field: f.Name, Rule: RuleRequired})
			}
			continue
		}
		if f.MinLength > 0 && utf8.RuneCountInString(v) < f.MinLength {
			errs = append(errs, FieldError{Field: f.Name, Rule: RuleMinLength, Min: f.MinLength})
		}
	}
	return errs
}

// Form is the form state: the values being edited and the errors of the
// last validation.
type Form struct {
	Values Values
	Errors []FieldError
}

// Reset clears values and errors.
func (f *Form) Reset() {
	f.Values = Values{}
	f.Errors = nil
}

// ErrorFor returns the message for field, or "" when it is valid.
func (f Form) ErrorFor(field string) string {
	return messageFor(f.Errors, field)
}

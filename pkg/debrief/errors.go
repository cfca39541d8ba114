package debrief

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrValidation is matched by errors.Is for every FieldErrors value.
	ErrValidation = errors.New("debrief: validation failed")
	// ErrUnknownField is returned when a value targets a field the form does
	// not define.
	ErrUnknownField = errors.New("debrief: unknown field")
	// ErrInvalidValue is returned when a value has the wrong kind for its
	// field (for example a number for a yes/no question).
	ErrInvalidValue = errors.New("debrief: invalid value")
)

// FieldValidationError is the single error kind produced by validation: a
// field name paired with a human readable message.
type FieldValidationError struct {
	Field   FieldName `json:"field"`
	Message string    `json:"message"`
}

func (e FieldValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors maps each failing field to the message of its first failing
// rule. A nil or empty map means the bundle is valid.
type FieldErrors map[FieldName]string

func (e FieldErrors) Error() string {
	list := e.List()
	if len(list) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(list))
	for _, item := range list {
		parts = append(parts, item.Error())
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e FieldErrors) Unwrap() error {
	return ErrValidation
}

// Has reports whether name failed validation.
func (e FieldErrors) Has(name FieldName) bool {
	_, ok := e[name]
	return ok
}

// List returns the errors in form order; names outside the form follow,
// sorted alphabetically.
func (e FieldErrors) List() []FieldValidationError {
	if len(e) == 0 {
		return nil
	}
	out := make([]FieldValidationError, 0, len(e))
	known := make(map[FieldName]struct{}, len(e))
	for _, name := range Fields() {
		known[name] = struct{}{}
		if msg, ok := e[name]; ok {
			out = append(out, FieldValidationError{Field: name, Message: msg})
		}
	}
	var extra []FieldName
	for name := range e {
		if _, ok := known[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	for _, name := range extra {
		out = append(out, FieldValidationError{Field: name, Message: e[name]})
	}
	return out
}

// Map returns a copy keyed by plain strings, convenient for JSON bodies and
// template contexts.
func (e FieldErrors) Map() map[string]string {
	if len(e) == 0 {
		return nil
	}
	out := make(map[string]string, len(e))
	for name, msg := range e {
		out[string(name)] = msg
	}
	return out
}

func (e FieldErrors) clone() FieldErrors {
	if len(e) == 0 {
		return nil
	}
	out := make(FieldErrors, len(e))
	for name, msg := range e {
		out[name] = msg
	}
	return out
}

// AsFieldErrors extracts FieldErrors from an error chain.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, true
	}
	return nil, false
}

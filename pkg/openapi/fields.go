package openapi

import (
	"fmt"
	"regexp"
)

// FieldSchema is the contract view of one bundle field.
type FieldSchema struct {
	Name        string
	Type        string
	Description string
	Enum        []string
	MinLength   int
	Pattern     string
	Required    bool
	Default     any
}

// HasDefault reports whether the contract supplies a default value.
func (f FieldSchema) HasDefault() bool {
	return f.Default != nil
}

// MatchPattern reports whether value satisfies the field pattern. Fields
// without a pattern accept every value.
func (f FieldSchema) MatchPattern(value string) (bool, error) {
	if f.Pattern == "" {
		return true, nil
	}
	re, err := regexp.Compile(f.Pattern)
	if err != nil {
		return false, fmt.Errorf("openapi: field %s pattern: %w", f.Name, err)
	}
	return re.MatchString(value), nil
}

func (f FieldSchema) clone() FieldSchema {
	if f.Enum != nil {
		f.Enum = append([]string(nil), f.Enum...)
	}
	return f
}

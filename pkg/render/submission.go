package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-debrief/pkg/debrief"
	"github.com/goliatone/go-debrief/pkg/uischema"
)

// Hidden input names carrying the people a debrief is about between the form
// page and its submission.
const (
	HiddenCandidate          = "candidate"
	HiddenCandidateFirstName = "candidate_first"
)

// HiddenField is a hidden input emitted alongside the visible fields.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken constructs a hidden field carrying token under name.
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// ContextHidden returns the hidden fields that round-trip a copy context.
// Empty values are omitted.
func ContextHidden(ctx uischema.Context) []HiddenField {
	clean := ctx.Sanitized()
	var fields []HiddenField
	if clean.CandidateName != "" {
		fields = append(fields, Hidden(HiddenCandidate, clean.CandidateName))
	}
	if clean.CandidateFirstName != "" && clean.CandidateFirstName != debrief.FirstName(clean.CandidateName) {
		fields = append(fields, Hidden(HiddenCandidateFirstName, clean.CandidateFirstName))
	}
	return fields
}

// MergeHiddenFields returns a copy of base with fields applied. Empty names
// are ignored; later fields win on name collisions.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		if name := strings.TrimSpace(field.Name); name != "" {
			out[name] = field.Value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields sorts hidden fields by name for deterministic output.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		if strings.TrimSpace(name) != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	result := make([]HiddenField, 0, len(names))
	for _, name := range names {
		result = append(result, HiddenField{Name: strings.TrimSpace(name), Value: fields[name]})
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

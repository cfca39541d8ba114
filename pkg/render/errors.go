package render

import (
	"sort"
	"strings"

	"github.com/goliatone/go-debrief/pkg/debrief"
	"github.com/goliatone/go-debrief/pkg/model"
)

// ErrorMapping splits messages into field level and form level buckets.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MapFieldErrors turns validation output into render errors. Names the form
// does not define become form level messages prefixed with the name.
func MapFieldErrors(form model.FormModel, errs debrief.FieldErrors) ErrorMapping {
	payload := make(map[string][]string, len(errs))
	for _, item := range errs.List() {
		payload[string(item.Field)] = append(payload[string(item.Field)], item.Message)
	}
	return MapErrorPayload(form, payload)
}

// MapErrorPayload normalises an error payload keyed by field path. Keys may
// use JSON pointer ("/feedback") or dotted ("body.feedback") notation. Keys
// that resolve to no field are kept as form level messages.
func MapErrorPayload(form model.FormModel, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{}
	if len(payload) == 0 {
		return mapping
	}

	known := make(map[string]struct{}, len(form.Fields))
	for _, field := range form.Fields {
		known[field.Name] = struct{}{}
	}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		messages := normalizeMessages(payload[key])
		if len(messages) == 0 {
			continue
		}
		name, ok := fieldFromPath(key, known)
		if !ok {
			if label := strings.TrimSpace(key); label != "" && !isFormLevelKey(label) {
				for i, msg := range messages {
					messages[i] = label + ": " + msg
				}
			}
			mapping.Form = append(mapping.Form, messages...)
			continue
		}
		if mapping.Fields == nil {
			mapping.Fields = make(map[string][]string)
		}
		mapping.Fields[name] = normalizeMessages(append(mapping.Fields[name], messages...))
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// MergeFormErrors concatenates form level messages, trimming whitespace and
// dropping duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func fieldFromPath(raw string, known map[string]struct{}) (string, bool) {
	clean := strings.TrimSpace(raw)
	if isFormLevelKey(clean) {
		return "", false
	}
	clean = strings.TrimLeft(clean, "#/$.")
	segments := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	for len(segments) > 0 {
		switch strings.ToLower(segments[0]) {
		case "body", "request", "payload", "data":
			segments = segments[1:]
			continue
		}
		break
	}
	if len(segments) != 1 {
		return "", false
	}
	if _, ok := known[segments[0]]; !ok {
		return "", false
	}
	return segments[0], true
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "__all__", "non_field_errors":
		return true
	default:
		return false
	}
}

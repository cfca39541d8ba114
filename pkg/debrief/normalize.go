package debrief

import (
	"fmt"
	"strconv"
	"strings"
)

// normalize coerces raw input (JSON, form posts, prompt answers) into the
// representation stored in a Draft. A false set result clears the field.
func normalize(kind Kind, value any) (any, bool, error) {
	if value == nil {
		return nil, false, nil
	}

	switch kind {
	case KindChoice:
		switch v := value.(type) {
		case Choice:
			if v == "" {
				return nil, false, nil
			}
			return v, true, nil
		case string:
			if v == "" {
				return nil, false, nil
			}
			return Choice(v), true, nil
		}
	case KindText:
		switch v := value.(type) {
		case string:
			return v, true, nil
		case *string:
			if v == nil {
				return nil, false, nil
			}
			return *v, true, nil
		}
	case KindBoolean:
		switch v := value.(type) {
		case bool:
			return v, true, nil
		case *bool:
			if v == nil {
				return nil, false, nil
			}
			return *v, true, nil
		case string:
			b, ok := parseBool(v)
			if ok {
				return b, true, nil
			}
		}
	default:
		return nil, false, fmt.Errorf("%w: unsupported kind %q", ErrInvalidValue, kind)
	}

	return nil, false, fmt.Errorf("%w: %s field cannot hold %T", ErrInvalidValue, kind, value)
}

// parseBool accepts the spellings browsers and terminals produce for a
// checkbox or switch. An empty string is an unchecked box.
func parseBool(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "yes", "y":
		return true, true
	case "", "off", "no", "n":
		return false, true
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, false
	}
	return b, true
}

package debrief

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// Messages shown next to failing fields. Both radio questions share the
// notification message.
const (
	MessageSelectNotification = "You need to select a notification type."
	MessageFullName           = "Must be a first and last name, each with at least 2 characters."
	MessageFeedbackLength     = "Feedback must be at least 10 characters."
	MessageRequired           = "Required"
	MessageInvalidChoice      = "Invalid enum value. Expected 'yes' | 'no'"
)

// InvalidChoiceMessage reports a choice outside yes/no, echoing what was
// received.
func InvalidChoiceMessage(value any) string {
	return fmt.Sprintf("%s, received '%v'", MessageInvalidChoice, value)
}

const (
	// MinFeedbackLength is the minimum number of characters in feedback.
	MinFeedbackLength = 10
	// MinNamePartLength is the minimum length of the first and last name.
	MinNamePartLength = 2
)

// Check is one predicate of a field rule. Message is reported when Pass
// returns false, unless Describe is set, in which case Describe builds the
// message from the failing value.
type Check struct {
	Message  string
	Pass     func(value any) bool
	Describe func(value any) string
}

// FieldRule describes how a single field is validated. Default, when non-nil,
// replaces an unset value. RequiredMessage is the marker reported for an
// unset field without a default; MessageRequired is used when it is empty.
type FieldRule struct {
	Field           FieldName
	Kind            Kind
	Default         any
	RequiredMessage string
	Checks          []Check
}

// HasDefault reports whether an unset value falls back to Default.
func (r FieldRule) HasDefault() bool {
	return r.Default != nil
}

// Rules returns the rule table in form order. The slice is freshly allocated
// so callers may extend or reorder it.
func Rules() []FieldRule {
	return []FieldRule{
		{
			Field:           FieldCandidateNextStep,
			Kind:            KindChoice,
			RequiredMessage: MessageSelectNotification,
			Checks:          []Check{{Message: MessageInvalidChoice, Pass: isChoice, Describe: InvalidChoiceMessage}},
		},
		{
			Field:           FieldPotentialOffer,
			Kind:            KindChoice,
			RequiredMessage: MessageSelectNotification,
			Checks:          []Check{{Message: MessageInvalidChoice, Pass: isChoice, Describe: InvalidChoiceMessage}},
		},
		{
			Field: FieldNextInterviewerName,
			Kind:  KindText,
			Checks: []Check{{
				Message: MessageFullName,
				Pass: func(value any) bool {
					s, ok := value.(string)
					return ok && IsFullName(s)
				},
			}},
		},
		{
			Field:   FieldUnselectedInterviewer,
			Kind:    KindBoolean,
			Default: false,
			Checks:  []Check{{Message: MessageRequired, Pass: isBool}},
		},
		{
			Field:           FieldApproveNextInterviewRound,
			Kind:            KindBoolean,
			Default:         false,
			RequiredMessage: MessageSelectNotification,
			Checks:          []Check{{Message: MessageRequired, Pass: isBool}},
		},
		{
			Field: FieldFeedback,
			Kind:  KindText,
			Checks: []Check{{
				Message: MessageFeedbackLength,
				Pass: func(value any) bool {
					s, ok := value.(string)
					return ok && TextLength(s) >= MinFeedbackLength
				},
			}},
		},
	}
}

// RuleFor returns the default rule for name.
func RuleFor(name FieldName) (FieldRule, bool) {
	for _, rule := range Rules() {
		if rule.Field == name {
			return rule, true
		}
	}
	return FieldRule{}, false
}

// ValidateField evaluates a single rule. set reports whether the field holds
// a value. It returns the first failing message, or "" and true on success.
func ValidateField(rule FieldRule, value any, set bool) (string, bool) {
	if !set {
		if !rule.HasDefault() {
			if rule.RequiredMessage != "" {
				return rule.RequiredMessage, false
			}
			return MessageRequired, false
		}
		value = rule.Default
	}
	for _, check := range rule.Checks {
		if check.Pass == nil {
			continue
		}
		if !check.Pass(value) {
			if check.Describe != nil {
				return check.Describe(value), false
			}
			return check.Message, false
		}
	}
	return "", true
}

// IsFullName reports whether s looks like "First Last": the trimmed value,
// split on a single space, yields exactly two parts of at least two
// characters each. Consecutive spaces produce empty parts and fail.
func IsFullName(s string) bool {
	parts := strings.Split(strings.TrimSpace(s), " ")
	if len(parts) != 2 {
		return false
	}
	for _, part := range parts {
		if TextLength(part) < MinNamePartLength {
			return false
		}
	}
	return true
}

// TextLength counts s in UTF-16 code units, the unit browsers use for
// string length, so a character outside the BMP counts as two.
func TextLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// FirstName returns the first space separated token of a full name.
func FirstName(fullName string) string {
	trimmed := strings.TrimSpace(fullName)
	if idx := strings.Index(trimmed, " "); idx >= 0 {
		return trimmed[:idx]
	}
	return trimmed
}

func isChoice(value any) bool {
	c, ok := value.(Choice)
	return ok && c.IsValid()
}

func isBool(value any) bool {
	_, ok := value.(bool)
	return ok
}

package debrief

import (
	"fmt"
)

// FieldName identifies one input of the debrief form. The string value is the
// wire name used by JSON payloads, HTML inputs and error mappings.
type FieldName string

const (
	FieldCandidateNextStep         FieldName = "candidateNextStep"
	FieldPotentialOffer            FieldName = "potentialOffer"
	FieldNextInterviewerName       FieldName = "nextInterviewerName"
	FieldUnselectedInterviewer     FieldName = "unselectedInterviewer"
	FieldApproveNextInterviewRound FieldName = "approveNextInterviewRound"
	FieldFeedback                  FieldName = "feedback"
)

// Fields returns every field in form order.
func Fields() []FieldName {
	return []FieldName{
		FieldCandidateNextStep,
		FieldPotentialOffer,
		FieldNextInterviewerName,
		FieldUnselectedInterviewer,
		FieldApproveNextInterviewRound,
		FieldFeedback,
	}
}

// Kind is the value category a field accepts.
type Kind string

const (
	KindChoice  Kind = "choice"
	KindText    Kind = "text"
	KindBoolean Kind = "boolean"
)

// Choice is the yes/no answer used by the two radio questions.
type Choice string

const (
	ChoiceYes Choice = "yes"
	ChoiceNo  Choice = "no"
)

// Choices lists the accepted Choice values in display order.
func Choices() []Choice {
	return []Choice{ChoiceYes, ChoiceNo}
}

// IsValid reports whether c is one of the accepted answers.
func (c Choice) IsValid() bool {
	switch c {
	case ChoiceYes, ChoiceNo:
		return true
	default:
		return false
	}
}

func (c Choice) String() string {
	return string(c)
}

// Draft holds the in-progress values of a form. A nil pointer means the field
// was never set; only a validated Feedback carries concrete values.
type Draft struct {
	CandidateNextStep         *Choice
	PotentialOffer            *Choice
	NextInterviewerName       *string
	UnselectedInterviewer     *bool
	ApproveNextInterviewRound *bool
	Feedback                  *string
}

// NewDraft returns the draft a freshly mounted form starts from: every field
// unset except nextInterviewerName, which is seeded to an empty string.
func NewDraft() Draft {
	return Draft{NextInterviewerName: ptr("")}
}

// Value returns the current value of name and whether it is set.
func (d Draft) Value(name FieldName) (any, bool) {
	switch name {
	case FieldCandidateNextStep:
		return deref(d.CandidateNextStep)
	case FieldPotentialOffer:
		return deref(d.PotentialOffer)
	case FieldNextInterviewerName:
		return deref(d.NextInterviewerName)
	case FieldUnselectedInterviewer:
		return deref(d.UnselectedInterviewer)
	case FieldApproveNextInterviewRound:
		return deref(d.ApproveNextInterviewRound)
	case FieldFeedback:
		return deref(d.Feedback)
	default:
		return nil, false
	}
}

// Values flattens the set fields into a map keyed by wire name.
func (d Draft) Values() map[string]any {
	out := make(map[string]any, len(Fields()))
	for _, name := range Fields() {
		if value, ok := d.Value(name); ok {
			out[string(name)] = plain(value)
		}
	}
	return out
}

// set stores an already-normalised value. Passing set=false clears the field.
func (d *Draft) set(name FieldName, value any, set bool) error {
	switch name {
	case FieldCandidateNextStep:
		return assign(&d.CandidateNextStep, name, value, set)
	case FieldPotentialOffer:
		return assign(&d.PotentialOffer, name, value, set)
	case FieldNextInterviewerName:
		return assign(&d.NextInterviewerName, name, value, set)
	case FieldUnselectedInterviewer:
		return assign(&d.UnselectedInterviewer, name, value, set)
	case FieldApproveNextInterviewRound:
		return assign(&d.ApproveNextInterviewRound, name, value, set)
	case FieldFeedback:
		return assign(&d.Feedback, name, value, set)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

// Feedback is a validated bundle. It only exists once every rule passed.
type Feedback struct {
	CandidateNextStep         Choice `json:"candidateNextStep" yaml:"candidateNextStep"`
	PotentialOffer            Choice `json:"potentialOffer" yaml:"potentialOffer"`
	NextInterviewerName       string `json:"nextInterviewerName" yaml:"nextInterviewerName"`
	UnselectedInterviewer     bool   `json:"unselectedInterviewer" yaml:"unselectedInterviewer"`
	ApproveNextInterviewRound bool   `json:"approveNextInterviewRound" yaml:"approveNextInterviewRound"`
	Feedback                  string `json:"feedback" yaml:"feedback"`
}

// Values flattens the bundle into a map keyed by wire name.
func (f Feedback) Values() map[string]any {
	return map[string]any{
		string(FieldCandidateNextStep):         string(f.CandidateNextStep),
		string(FieldPotentialOffer):            string(f.PotentialOffer),
		string(FieldNextInterviewerName):       f.NextInterviewerName,
		string(FieldUnselectedInterviewer):     f.UnselectedInterviewer,
		string(FieldApproveNextInterviewRound): f.ApproveNextInterviewRound,
		string(FieldFeedback):                  f.Feedback,
	}
}

// Draft converts the bundle back into a fully populated draft.
func (f Feedback) Draft() Draft {
	return Draft{
		CandidateNextStep:         ptr(f.CandidateNextStep),
		PotentialOffer:            ptr(f.PotentialOffer),
		NextInterviewerName:       ptr(f.NextInterviewerName),
		UnselectedInterviewer:     ptr(f.UnselectedInterviewer),
		ApproveNextInterviewRound: ptr(f.ApproveNextInterviewRound),
		Feedback:                  ptr(f.Feedback),
	}
}

func assign[T any](slot **T, name FieldName, value any, set bool) error {
	if !set {
		*slot = nil
		return nil
	}
	typed, ok := value.(T)
	if !ok {
		return fmt.Errorf("%w: %s expects %T, got %T", ErrInvalidValue, name, *new(T), value)
	}
	*slot = &typed
	return nil
}

func deref[T any](p *T) (any, bool) {
	if p == nil {
		return nil, false
	}
	return *p, true
}

func plain(value any) any {
	if c, ok := value.(Choice); ok {
		return string(c)
	}
	return value
}

func ptr[T any](v T) *T {
	return &v
}

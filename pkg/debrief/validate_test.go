package debrief_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-debrief/pkg/debrief"
)

func validBundle() debrief.Feedback {
	return debrief.Feedback{
		CandidateNextStep:         debrief.ChoiceYes,
		PotentialOffer:            debrief.ChoiceNo,
		NextInterviewerName:       "Jo Smith",
		UnselectedInterviewer:     false,
		ApproveNextInterviewRound: true,
		Feedback:                  "Clear communicator, solid fundamentals.",
	}
}

func TestValidate_RoundTripsValidBundles(t *testing.T) {
	cases := []debrief.Feedback{
		validBundle(),
		{
			CandidateNextStep:         debrief.ChoiceNo,
			PotentialOffer:            debrief.ChoiceYes,
			NextInterviewerName:       "  Ana Lopez  ",
			UnselectedInterviewer:     true,
			ApproveNextInterviewRound: false,
			Feedback:                  "0123456789",
		},
		{
			CandidateNextStep:   debrief.ChoiceYes,
			PotentialOffer:      debrief.ChoiceYes,
			NextInterviewerName: "Zoë Ørsted",
			Feedback:            "ññññññññññ",
		},
	}

	for _, want := range cases {
		got, errs := debrief.Validate(want.Draft())
		if errs != nil {
			t.Fatalf("unexpected errors for %+v: %v", want, errs)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("bundle mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestValidate_MissingRequiredField(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*debrief.Draft)
		field   debrief.FieldName
		message string
	}{
		{
			name:    "candidate next step",
			mutate:  func(d *debrief.Draft) { d.CandidateNextStep = nil },
			field:   debrief.FieldCandidateNextStep,
			message: debrief.MessageSelectNotification,
		},
		{
			name:    "potential offer",
			mutate:  func(d *debrief.Draft) { d.PotentialOffer = nil },
			field:   debrief.FieldPotentialOffer,
			message: debrief.MessageSelectNotification,
		},
		{
			name:    "next interviewer name",
			mutate:  func(d *debrief.Draft) { d.NextInterviewerName = nil },
			field:   debrief.FieldNextInterviewerName,
			message: debrief.MessageRequired,
		},
		{
			name:    "feedback",
			mutate:  func(d *debrief.Draft) { d.Feedback = nil },
			field:   debrief.FieldFeedback,
			message: debrief.MessageRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validBundle().Draft()
			tc.mutate(&draft)

			got, errs := debrief.Validate(draft)
			want := debrief.FieldErrors{tc.field: tc.message}
			if diff := cmp.Diff(want, errs); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(debrief.Feedback{}, got); diff != "" {
				t.Fatalf("expected zero bundle on failure (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_BooleansFallBackToDefaults(t *testing.T) {
	draft := validBundle().Draft()
	draft.UnselectedInterviewer = nil
	draft.ApproveNextInterviewRound = nil

	got, errs := debrief.Validate(draft)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got.UnselectedInterviewer || got.ApproveNextInterviewRound {
		t.Fatalf("expected false defaults, got %+v", got)
	}
}

func TestValidate_NextInterviewerName(t *testing.T) {
	cases := map[string]bool{
		"Jo Smith":      true,
		"  Jo Smith  ":  true,
		"Jo S":          false,
		"Madonna":       false,
		"":              false,
		"Jo  Smith":     false,
		"Mary Jo Smith": false,
		"J Smith":       false,
		"Zoë Ørsted":    true,
	}

	for name, wantValid := range cases {
		draft := validBundle().Draft()
		value := name
		draft.NextInterviewerName = &value

		_, errs := debrief.Validate(draft)
		if wantValid && errs != nil {
			t.Fatalf("%q: unexpected errors %v", name, errs)
		}
		if !wantValid {
			want := debrief.FieldErrors{debrief.FieldNextInterviewerName: debrief.MessageFullName}
			if diff := cmp.Diff(want, errs); diff != "" {
				t.Fatalf("%q: errors mismatch (-want +got):\n%s", name, diff)
			}
		}
	}
}

func TestValidate_FeedbackLengthBoundary(t *testing.T) {
	draft := validBundle().Draft()

	nine := strings.Repeat("a", 9)
	draft.Feedback = &nine
	_, errs := debrief.Validate(draft)
	want := debrief.FieldErrors{debrief.FieldFeedback: debrief.MessageFeedbackLength}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("9 characters should fail (-want +got):\n%s", diff)
	}

	ten := strings.Repeat("a", 10)
	draft.Feedback = &ten
	if _, errs := debrief.Validate(draft); errs != nil {
		t.Fatalf("10 characters should pass, got %v", errs)
	}
}

func TestValidate_CollectsAllErrorsInOnePass(t *testing.T) {
	_, errs := debrief.Validate(debrief.NewDraft())

	want := debrief.FieldErrors{
		debrief.FieldCandidateNextStep:   debrief.MessageSelectNotification,
		debrief.FieldPotentialOffer:      debrief.MessageSelectNotification,
		debrief.FieldNextInterviewerName: debrief.MessageFullName,
		debrief.FieldFeedback:            debrief.MessageRequired,
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(errs, debrief.ErrValidation) {
		t.Fatalf("expected errors.Is(ErrValidation)")
	}

	order := make([]debrief.FieldName, 0, len(errs))
	for _, item := range errs.List() {
		order = append(order, item.Field)
	}
	wantOrder := []debrief.FieldName{
		debrief.FieldCandidateNextStep,
		debrief.FieldPotentialOffer,
		debrief.FieldNextInterviewerName,
		debrief.FieldFeedback,
	}
	if diff := cmp.Diff(wantOrder, order); diff != "" {
		t.Fatalf("list order mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_RejectsUnknownChoice(t *testing.T) {
	draft := validBundle().Draft()
	maybe := debrief.Choice("maybe")
	draft.PotentialOffer = &maybe

	_, errs := debrief.Validate(draft)
	want := debrief.FieldErrors{
		debrief.FieldPotentialOffer: "Invalid enum value. Expected 'yes' | 'no', received 'maybe'",
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldErrors_ErrorString(t *testing.T) {
	errs := debrief.FieldErrors{
		debrief.FieldFeedback:          debrief.MessageFeedbackLength,
		debrief.FieldCandidateNextStep: debrief.MessageSelectNotification,
	}
	want := "debrief: validation failed: candidateNextStep: You need to select a notification type.; feedback: Feedback must be at least 10 characters."
	if got := errs.Error(); got != want {
		t.Fatalf("error string mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestFirstName(t *testing.T) {
	cases := map[string]string{
		"Jo Smith":   "Jo",
		"  Ana Lee ": "Ana",
		"Madonna":    "Madonna",
		"":           "",
	}
	for in, want := range cases {
		if got := debrief.FirstName(in); got != want {
			t.Fatalf("FirstName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate_UnselectedInterviewerKeepsNameRule(t *testing.T) {
	bundle := validBundle()
	bundle.UnselectedInterviewer = true
	draft := bundle.Draft()
	empty := ""
	draft.NextInterviewerName = &empty

	_, errs := debrief.Validate(draft)
	if diff := cmp.Diff(debrief.FieldErrors{debrief.FieldNextInterviewerName: debrief.MessageFullName}, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_CountsUTF16Units(t *testing.T) {
	draft := validBundle().Draft()

	emoji := strings.Repeat("😀", 5)
	draft.Feedback = &emoji
	if _, errs := debrief.Validate(draft); errs != nil {
		t.Fatalf("five astral characters are 10 units and should pass, got %v", errs)
	}

	short := strings.Repeat("😀", 4) + "a"
	draft.Feedback = &short
	_, errs := debrief.Validate(draft)
	want := debrief.FieldErrors{debrief.FieldFeedback: debrief.MessageFeedbackLength}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("9 units should fail (-want +got):\n%s", diff)
	}

	if !debrief.IsFullName("😀 Li") {
		t.Fatalf("expected a single astral character to count as two units")
	}
	if got := debrief.TextLength("añ😀"); got != 4 {
		t.Fatalf("TextLength = %d, want 4", got)
	}
}

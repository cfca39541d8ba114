package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-debrief/pkg/debrief"
	"github.com/goliatone/go-debrief/pkg/model"
	"github.com/goliatone/go-debrief/pkg/render"
)

func debriefForm() model.FormModel {
	form := model.FormModel{}
	for _, name := range debrief.Fields() {
		form.Fields = append(form.Fields, model.Field{Name: string(name)})
	}
	return form
}

func TestMapFieldErrors_InlinePerField(t *testing.T) {
	errs := debrief.FieldErrors{
		debrief.FieldCandidateNextStep: debrief.MessageSelectNotification,
		debrief.FieldFeedback:          debrief.MessageFeedbackLength,
		"salary":                       "Not part of this form",
	}

	mapped := render.MapFieldErrors(debriefForm(), errs)

	wantFields := map[string][]string{
		"candidateNextStep": {debrief.MessageSelectNotification},
		"feedback":          {debrief.MessageFeedbackLength},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"salary: Not part of this form"}, mapped.Form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorPayload_PathStyles(t *testing.T) {
	payload := map[string][]string{
		"/feedback":                 {"Too short", " Too short "},
		"body.nextInterviewerName":  {"Bad name"},
		"#/potentialOffer":          {"Pick one"},
		"non_field_errors":          {"Try again later"},
		"request/body/unknownField": {"Dropped field"},
		"":                          {"  "},
	}

	mapped := render.MapErrorPayload(debriefForm(), payload)

	wantFields := map[string][]string{
		"feedback":            {"Too short"},
		"nextInterviewerName": {"Bad name"},
		"potentialOffer":      {"Pick one"},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	wantForm := []string{"Try again later", "request/body/unknownField: Dropped field"}
	if diff := cmp.Diff(wantForm, mapped.Form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapFieldErrors_Empty(t *testing.T) {
	mapped := render.MapFieldErrors(debriefForm(), nil)
	if mapped.Fields != nil || mapped.Form != nil {
		t.Fatalf("expected empty mapping, got %+v", mapped)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged form errors mismatch (-want +got):\n%s", diff)
	}
}

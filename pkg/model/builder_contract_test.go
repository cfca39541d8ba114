package model_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-debrief/pkg/model"
	"github.com/goliatone/go-debrief/pkg/openapi"
	"github.com/goliatone/go-debrief/pkg/render/template/gotemplate"
	"github.com/goliatone/go-debrief/pkg/testsupport"
	"github.com/goliatone/go-debrief/pkg/uischema"
)

func TestBuilder_GoldenFormModel(t *testing.T) {
	form := testsupport.BuildForm(t, uischema.Context{CandidateName: "Ada Lovelace"})

	golden := filepath.Join("testdata", "debrief_form.golden.json")
	testsupport.WriteGolden(t, golden, form)

	want := testsupport.MustLoadFormModel(t, golden)
	if diff := testsupport.CompareGolden(want, form); diff != "" {
		t.Fatalf("form model mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_EndpointOverrideAndDefaults(t *testing.T) {
	contract, err := openapi.Load(context.Background())
	if err != nil {
		t.Fatalf("load contract: %v", err)
	}
	engine, err := gotemplate.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	copyDoc, err := uischema.Parse([]byte(strings.Join([]string{
		"fields:",
		"  candidateNextStep: {label: 'Advance?', widget: radio, options: [{value: 'yes', label: Sure}]}",
		"  potentialOffer: {label: 'Offer?', widget: radio, options: [{value: 'no', label: Nope}]}",
		"  nextInterviewerName: {label: 'Next?', widget: text}",
		"  unselectedInterviewer: {label: 'Unknown?', widget: checkbox}",
		"  approveNextInterviewRound: {label: 'Approve?', widget: switch}",
		"  feedback: {label: Notes, widget: textarea}",
	}, "\n")), "inline.yaml")
	if err != nil {
		t.Fatalf("parse copy: %v", err)
	}

	form, err := model.NewBuilder(engine, model.WithEndpoint("/forms/debrief")).Build(contract, copyDoc, uischema.Context{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if form.Endpoint != "/forms/debrief" {
		t.Fatalf("expected endpoint override, got %q", form.Endpoint)
	}
	if form.SubmitLabel != "Submit" {
		t.Fatalf("expected default submit label, got %q", form.SubmitLabel)
	}

	step, _ := form.Field("candidateNextStep")
	want := []model.Option{{Value: "yes", Label: "Sure"}, {Value: "no", Label: "No"}}
	if diff := testsupport.CompareGolden(want, step.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_RejectsIncompleteCopy(t *testing.T) {
	contract, err := openapi.Load(context.Background())
	if err != nil {
		t.Fatalf("load contract: %v", err)
	}
	engine, _ := gotemplate.New()

	copyDoc, err := uischema.Parse([]byte("fields:\n  feedback:\n    label: Notes\n    widget: textarea\n"), "partial.yaml")
	if err != nil {
		t.Fatalf("parse copy: %v", err)
	}
	_, err = model.NewBuilder(engine).Build(contract, copyDoc, uischema.Context{})
	if err == nil || !strings.Contains(err.Error(), `missing copy for field "candidateNextStep"`) {
		t.Fatalf("expected missing copy error, got %v", err)
	}
}

package tui

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-debrief/pkg/debrief"
	"github.com/goliatone/go-debrief/pkg/render"
	"github.com/goliatone/go-debrief/pkg/testsupport"
	"github.com/goliatone/go-debrief/pkg/uischema"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	textAreas    []string
	infoMessages []string
	inputDefault []string
	inputPos     int
	selectPos    int
	confirmPos   int
	textPos      int
	selectErr    error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	s.inputDefault = append(s.inputDefault, cfg.Default)
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectErr != nil {
		return -1, s.selectErr
	}
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

type recorder struct {
	calls []debrief.Feedback
}

func (r *recorder) Submit(_ context.Context, feedback debrief.Feedback) error {
	r.calls = append(r.calls, feedback)
	return nil
}

func TestRender_CollectsValidBundle(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{0, 1},
		inputs:    []string{"Grace Hopper"},
		confirm:   []bool{false, true},
		textAreas: []string{"Strong systems design answers."},
	}
	sink := &recorder{}
	r, err := New(WithPromptDriver(driver), WithSubmitter(sink))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	form := testsupport.BuildForm(t, uischema.Context{CandidateName: "Ada Lovelace"})
	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var got debrief.Feedback
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if diff := cmp.Diff(testsupport.ValidFeedback(), got); diff != "" {
		t.Fatalf("bundle mismatch (-want +got):\n%s", diff)
	}
	if len(sink.calls) != 1 {
		t.Fatalf("expected one submission, got %d", len(sink.calls))
	}
	if driver.infoMessages[0] != form.Title || driver.infoMessages[len(driver.infoMessages)-1] != form.SuccessTitle {
		t.Fatalf("expected title and success messages, got %v", driver.infoMessages)
	}
}

func TestRender_RepromptsOnlyFailingFields(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{0, 1},
		inputs:    []string{"Grace", "Grace Hopper"},
		confirm:   []bool{false, true},
		textAreas: []string{"short", "Strong systems design answers."},
	}
	r, err := New(WithPromptDriver(driver), WithSubmitter(&recorder{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	form := testsupport.BuildForm(t, uischema.Context{})
	if _, err := r.Render(context.Background(), form, render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}

	if driver.selectPos != 2 || driver.confirmPos != 2 {
		t.Fatalf("expected valid fields to be asked once, got select=%d confirm=%d", driver.selectPos, driver.confirmPos)
	}
	if driver.inputPos != 2 || driver.textPos != 2 {
		t.Fatalf("expected failing fields to be asked twice, got input=%d text=%d", driver.inputPos, driver.textPos)
	}
	if diff := cmp.Diff([]string{"", "Grace"}, driver.inputDefault); diff != "" {
		t.Fatalf("expected previous answer as default (-want +got):\n%s", diff)
	}

	joined := strings.Join(driver.infoMessages, "\n")
	for _, want := range []string{"! " + debrief.MessageFullName, "! " + debrief.MessageFeedbackLength} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected message %q in %v", want, driver.infoMessages)
		}
	}
	if strings.Contains(joined, debrief.MessageSelectNotification) {
		t.Fatalf("unexpected error for a valid field: %v", driver.infoMessages)
	}
}

func TestRender_MaxAttempts(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{-1, 1},
		inputs:    []string{"Grace Hopper"},
		confirm:   []bool{false, true},
		textAreas: []string{"Strong systems design answers."},
	}
	sink := &recorder{}
	r, err := New(WithPromptDriver(driver), WithSubmitter(sink), WithMaxAttempts(1))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	_, err = r.Render(context.Background(), testsupport.BuildForm(t, uischema.Context{}), render.RenderOptions{})
	if !errors.Is(err, ErrTooManyAttempts) || !errors.Is(err, debrief.ErrValidation) {
		t.Fatalf("expected too many attempts, got %v", err)
	}
	fieldErrs, ok := debrief.AsFieldErrors(err)
	if !ok || !fieldErrs.Has(debrief.FieldCandidateNextStep) || len(fieldErrs) != 1 {
		t.Fatalf("expected only candidateNextStep to fail, got %v", fieldErrs)
	}
	if len(sink.calls) != 0 {
		t.Fatalf("submitter must not run for an invalid bundle")
	}
}

func TestRender_Aborted(t *testing.T) {
	driver := &stubDriver{selectErr: ErrAborted}
	sink := &recorder{}
	r, err := New(WithPromptDriver(driver), WithSubmitter(sink))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	_, err = r.Render(context.Background(), testsupport.BuildForm(t, uischema.Context{}), render.RenderOptions{})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected abort, got %v", err)
	}
	if len(sink.calls) != 0 {
		t.Fatalf("submitter must not run after abort")
	}
}

func TestRender_PrefillAndSeededErrors(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{0, 0},
		inputs:    []string{"Grace Hopper"},
		confirm:   []bool{true, false},
		textAreas: []string{"Strong systems design answers."},
	}
	r, err := New(WithPromptDriver(driver), WithSubmitter(&recorder{}), WithOutputFormat(OutputFormatYAML))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), testsupport.BuildForm(t, uischema.Context{}), render.RenderOptions{
		Values: map[string]any{"nextInterviewerName": "Grace"},
		Errors: map[string][]string{"nextInterviewerName": {"Server says no"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff([]string{"Grace"}, driver.inputDefault); diff != "" {
		t.Fatalf("expected prefilled default (-want +got):\n%s", diff)
	}
	if !strings.Contains(strings.Join(driver.infoMessages, "\n"), "! Server says no") {
		t.Fatalf("expected seeded error, got %v", driver.infoMessages)
	}
	if !strings.Contains(string(out), "nextInterviewerName: Grace Hopper") {
		t.Fatalf("expected yaml output, got:\n%s", out)
	}
	if r.ContentType() != "application/yaml" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}

func TestRender_SubmittedPrettyText(t *testing.T) {
	driver := &stubDriver{}
	r, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatPrettyText))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	feedback := testsupport.ValidFeedback()
	form := testsupport.BuildForm(t, uischema.Context{CandidateName: "Ada Lovelace"})
	out, err := r.Render(context.Background(), form, render.RenderOptions{Submitted: &feedback})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	text := string(out)
	step, _ := form.Field("candidateNextStep")
	if !strings.Contains(text, step.Label+"\n  Yes\n") {
		t.Fatalf("expected choice label in output:\n%s", text)
	}
	if !strings.Contains(text, "\n  Grace Hopper\n") || !strings.Contains(text, "\n  No\n") {
		t.Fatalf("expected summary values in output:\n%s", text)
	}
	if len(driver.infoMessages) != 0 || driver.selectPos != 0 {
		t.Fatalf("expected no prompts for a submitted bundle")
	}
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	if _, err := New(WithPromptDriver(&stubDriver{}), WithOutputFormat("xml")); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

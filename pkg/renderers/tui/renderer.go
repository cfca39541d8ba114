package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-debrief/pkg/debrief"
	"github.com/goliatone/go-debrief/pkg/model"
	"github.com/goliatone/go-debrief/pkg/render"
	"github.com/goliatone/go-debrief/pkg/uischema"
)

// Renderer implements render.Renderer for terminal sessions. Each Render call
// runs a debrief controller through prompt rounds until the bundle validates,
// then returns the serialized bundle.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	submitter    debrief.Submitter
	logger       *zap.Logger
	maxAttempts  int
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       NewSurveyDriver(nil),
		outputFormat: OutputFormatJSON,
		logger:       zap.NewNop(),
		theme:        Theme{ErrorPrefix: "! "},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if _, ok := ParseOutputFormat(string(r.outputFormat)); !ok {
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	if r.submitter == nil {
		r.submitter = debrief.NewLogSubmitter(r.logger)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatYAML:
		return "application/yaml"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts for every field, submits, and re-prompts only the failing
// fields with their messages until the bundle is accepted. opts.Values seed
// the answers and opts.Errors are shown in the first round. When
// opts.Submitted is set the bundle is serialized without prompting.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	if opts.Submitted != nil {
		return r.serialize(form, *opts.Submitted)
	}

	controller := debrief.New(
		debrief.WithSubmitter(r.submitter),
		debrief.WithLogger(r.logger),
	)
	if len(opts.Values) > 0 {
		if err := controller.SetValues(opts.Values); err != nil {
			return nil, fmt.Errorf("tui: prefill: %w", err)
		}
	}
	state := NewState(controller, opts.Errors)

	if form.Title != "" {
		if err := r.info(ctx, form.Title); err != nil {
			return nil, err
		}
	}

	for {
		pending := state.Pending(form)
		if len(pending) == 0 && controller.Attempts() > 0 {
			return nil, fmt.Errorf("tui: %w", controller.Errors())
		}
		for _, field := range pending {
			if msg, ok := state.ErrorFor(field.Name); ok {
				if err := r.info(ctx, r.theme.ErrorPrefix+msg); err != nil {
					return nil, err
				}
			}
			if err := r.promptField(ctx, field, state); err != nil {
				return nil, err
			}
		}

		feedback, err := controller.Submit(ctx)
		if err == nil {
			if form.SuccessTitle != "" {
				if err := r.info(ctx, form.SuccessTitle); err != nil {
					return nil, err
				}
			}
			return r.serialize(form, feedback)
		}
		if !errors.Is(err, debrief.ErrValidation) {
			return nil, fmt.Errorf("tui: %w", err)
		}
		if r.maxAttempts > 0 && controller.Attempts() >= r.maxAttempts {
			return nil, fmt.Errorf("%w: %w", ErrTooManyAttempts, err)
		}
	}
}

func (r *Renderer) promptField(ctx context.Context, field model.Field, state *State) error {
	current, hasCurrent := state.Value(field.Name)
	label := uischema.SanitizeText(field.Label)
	help := uischema.SanitizeText(field.Help)

	switch {
	case len(field.Options) > 0:
		labels := make([]string, 0, len(field.Options))
		defaultIndex := -1
		for i, option := range field.Options {
			labels = append(labels, option.Label)
			if hasCurrent && fmt.Sprint(current) == option.Value {
				defaultIndex = i
			}
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      labels,
			DefaultIndex: defaultIndex,
			Help:         help,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(field.Options) {
			return state.Set(field.Name, nil)
		}
		return state.Set(field.Name, field.Options[idx].Value)

	case field.Type == model.FieldTypeBoolean:
		defaultVal, _ := current.(bool)
		if !hasCurrent {
			defaultVal, _ = field.Default.(bool)
		}
		resp, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: label,
			Default: defaultVal,
			Help:    help,
		})
		if err != nil {
			return err
		}
		return state.Set(field.Name, resp)

	case field.Widget == string(uischema.WidgetTextarea):
		defaultVal, _ := current.(string)
		resp, err := r.driver.TextArea(ctx, TextAreaConfig{
			Message: label,
			Default: defaultVal,
			Help:    help,
		})
		if err != nil {
			return err
		}
		return state.Set(field.Name, resp)

	default:
		defaultVal, _ := current.(string)
		resp, err := r.driver.Input(ctx, InputConfig{
			Message:     label,
			Default:     defaultVal,
			Help:        help,
			Placeholder: field.Placeholder,
		})
		if err != nil {
			return err
		}
		return state.Set(field.Name, resp)
	}
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func (r *Renderer) serialize(form model.FormModel, feedback debrief.Feedback) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatYAML:
		out, err := yaml.Marshal(feedback)
		if err != nil {
			return nil, fmt.Errorf("tui: encode yaml: %w", err)
		}
		return out, nil
	case OutputFormatPrettyText:
		return prettyText(form, feedback), nil
	default:
		out, err := json.MarshalIndent(feedback, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("tui: encode json: %w", err)
		}
		return append(out, '\n'), nil
	}
}

func prettyText(form model.FormModel, feedback debrief.Feedback) []byte {
	values := feedback.Values()
	var b strings.Builder
	for _, field := range form.Fields {
		value, ok := values[field.Name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s\n  %s\n", uischema.SanitizeText(field.Label), displayValue(field, value))
	}
	return []byte(b.String())
}

func displayValue(field model.Field, value any) string {
	if b, ok := value.(bool); ok {
		if b {
			return "Yes"
		}
		return "No"
	}
	text := fmt.Sprint(value)
	for _, option := range field.Options {
		if option.Value == text {
			return option.Label
		}
	}
	return text
}

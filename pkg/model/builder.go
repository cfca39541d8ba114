package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-debrief/pkg/openapi"
	"github.com/goliatone/go-debrief/pkg/uischema"
)

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithEndpoint overrides the submit path taken from the contract, for
// servers mounting the form under a prefix.
func WithEndpoint(endpoint string) BuilderOption {
	return func(b *Builder) {
		b.endpoint = strings.TrimSpace(endpoint)
	}
}

// Builder combines the contract with resolved copy into a FormModel.
type Builder struct {
	engine   uischema.Interpolator
	endpoint string
}

// NewBuilder returns a builder that resolves copy placeholders with engine.
func NewBuilder(engine uischema.Interpolator, options ...BuilderOption) *Builder {
	b := &Builder{engine: engine}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Build produces the form model for one render. Fields follow contract
// order; every contract field must have copy.
func (b *Builder) Build(contract *openapi.Contract, copyDoc *uischema.Document, ctx uischema.Context) (FormModel, error) {
	if contract == nil {
		return FormModel{}, errors.New("model: contract is required")
	}
	if copyDoc == nil {
		return FormModel{}, errors.New("model: copy document is required")
	}

	schemas := contract.Fields()
	names := make([]string, 0, len(schemas))
	for _, schema := range schemas {
		names = append(names, schema.Name)
	}
	if err := copyDoc.Require(names...); err != nil {
		return FormModel{}, fmt.Errorf("model: %w", err)
	}

	resolved, err := copyDoc.Resolve(b.engine, ctx)
	if err != nil {
		return FormModel{}, fmt.Errorf("model: %w", err)
	}

	op := contract.Operation()
	form := FormModel{
		ID:             op.ID,
		Title:          resolved.Form.Title,
		Method:         op.Method,
		Endpoint:       op.Path,
		SubmitLabel:    resolved.Form.Submit,
		SuccessTitle:   resolved.Form.SuccessTitle,
		SuccessMessage: resolved.Form.SuccessMessage,
		Fields:         make([]Field, 0, len(schemas)),
	}
	if b.endpoint != "" {
		form.Endpoint = b.endpoint
	}
	if form.SubmitLabel == "" {
		form.SubmitLabel = "Submit"
	}

	for _, schema := range schemas {
		cfg, _ := resolved.Field(schema.Name)
		form.Fields = append(form.Fields, buildField(schema, cfg))
	}
	return form, nil
}

func buildField(schema openapi.FieldSchema, cfg uischema.FieldCopy) Field {
	field := Field{
		Name:        schema.Name,
		Type:        FieldTypeString,
		Widget:      string(cfg.Widget),
		Label:       cfg.Label,
		Help:        cfg.Help,
		Placeholder: cfg.Placeholder,
		Required:    schema.Required,
		Default:     schema.Default,
		MinLength:   schema.MinLength,
		Pattern:     schema.Pattern,
	}
	if schema.Type == string(FieldTypeBoolean) {
		field.Type = FieldTypeBoolean
	}
	if field.Widget == "" {
		field.Widget = string(defaultWidget(field.Type, len(schema.Enum) > 0))
	}

	labels := make(map[string]string, len(cfg.Options))
	for _, opt := range cfg.Options {
		labels[opt.Value] = opt.Label
	}
	for _, value := range schema.Enum {
		label := labels[value]
		if label == "" {
			label = titleCase(value)
		}
		field.Options = append(field.Options, Option{Value: value, Label: label})
	}
	return field
}

func defaultWidget(kind FieldType, enum bool) uischema.Widget {
	switch {
	case enum:
		return uischema.WidgetRadio
	case kind == FieldTypeBoolean:
		return uischema.WidgetCheckbox
	default:
		return uischema.WidgetText
	}
}

func titleCase(value string) string {
	if value == "" {
		return ""
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

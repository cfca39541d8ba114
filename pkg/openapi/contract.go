package openapi

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	// OperationID identifies the submit operation in the embedded document.
	OperationID = "submitDebrief"
	// SchemaName is the component describing the bundle.
	SchemaName = "Debrief"

	orderExtensionKey = "x-debrief-order"
)

//go:embed debrief.openapi.yaml
var embedded []byte

// Raw returns a copy of the embedded contract.
func Raw() []byte {
	return append([]byte(nil), embedded...)
}

// Operation is the subset of operation metadata the form needs.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
}

// Contract is a parsed and validated debrief document.
type Contract struct {
	title     string
	version   string
	operation Operation
	fields    []FieldSchema
	index     map[string]int
}

type loadConfig struct {
	data     []byte
	validate bool
}

// Option customises Load.
type Option func(*loadConfig)

// WithData loads the given document instead of the embedded one.
func WithData(raw []byte) Option {
	return func(cfg *loadConfig) {
		if len(raw) > 0 {
			cfg.data = append([]byte(nil), raw...)
		}
	}
}

// WithValidation toggles kin-openapi document validation. Enabled by default.
func WithValidation(enabled bool) Option {
	return func(cfg *loadConfig) {
		cfg.validate = enabled
	}
}

// Load parses the contract and extracts the submit operation and the
// ordered field facts of its request body.
func Load(ctx context.Context, options ...Option) (*Contract, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := loadConfig{data: embedded, validate: true}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if len(cfg.data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(cfg.data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if cfg.validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	op, body, err := findOperation(doc, OperationID)
	if err != nil {
		return nil, err
	}
	if body == nil || body.Value == nil {
		return nil, fmt.Errorf("openapi: operation %q has no request schema", OperationID)
	}

	fields, err := extractFields(body.Value)
	if err != nil {
		return nil, err
	}

	c := &Contract{
		operation: op,
		fields:    fields,
		index:     make(map[string]int, len(fields)),
	}
	if doc.Info != nil {
		c.title = doc.Info.Title
		c.version = doc.Info.Version
	}
	for i, field := range fields {
		c.index[field.Name] = i
	}
	return c, nil
}

// MustLoad loads the embedded contract and panics on failure. The embedded
// document is covered by tests, so a failure here is a build defect.
func MustLoad() *Contract {
	c, err := Load(context.Background())
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Contract) Title() string        { return c.title }
func (c *Contract) Version() string      { return c.version }
func (c *Contract) Operation() Operation { return c.operation }

// Fields returns the request body fields in form order.
func (c *Contract) Fields() []FieldSchema {
	out := make([]FieldSchema, len(c.fields))
	for i, field := range c.fields {
		out[i] = field.clone()
	}
	return out
}

// Field looks up one field by wire name.
func (c *Contract) Field(name string) (FieldSchema, bool) {
	idx, ok := c.index[name]
	if !ok {
		return FieldSchema{}, false
	}
	return c.fields[idx].clone(), true
}

func findOperation(doc *openapi3.T, id string) (Operation, *openapi3.SchemaRef, error) {
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return Operation{}, nil, errors.New("openapi: document does not contain any paths")
	}
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			if operation == nil || operation.OperationID != id {
				continue
			}
			op := Operation{
				ID:          operation.OperationID,
				Method:      strings.ToUpper(method),
				Path:        path,
				Summary:     operation.Summary,
				Description: operation.Description,
			}
			return op, requestSchema(operation.RequestBody), nil
		}
	}
	return Operation{}, nil, fmt.Errorf("openapi: operation %q not found", id)
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.SchemaRef {
	if body == nil || body.Value == nil {
		return nil
	}
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded"} {
		if mt := body.Value.Content.Get(mediaType); mt != nil && mt.Schema != nil {
			return mt.Schema
		}
	}
	return nil
}

func extractFields(schema *openapi3.Schema) ([]FieldSchema, error) {
	if len(schema.Properties) == 0 {
		return nil, errors.New("openapi: request schema has no properties")
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	fields := make([]FieldSchema, 0, len(schema.Properties))
	for _, name := range propertyOrder(schema) {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			return nil, fmt.Errorf("openapi: property %q is unresolved", name)
		}
		fields = append(fields, convertProperty(name, ref.Value, required[name]))
	}
	return fields, nil
}

// propertyOrder follows the order extension and appends unlisted properties
// alphabetically.
func propertyOrder(schema *openapi3.Schema) []string {
	seen := make(map[string]bool, len(schema.Properties))
	var order []string
	if raw, ok := schema.Extensions[orderExtensionKey].([]any); ok {
		for _, item := range raw {
			name, ok := item.(string)
			if !ok || seen[name] {
				continue
			}
			if _, exists := schema.Properties[name]; !exists {
				continue
			}
			seen[name] = true
			order = append(order, name)
		}
	}

	var rest []string
	for name := range schema.Properties {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func convertProperty(name string, src *openapi3.Schema, required bool) FieldSchema {
	field := FieldSchema{
		Name:        name,
		Type:        firstSchemaType(src.Type),
		Description: src.Description,
		Pattern:     src.Pattern,
		Required:    required,
		Default:     src.Default,
	}
	for _, value := range src.Enum {
		if s, ok := value.(string); ok {
			field.Enum = append(field.Enum, s)
		}
	}
	if src.MinLength != 0 {
		field.MinLength = int(src.MinLength)
	}
	return field
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-debrief/pkg/debrief"
	"github.com/goliatone/go-debrief/pkg/model"
	"github.com/goliatone/go-debrief/pkg/openapi"
	"github.com/goliatone/go-debrief/pkg/render"
	"github.com/goliatone/go-debrief/pkg/render/template/gotemplate"
	"github.com/goliatone/go-debrief/pkg/renderers/vanilla"
	"github.com/goliatone/go-debrief/pkg/uischema"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithContract injects a pre-loaded contract instead of the embedded one.
func WithContract(contract *openapi.Contract) Option {
	return func(o *Orchestrator) {
		o.contract = contract
	}
}

// WithCopy injects a parsed copy document.
func WithCopy(doc *uischema.Document) Option {
	return func(o *Orchestrator) {
		o.copyDoc = doc
	}
}

// WithCopyFile loads copy from a JSON or YAML file on disk. An empty path
// keeps the embedded copy.
func WithCopyFile(path string) Option {
	return func(o *Orchestrator) {
		o.copyPath = strings.TrimSpace(path)
	}
}

// WithEngine overrides the template engine used to resolve copy placeholders.
func WithEngine(engine uischema.Interpolator) Option {
	return func(o *Orchestrator) {
		o.engine = engine
	}
}

// WithEndpoint overrides the form action taken from the contract.
func WithEndpoint(endpoint string) Option {
	return func(o *Orchestrator) {
		o.endpoint = strings.TrimSpace(endpoint)
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator builds the debrief form for a candidate context and hands it to
// a renderer. Defaults are the embedded contract, the embedded copy, a pongo2
// engine and a registry holding the vanilla renderer.
type Orchestrator struct {
	contract        *openapi.Contract
	copyDoc         *uischema.Document
	copyPath        string
	engine          uischema.Interpolator
	endpoint        string
	builder         *model.Builder
	registry        *render.Registry
	defaultRenderer string
	logger          *zap.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Loading
// failures are reported by Err and by every later call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render.
type Request struct {
	// Context fills the copy placeholders.
	Context uischema.Context

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request values, errors, hidden fields and the
	// submitted bundle.
	RenderOptions render.RenderOptions
}

// Err reports a failure to load the defaults.
func (o *Orchestrator) Err() error {
	return o.initialiseErr
}

// Contract returns the loaded contract.
func (o *Orchestrator) Contract() *openapi.Contract {
	return o.contract
}

// Form builds the form model for uctx.
func (o *Orchestrator) Form(uctx uischema.Context) (model.FormModel, error) {
	if err := o.initialiseErr; err != nil {
		return model.FormModel{}, err
	}
	form, err := o.builder.Build(o.contract, o.copyDoc, uctx)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: build form model: %w", err)
	}
	return form, nil
}

// Generate builds the form for req.Context and renders it.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	form, err := o.Form(req.Context)
	if err != nil {
		return nil, err
	}
	return o.Render(ctx, form, req.Renderer, req.RenderOptions)
}

// Render hands an already built form to the named renderer.
func (o *Orchestrator) Render(ctx context.Context, form model.FormModel, name string, options render.RenderOptions) ([]byte, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	renderer, err := o.rendererFor(name)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, form, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	o.logger.Debug("debrief form rendered",
		zap.String("renderer", renderer.Name()),
		zap.Int("errors", len(options.Errors)),
		zap.Bool("submitted", options.Submitted != nil),
	)
	return output, nil
}

// ContentType reports the content type of the named renderer.
func (o *Orchestrator) ContentType(name string) (string, error) {
	renderer, err := o.rendererFor(name)
	if err != nil {
		return "", err
	}
	return renderer.ContentType(), nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.contract == nil {
		contract, err := openapi.Load(context.Background())
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load contract: %w", err)
			return
		}
		o.contract = contract
	}

	if o.copyDoc == nil {
		doc, err := o.loadCopy()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load copy: %w", err)
			return
		}
		o.copyDoc = doc
	}
	if err := o.copyDoc.Require(fieldNames()...); err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: %w", err)
		return
	}

	if o.engine == nil {
		engine, err := gotemplate.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: template engine: %w", err)
			return
		}
		o.engine = engine
	}

	var builderOptions []model.BuilderOption
	if o.endpoint != "" {
		builderOptions = append(builderOptions, model.WithEndpoint(o.endpoint))
	}
	o.builder = model.NewBuilder(o.engine, builderOptions...)

	if o.registry == nil {
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		registry, err := render.NewRegistry(renderer)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default registry: %w", err)
			return
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

func (o *Orchestrator) loadCopy() (*uischema.Document, error) {
	if o.copyPath == "" {
		return uischema.Default()
	}
	return uischema.LoadFS(os.DirFS(filepath.Dir(o.copyPath)), filepath.Base(o.copyPath))
}

func fieldNames() []string {
	fields := debrief.Fields()
	names := make([]string, 0, len(fields))
	for _, name := range fields {
		names = append(names, string(name))
	}
	return names
}

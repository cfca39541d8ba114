// Package debrief is the top level entry point: it re-exports the pieces most
// callers need to render the interview debrief form and validate its bundle.
package debrief

import (
	"context"

	core "github.com/goliatone/go-debrief/pkg/debrief"
	"github.com/goliatone/go-debrief/pkg/orchestrator"
	"github.com/goliatone/go-debrief/pkg/render"
	"github.com/goliatone/go-debrief/pkg/uischema"
)

// Feedback is the validated bundle.
type Feedback = core.Feedback

// Context fills the copy placeholders (candidate and interviewer names).
type Context = uischema.Context

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface validation errors.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewController returns a form controller seeded with the default rule table.
func NewController(options ...core.Option) *core.Controller {
	return core.New(options...)
}

// GenerateHTML builds the form for uctx and renders it with the named
// renderer. An empty name uses the HTML renderer.
func GenerateHTML(ctx context.Context, uctx Context, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Context:  uctx,
		Renderer: rendererName,
	})
}

// Validate checks a set of raw values against the default rules without
// calling any submitter.
func Validate(values map[string]any) (Feedback, error) {
	controller := core.New()
	if err := controller.SetValues(values); err != nil {
		return Feedback{}, err
	}
	feedback, errs := controller.Validate()
	if len(errs) > 0 {
		return Feedback{}, errs
	}
	return feedback, nil
}

package render

import (
	"github.com/goliatone/go-theme"

	"github.com/goliatone/go-debrief/pkg/debrief"
)

// RenderOptions carry per-request state into a renderer without touching the
// form model.
type RenderOptions struct {
	// Values pre-populates controls, keyed by field name.
	Values map[string]any
	// Errors holds inline messages keyed by field name. Each field renders its
	// own error slot.
	Errors map[string][]string
	// FormErrors are shown above the fields.
	FormErrors []string
	// Hidden inputs travel with the submission.
	Hidden map[string]string
	// Theme supplies design tokens and CSS variables.
	Theme *theme.RendererConfig
	// Submitted switches renderers to the confirmation view for an accepted
	// bundle.
	Submitted *debrief.Feedback
}

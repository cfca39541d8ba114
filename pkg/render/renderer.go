package render

import (
	"context"

	"github.com/goliatone/go-debrief/pkg/model"
)

// Renderer turns a form model into a representation for one output medium.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, options RenderOptions) ([]byte, error)
}

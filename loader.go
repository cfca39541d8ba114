package debrief

import (
	"context"

	"github.com/goliatone/go-debrief/pkg/openapi"
	"github.com/goliatone/go-debrief/pkg/uischema"
)

// LoadContract loads the embedded OpenAPI contract, or the one supplied via
// openapi.WithData.
func LoadContract(ctx context.Context, options ...openapi.Option) (*openapi.Contract, error) {
	return openapi.Load(ctx, options...)
}

// ParseCopy parses a YAML or JSON copy document. source names it in errors.
func ParseCopy(data []byte, source string) (*uischema.Document, error) {
	return uischema.Parse(data, source)
}

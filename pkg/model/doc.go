// Package model defines the renderer-facing form model. Builder joins the
// OpenAPI contract (types, enums, required flags, defaults) with resolved copy
// (labels, help, widgets) so renderers never consult either source directly.
package model

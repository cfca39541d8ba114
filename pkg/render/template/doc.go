// Package template defines the template engine seam used by the HTML renderer
// and by copy interpolation. The pongo2 implementation lives in gotemplate.
package template

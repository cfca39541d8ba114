// Package vanilla renders the debrief form as server side HTML with pongo2
// templates. Field errors are rendered next to their own control and only for
// fields that currently fail.
package vanilla

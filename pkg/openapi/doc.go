// Package openapi carries the machine readable contract of the debrief bundle.
// The document is embedded, parsed and validated with kin-openapi, then
// reduced to per-field facts that the form model and tests consume without
// touching kin-openapi types.
package openapi

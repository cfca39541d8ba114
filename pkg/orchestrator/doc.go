// Package orchestrator wires the contract → copy → form model → renderer
// pipeline behind one entry point shared by the HTTP server and the CLI.
package orchestrator

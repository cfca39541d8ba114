package uischema

import (
	"embed"
	"io/fs"
)

//go:embed copy/debrief.yaml
var embeddedCopy embed.FS

const defaultCopyPath = "copy/debrief.yaml"

// EmbeddedFS exposes the bundled copy document.
func EmbeddedFS() fs.FS {
	return embeddedCopy
}

// Default returns the bundled copy document.
func Default() (*Document, error) {
	return LoadFS(embeddedCopy, defaultCopyPath)
}

// MustDefault is Default for package initialisation and tests.
func MustDefault() *Document {
	doc, err := Default()
	if err != nil {
		panic(err)
	}
	return doc
}

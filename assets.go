package debrief

import (
	"io/fs"

	"github.com/goliatone/go-debrief/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in HTML templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// StaticAssetsFS exposes the stylesheet the HTML renderer links to.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(debrief.StaticAssetsFS()),
//	  ),
//	)
func StaticAssetsFS() fs.FS {
	return vanilla.AssetsFS()
}

// Package catalogs embeds the diagnostic catalogs of the xslt and xpath
// domains: an English base catalog plus de, es, fr, it, ja, ko, zh_CN and
// zh_TW variants for each.
package catalogs

import (
	"embed"
	"io/fs"

	"github.com/loopcontext/xsltmsg/yamlstore"
)

//go:embed data/*.yaml
var embeddedFS embed.FS

// FS exposes the raw catalog files.
func FS() fs.FS {
	return embeddedFS
}

// Store returns a catalog store over the embedded files.
func Store() *yamlstore.Store {
	return yamlstore.New(embeddedFS, "data")
}

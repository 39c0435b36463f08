package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/pethub/shared/layout"
)

var (
	//go:embed all:hub
	assetFS embed.FS
)

// FS exposes the embedded assets, e.g. for tools that want to read the map.
func FS() fs.FS {
	return assetFS
}

// LoadHub parses the anchor layout at path inside the embedded assets.
func LoadHub(path string) (*layout.Hub, error) {
	return layout.Load(assetFS, path)
}

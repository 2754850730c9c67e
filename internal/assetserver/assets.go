package assetserver

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed assets/*
var embeddedAssets embed.FS

// embeddedAssetsFS returns the file system rooted at the embedded assets directory.
func embeddedAssetsFS() (fs.FS, error) {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return nil, fmt.Errorf("assetserver: open embedded assets: %w", err)
	}
	return sub, nil
}

// indexPage returns the embedded landing page.
func indexPage() ([]byte, error) {
	assets, err := embeddedAssetsFS()
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(assets, "index.html")
	if err != nil {
		return nil, fmt.Errorf("assetserver: read index: %w", err)
	}
	return data, nil
}

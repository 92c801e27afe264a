package platform

import (
	"errors"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
)

// DefaultAssetsDir is the base directory asset paths are resolved against
// when nothing else is configured
const DefaultAssetsDir = "."

// ErrAssetOutsideBase is returned for asset paths that leave the base directory
var ErrAssetOutsideBase = errors.New("asset path escapes the assets directory")

// AssetResolver maps slash-separated asset paths such as "Assets/10.jpg" to
// files under a base directory
type AssetResolver struct {
	baseDir string
}

// NewAssetResolver creates a resolver rooted at baseDir ("" means DefaultAssetsDir)
func NewAssetResolver(baseDir string) *AssetResolver {
	if baseDir == "" {
		baseDir = DefaultAssetsDir
	}
	return &AssetResolver{baseDir: baseDir}
}

// BaseDir returns the directory asset paths are resolved against
func (r *AssetResolver) BaseDir() string {
	return r.baseDir
}

// Resolve returns the file path for asset
func (r *AssetResolver) Resolve(asset string) (string, error) {
	if asset == "" {
		return "", errors.New("empty asset path")
	}
	rel := filepath.FromSlash(asset)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %s", ErrAssetOutsideBase, asset)
	}
	return filepath.Join(r.baseDir, rel), nil
}

// Load reads asset into a Fyne resource. It matches model.ImageLoader.
func (r *AssetResolver) Load(asset string) (fyne.Resource, error) {
	path, err := r.Resolve(asset)
	if err != nil {
		return nil, err
	}
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load asset %s: %w", asset, err)
	}
	return res, nil
}

// Open opens asset with the default system application
func (r *AssetResolver) Open(asset string) error {
	path, err := r.Resolve(asset)
	if err != nil {
		return err
	}
	return OpenFileWithDefaultApp(path)
}

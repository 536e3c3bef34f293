package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/meur/maiprofile/internal/models"
)

// ScanDir lists <kind>/*.png for every asset group in fsys. URLs are the
// asset paths joined under urlPrefix. Groups without a directory are empty.
func ScanDir(fsys fs.FS, urlPrefix string) (models.Manifest, error) {
	manifest := make(models.Manifest, len(models.Kinds()))
	for _, kind := range models.Kinds() {
		matches, err := fs.Glob(fsys, string(kind)+"/*.png")
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s assets: %w", kind, err)
		}

		entries := make([]models.ManifestEntry, 0, len(matches))
		for _, p := range matches {
			entries = append(entries, models.ManifestEntry{
				Path: p,
				URL:  path.Join(urlPrefix, p),
			})
		}
		manifest[kind] = entries
	}
	return manifest, nil
}

// LoadManifest decodes a manifest written by WriteManifest
func LoadManifest(r io.Reader) (models.Manifest, error) {
	var manifest models.Manifest
	if err := json.NewDecoder(r).Decode(&manifest); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	for kind := range manifest {
		if !kind.Valid() {
			return nil, fmt.Errorf("unknown asset kind %q in manifest", kind)
		}
	}
	return manifest, nil
}

// WriteManifest encodes manifest as indented JSON
func WriteManifest(w io.Writer, manifest models.Manifest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(manifest)
}

package catalog

import (
	"fmt"

	"github.com/meur/maiprofile/internal/models"
)

// Registry holds the catalogs built at startup
type Registry struct {
	assets map[models.Kind]*Catalog
	titles *TitleCatalog
}

// optionsFor returns the id rule of each asset group
func optionsFor(kind models.Kind) Options {
	switch kind {
	case models.KindFanBattleClass, models.KindDans:
		return Options{Extractor: TwoDigitID, Compare: ByNumericID}
	default:
		return Options{Extractor: SixDigitID}
	}
}

// Build constructs every asset catalog from manifest and the title catalog
// from titles. Any asset without an id aborts the build.
func Build(manifest models.Manifest, titles []models.TitleEntry) (*Registry, error) {
	r := &Registry{
		assets: make(map[models.Kind]*Catalog, len(models.Kinds())),
		titles: NewTitleCatalog(titles),
	}
	for _, kind := range models.Kinds() {
		c, err := New(manifest[kind], optionsFor(kind))
		if err != nil {
			return nil, fmt.Errorf("failed to build %s catalog: %w", kind, err)
		}
		r.assets[kind] = c
	}
	return r, nil
}

// Catalog returns the catalog of an asset group
func (r *Registry) Catalog(kind models.Kind) (*Catalog, bool) {
	c, ok := r.assets[kind]
	return c, ok
}

// Titles returns the title catalog
func (r *Registry) Titles() *TitleCatalog {
	return r.titles
}

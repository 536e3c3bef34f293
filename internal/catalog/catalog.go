package catalog

import (
	"errors"
	"fmt"
	"path"
	"slices"

	"github.com/meur/maiprofile/internal/models"
)

// ErrNoID is returned when an asset filename does not yield an id
var ErrNoID = errors.New("no id in filename")

// Extractor derives an asset id from a filename. An empty result means no id.
type Extractor func(filename string) string

// CompareFunc orders two items the way slices.SortFunc expects
type CompareFunc func(a, b models.AssetItem) int

// Options configures catalog construction
type Options struct {
	Extractor Extractor
	Compare   CompareFunc // defaults to ByID
}

// Catalog is an immutable, sorted and indexed set of assets
type Catalog struct {
	items []models.AssetItem
	keys  []searchKey // parallel to items
	index map[string]models.AssetItem
}

// New builds a catalog from manifest entries. It fails on the first
// entry whose filename yields no id.
func New(entries []models.ManifestEntry, opts Options) (*Catalog, error) {
	if opts.Extractor == nil {
		return nil, errors.New("catalog: extractor is required")
	}
	compare := opts.Compare
	if compare == nil {
		compare = ByID
	}

	items := make([]models.AssetItem, 0, len(entries))
	for _, e := range entries {
		filename := path.Base(e.Path)
		id := opts.Extractor(filename)
		if id == "" {
			return nil, fmt.Errorf("%w: %q", ErrNoID, filename)
		}
		items = append(items, models.AssetItem{ID: id, Filename: filename, URL: e.URL})
	}
	slices.SortStableFunc(items, compare)

	// Duplicate ids stay in items; the index keeps the last one in order.
	index := make(map[string]models.AssetItem, len(items))
	keys := make([]searchKey, len(items))
	for i, item := range items {
		index[item.ID] = item
		keys[i] = newSearchKey(item.ID, item.Filename)
	}

	return &Catalog{items: items, keys: keys, index: index}, nil
}

// Items returns the ordered items
func (c *Catalog) Items() []models.AssetItem {
	return slices.Clone(c.items)
}

// Size returns the number of items, duplicates included
func (c *Catalog) Size() int {
	return len(c.items)
}

// ByID looks up an item by id
func (c *Catalog) ByID(id string) (models.AssetItem, bool) {
	item, ok := c.index[id]
	return item, ok
}

// Search returns every item whose id or filename contains term. Matching
// ignores surrounding spaces, case and full-width/half-width differences.
// An empty term matches everything.
func (c *Catalog) Search(term string) []models.AssetItem {
	normalized := normalize(term)
	if normalized == "" {
		return c.Items()
	}

	result := make([]models.AssetItem, 0)
	for i, key := range c.keys {
		if key.matches(normalized) {
			result = append(result, c.items[i])
		}
	}
	return result
}

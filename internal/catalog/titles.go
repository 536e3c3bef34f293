package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/meur/maiprofile/internal/models"
)

// MakeTitleKey returns the composite key name::rareType
func MakeTitleKey(entry models.TitleEntry) string {
	return entry.Name + "::" + entry.RareType
}

// TitleCatalog indexes the static title list by composite key
type TitleCatalog struct {
	entries []models.TitleEntry
	keys    []searchKey
	index   map[string]models.TitleEntry
}

// NewTitleCatalog indexes entries. Entries sharing a key collapse to the
// last one in the list.
func NewTitleCatalog(entries []models.TitleEntry) *TitleCatalog {
	index := make(map[string]models.TitleEntry, len(entries))
	keys := make([]searchKey, len(entries))
	for i, entry := range entries {
		index[MakeTitleKey(entry)] = entry
		keys[i] = newSearchKey(entry.Name, entry.RareType)
	}
	return &TitleCatalog{entries: slices.Clone(entries), keys: keys, index: index}
}

// LoadTitles decodes a JSON array of titles
func LoadTitles(r io.Reader) ([]models.TitleEntry, error) {
	var entries []models.TitleEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode titles: %w", err)
	}
	return entries, nil
}

// Entries returns all titles in source order
func (c *TitleCatalog) Entries() []models.TitleEntry {
	return slices.Clone(c.entries)
}

// Size returns the number of titles
func (c *TitleCatalog) Size() int {
	return len(c.entries)
}

// UniqueKeys returns the number of distinct composite keys
func (c *TitleCatalog) UniqueKeys() int {
	return len(c.index)
}

// FindByKey looks up a title by its composite key
func (c *TitleCatalog) FindByKey(key string) (models.TitleEntry, bool) {
	entry, ok := c.index[key]
	return entry, ok
}

// Search returns titles whose name or rare type contains term, ignoring
// surrounding spaces, case and full-width/half-width differences
func (c *TitleCatalog) Search(term string) []models.TitleEntry {
	normalized := normalize(term)
	if normalized == "" {
		return c.Entries()
	}

	result := make([]models.TitleEntry, 0)
	for i, key := range c.keys {
		if key.matches(normalized) {
			result = append(result, c.entries[i])
		}
	}
	return result
}

// Package profile persists the editor selection and favorites of a user in
// a key-value store. Reads never fail: missing or corrupt data yields the
// documented default.
package profile

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/meur/maiprofile/internal/models"
	"github.com/meur/maiprofile/internal/storage"
)

const (
	SelectionKey = "maiprofile.selection"
	FavoritesKey = "maiprofile.favorites"
)

// Persistence reads and writes the selection and favorites records
type Persistence struct {
	kv         storage.KV
	logger     *zap.Logger
	diagnostic func(key string, err error)
}

// Option configures a Persistence
type Option func(*Persistence)

// WithLogger reports swallowed read errors to logger
func WithLogger(logger *zap.Logger) Option {
	return func(p *Persistence) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithDiagnostic calls fn for every swallowed read error
func WithDiagnostic(fn func(key string, err error)) Option {
	return func(p *Persistence) {
		p.diagnostic = fn
	}
}

// New returns a Persistence over kv. A nil kv behaves like
// storage.Unavailable.
func New(kv storage.KV, opts ...Option) *Persistence {
	p := &Persistence{kv: kv, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LoadSelection returns the stored selection, or nil when there is none
// or it cannot be read.
func (p *Persistence) LoadSelection() *models.SelectionState {
	var state models.SelectionState
	if !p.load(SelectionKey, &state) {
		return nil
	}
	return &state
}

// SaveSelection overwrites the stored selection
func (p *Persistence) SaveSelection(state models.SelectionState) error {
	return p.save(SelectionKey, state)
}

// LoadFavorites returns the stored favorites, or an empty record when
// there are none or they cannot be read.
func (p *Persistence) LoadFavorites() models.FavoritesState {
	var state models.FavoritesState
	if !p.load(FavoritesKey, &state) {
		return models.DefaultFavorites()
	}
	state.Normalize()
	return state
}

// SaveFavorites overwrites the stored favorites
func (p *Persistence) SaveFavorites(state models.FavoritesState) error {
	state.Normalize()
	return p.save(FavoritesKey, state)
}

// load decodes the value under key into v and reports whether it did
func (p *Persistence) load(key string, v any) bool {
	if !storage.Available(p.kv) {
		return false
	}

	raw, ok, err := p.kv.Get(key)
	if err != nil {
		p.report(key, fmt.Errorf("read: %w", err))
		return false
	}
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" || raw == "null" {
		return false
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		p.report(key, fmt.Errorf("parse: %w", err))
		return false
	}
	return true
}

func (p *Persistence) save(key string, v any) error {
	if !storage.Available(p.kv) {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := p.kv.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (p *Persistence) report(key string, err error) {
	p.logger.Warn("discarding stored value", zap.String("key", key), zap.Error(err))
	if p.diagnostic != nil {
		p.diagnostic(key, err)
	}
}

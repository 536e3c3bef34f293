package storage

import (
	"errors"
	"fmt"
	"strings"
)

const (
	EngineSQLite3 = "sqlite3"
	EngineSQLite  = "sqlite"
	EngineMemory  = "memory"
)

// ErrUnknownEngine is returned by NewByEngine for unsupported engines
var ErrUnknownEngine = errors.New("unsupported store engine")

// NewByEngine opens the backend named by engine. path is ignored by the
// memory engine.
func NewByEngine(engine string, path string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineSQLite3:
		return New(EngineSQLite3, path)
	case EngineSQLite:
		return New(EngineSQLite, path)
	case EngineMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, engine)
	}
}

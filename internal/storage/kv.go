package storage

import "time"

// KV is a string key-value store, the server-side stand-in for browser
// local storage.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Backend persists values per scope. A scope plays the part of a browser
// origin: keys in different scopes never collide.
type Backend interface {
	Get(scope, key string) (string, bool, error)
	Set(scope, key, value string) error
	Delete(scope, key string) error

	CreateProfile(id string, createdAt time.Time) error
	ProfileExists(id string) (bool, error)

	Close() error
}

// Scoped returns a KV view of one scope of b
func Scoped(b Backend, scope string) KV {
	return scopedKV{backend: b, scope: scope}
}

type scopedKV struct {
	backend Backend
	scope   string
}

func (s scopedKV) Get(key string) (string, bool, error) {
	return s.backend.Get(s.scope, key)
}

func (s scopedKV) Set(key, value string) error {
	return s.backend.Set(s.scope, key, value)
}

// Unavailable is a KV for contexts without storage. Reads find nothing and
// writes are dropped.
var Unavailable KV = unavailableKV{}

type unavailableKV struct{}

func (unavailableKV) Get(string) (string, bool, error) { return "", false, nil }
func (unavailableKV) Set(string, string) error         { return nil }
func (unavailableKV) Available() bool                  { return false }

// Available reports whether kv can hold data. A nil KV, or one whose
// Available method returns false, cannot.
func Available(kv KV) bool {
	if kv == nil {
		return false
	}
	if a, ok := kv.(interface{ Available() bool }); ok {
		return a.Available()
	}
	return true
}

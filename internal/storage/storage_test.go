package storage_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meur/maiprofile/internal/storage"
)

func openBackends(t *testing.T) map[string]storage.Backend {
	t.Helper()

	sqlite, err := storage.NewByEngine(storage.EngineSQLite, filepath.Join(t.TempDir(), "maiprofile.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlite.Close()
	})

	memory, err := storage.NewByEngine(storage.EngineMemory, "")
	require.NoError(t, err)

	return map[string]storage.Backend{
		"sqlite": sqlite,
		"memory": memory,
	}
}

func TestBackendValues(t *testing.T) {
	t.Parallel()

	for name, backend := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := backend.Get("p1", "maiprofile.selection")
			require.NoError(t, err)
			require.False(t, ok)

			require.NoError(t, backend.Set("p1", "maiprofile.selection", `{"username":"x"}`))
			require.NoError(t, backend.Set("p2", "maiprofile.selection", `{"username":"y"}`))

			value, ok, err := backend.Get("p1", "maiprofile.selection")
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, `{"username":"x"}`, value)

			require.NoError(t, backend.Set("p1", "maiprofile.selection", `{}`))
			value, _, err = backend.Get("p1", "maiprofile.selection")
			require.NoError(t, err)
			require.Equal(t, `{}`, value)

			value, _, err = backend.Get("p2", "maiprofile.selection")
			require.NoError(t, err)
			require.Equal(t, `{"username":"y"}`, value)

			require.NoError(t, backend.Delete("p1", "maiprofile.selection"))
			_, ok, err = backend.Get("p1", "maiprofile.selection")
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestBackendProfiles(t *testing.T) {
	t.Parallel()

	for name, backend := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			ok, err := backend.ProfileExists("p1")
			require.NoError(t, err)
			require.False(t, ok)

			require.NoError(t, backend.CreateProfile("p1", time.Now().UTC()))
			ok, err = backend.ProfileExists("p1")
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}

func TestScoped(t *testing.T) {
	t.Parallel()

	backend := storage.NewMemoryStore()
	kv := storage.Scoped(backend, "p1")
	require.True(t, storage.Available(kv))

	require.NoError(t, kv.Set("k", "v"))
	value, ok, err := backend.Get("p1", "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", value)

	_, ok, err = storage.Scoped(backend, "p2").Get("k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUnavailable(t *testing.T) {
	t.Parallel()

	require.False(t, storage.Available(nil))
	require.False(t, storage.Available(storage.Unavailable))

	require.NoError(t, storage.Unavailable.Set("k", "v"))
	_, ok, err := storage.Unavailable.Get("k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNewByEngineUnknown(t *testing.T) {
	t.Parallel()

	_, err := storage.NewByEngine("postgres", "")
	require.True(t, errors.Is(err, storage.ErrUnknownEngine))
}

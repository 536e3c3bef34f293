package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFavoritesToggle(t *testing.T) {
	t.Parallel()

	f := DefaultFavorites()
	require.True(t, f.Toggle(FavoriteFrames, "000101"))
	require.True(t, f.Toggle(FavoriteFrames, "000002"))
	require.Equal(t, []string{"000101", "000002"}, f.Frames)

	require.False(t, f.Toggle(FavoriteFrames, "000101"))
	require.Equal(t, []string{"000002"}, f.Frames)

	require.True(t, f.Toggle(FavoriteTitles, "A::gold"))
	require.Equal(t, []string{"A::gold"}, f.Titles)

	require.False(t, f.Toggle(FavoriteCategory("dans"), "01"))
}

func TestFavoritesContains(t *testing.T) {
	t.Parallel()

	f := FavoritesState{Icons: []string{"000201"}}
	require.True(t, f.Contains(FavoriteIcons, "000201"))
	require.False(t, f.Contains(FavoriteFrames, "000201"))
	require.False(t, f.Contains(FavoriteCategory("dans"), "000201"))
}

func TestFavoritesNormalize(t *testing.T) {
	t.Parallel()

	f := FavoritesState{Icons: []string{"1"}}
	f.Normalize()
	require.Equal(t, FavoritesState{
		Frames:     []string{},
		Nameplates: []string{},
		Icons:      []string{"1"},
		Titles:     []string{},
	}, f)
}

func TestKindValid(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds() {
		require.True(t, kind.Valid())
	}
	require.False(t, Kind("avatar").Valid())
	require.True(t, FavoriteIcons.Valid())
	require.False(t, FavoriteCategory("dans").Valid())
}

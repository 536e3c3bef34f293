package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", normalize("   "))
	require.Equal(t, "ui_frame_000101.png", normalize(" UI_Frame_000101.png "))
	require.Equal(t, "abc123", normalize("ＡＢＣ１２３"))
}

func TestSearchKeyMatches(t *testing.T) {
	t.Parallel()

	key := newSearchKey("000101", "ＵＩ_Frame_000101.png")
	require.Equal(t, searchKey{"000101", "ui_frame_000101.png"}, key)
	require.True(t, key.matches("0101"))
	require.True(t, key.matches(normalize("UI_FRAME")))
	require.False(t, key.matches("plate"))
}

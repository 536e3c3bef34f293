package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meur/maiprofile/internal/models"
)

const titlesJSON = `[
  {"name": "A", "rareType": "gold"},
  {"name": "でらっくす", "rareType": "Rainbow"},
  {"name": "Beginner", "rareType": "Normal"},
  {"name": "A", "rareType": "gold"}
]`

func TestMakeTitleKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "A::gold", MakeTitleKey(models.TitleEntry{Name: "A", RareType: "gold"}))
	require.Equal(t, "A::", MakeTitleKey(models.TitleEntry{Name: "A"}))
}

func TestTitleCatalogFindByKey(t *testing.T) {
	t.Parallel()

	entries, err := LoadTitles(strings.NewReader(titlesJSON))
	require.NoError(t, err)

	c := NewTitleCatalog(entries)
	require.Equal(t, 4, c.Size())
	require.Equal(t, 3, c.UniqueKeys())

	entry, ok := c.FindByKey("A::gold")
	require.True(t, ok)
	require.Equal(t, models.TitleEntry{Name: "A", RareType: "gold"}, entry)

	_, ok = c.FindByKey("A::silver")
	require.False(t, ok)
	_, ok = c.FindByKey("unknown")
	require.False(t, ok)
}

func TestTitleCatalogSearch(t *testing.T) {
	t.Parallel()

	entries, err := LoadTitles(strings.NewReader(titlesJSON))
	require.NoError(t, err)
	c := NewTitleCatalog(entries)

	require.Equal(t, c.Entries(), c.Search(""))
	require.Equal(t, []models.TitleEntry{{Name: "でらっくす", RareType: "Rainbow"}}, c.Search("rainbow"))
	require.Equal(t, []models.TitleEntry{{Name: "でらっくす", RareType: "Rainbow"}}, c.Search("らっく"))
	require.Equal(t, []models.TitleEntry{{Name: "Beginner", RareType: "Normal"}}, c.Search(" BEGIN "))
	require.Len(t, c.Search("gold"), 2)
	require.Len(t, c.Search("ＧＯＬＤ"), 2)
	require.Empty(t, c.Search("silver"))
}

func TestLoadTitlesInvalid(t *testing.T) {
	t.Parallel()

	_, err := LoadTitles(strings.NewReader("{not json"))
	require.Error(t, err)
}

package catalog

import (
	"bytes"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/meur/maiprofile/internal/models"
)

func assetFS() fstest.MapFS {
	return fstest.MapFS{
		"frame/UI_Frame_000101.png":              {},
		"frame/UI_Frame_000002.png":              {},
		"frame/readme.txt":                       {},
		"nameplate/UI_PlateIcon_000011.png":      {},
		"icon/UI_Icon_000201.png":                {},
		"fan_battle_class/UI_CMN_Class_S_10.png": {},
		"fan_battle_class/UI_CMN_Class_S_09.png": {},
		"dans/UI_DNM_DaniPlate_11.png":           {},
		"dans/UI_DNM_DaniPlate_02.png":           {},
	}
}

func TestScanDir(t *testing.T) {
	t.Parallel()

	manifest, err := ScanDir(assetFS(), "/assets")
	require.NoError(t, err)
	require.Len(t, manifest, len(models.Kinds()))

	require.Equal(t, []models.ManifestEntry{
		{Path: "frame/UI_Frame_000002.png", URL: "/assets/frame/UI_Frame_000002.png"},
		{Path: "frame/UI_Frame_000101.png", URL: "/assets/frame/UI_Frame_000101.png"},
	}, manifest[models.KindFrame])
	require.Len(t, manifest[models.KindDans], 2)
}

func TestScanDirMissingGroup(t *testing.T) {
	t.Parallel()

	manifest, err := ScanDir(fstest.MapFS{"frame/UI_Frame_000101.png": {}}, "/static")
	require.NoError(t, err)
	require.Empty(t, manifest[models.KindIcon])
	require.Equal(t, "/static/frame/UI_Frame_000101.png", manifest[models.KindFrame][0].URL)
}

func TestManifestRoundTrip(t *testing.T) {
	t.Parallel()

	manifest, err := ScanDir(assetFS(), "/assets")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteManifest(&buf, manifest))

	loaded, err := LoadManifest(&buf)
	require.NoError(t, err)
	require.Equal(t, manifest, loaded)
}

func TestLoadManifestRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := LoadManifest(bytes.NewBufferString(`{"avatar": []}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "avatar")
}

func TestBuild(t *testing.T) {
	t.Parallel()

	manifest, err := ScanDir(assetFS(), "/assets")
	require.NoError(t, err)

	reg, err := Build(manifest, []models.TitleEntry{{Name: "A", RareType: "gold"}})
	require.NoError(t, err)

	frames, ok := reg.Catalog(models.KindFrame)
	require.True(t, ok)
	require.Equal(t, []string{"000002", "000101"}, ids(frames.Items()))

	classes, ok := reg.Catalog(models.KindFanBattleClass)
	require.True(t, ok)
	require.Equal(t, []string{"09", "10"}, ids(classes.Items()))

	dans, ok := reg.Catalog(models.KindDans)
	require.True(t, ok)
	require.Equal(t, []string{"02", "11"}, ids(dans.Items()))

	_, ok = reg.Catalog(models.Kind("avatar"))
	require.False(t, ok)

	_, ok = reg.Titles().FindByKey("A::gold")
	require.True(t, ok)
}

func TestBuildFailsOnBadFilename(t *testing.T) {
	t.Parallel()

	fsys := assetFS()
	fsys["icon/UI_Icon_broken.png"] = &fstest.MapFile{}
	manifest, err := ScanDir(fsys, "/assets")
	require.NoError(t, err)

	reg, err := Build(manifest, nil)
	require.Nil(t, reg)
	require.True(t, errors.Is(err, ErrNoID))
	require.Contains(t, err.Error(), "icon")
}

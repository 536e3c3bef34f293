package models

// Kind identifies one of the static asset groups
type Kind string

const (
	KindFrame          Kind = "frame"
	KindNameplate      Kind = "nameplate"
	KindIcon           Kind = "icon"
	KindFanBattleClass Kind = "fan_battle_class"
	KindDans           Kind = "dans"
)

// Kinds returns all asset groups in display order
func Kinds() []Kind {
	return []Kind{KindFrame, KindNameplate, KindIcon, KindFanBattleClass, KindDans}
}

// Valid reports whether k is a known asset group
func (k Kind) Valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// AssetItem is a single indexed asset file
type AssetItem struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// ManifestEntry pairs an asset path with the URL it is served from
type ManifestEntry struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// Manifest lists the entries of every asset group
type Manifest map[Kind][]ManifestEntry

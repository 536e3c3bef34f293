package models

import "slices"

// SelectionState is the sparse set of choices a user made in the editor
type SelectionState struct {
	FrameID          string `json:"frameId,omitempty"`
	NameplateID      string `json:"nameplateId,omitempty"`
	IconID           string `json:"iconId,omitempty"`
	FanBattleClassID string `json:"fanBattleClassId,omitempty"`
	DansID           string `json:"dansId,omitempty"`
	TitleKey         string `json:"titleKey,omitempty"`
	Rating           string `json:"rating,omitempty"`
	Username         string `json:"username,omitempty"`
}

// FavoriteCategory names one of the favorites sequences
type FavoriteCategory string

const (
	FavoriteFrames     FavoriteCategory = "frames"
	FavoriteNameplates FavoriteCategory = "nameplates"
	FavoriteIcons      FavoriteCategory = "icons"
	FavoriteTitles     FavoriteCategory = "titles"
)

// FavoritesState holds the ids a user marked as favorite, per category
type FavoritesState struct {
	Frames     []string `json:"frames"`
	Nameplates []string `json:"nameplates"`
	Icons      []string `json:"icons"`
	Titles     []string `json:"titles"`
}

// DefaultFavorites returns a fresh, all-empty favorites record
func DefaultFavorites() FavoritesState {
	return FavoritesState{
		Frames:     []string{},
		Nameplates: []string{},
		Icons:      []string{},
		Titles:     []string{},
	}
}

// Normalize replaces missing sequences with empty ones
func (f *FavoritesState) Normalize() {
	for _, list := range []*[]string{&f.Frames, &f.Nameplates, &f.Icons, &f.Titles} {
		if *list == nil {
			*list = []string{}
		}
	}
}

func (f *FavoritesState) list(category FavoriteCategory) *[]string {
	switch category {
	case FavoriteFrames:
		return &f.Frames
	case FavoriteNameplates:
		return &f.Nameplates
	case FavoriteIcons:
		return &f.Icons
	case FavoriteTitles:
		return &f.Titles
	}
	return nil
}

// Contains reports whether id is a favorite of the category
func (f *FavoritesState) Contains(category FavoriteCategory, id string) bool {
	list := f.list(category)
	return list != nil && slices.Contains(*list, id)
}

// Toggle adds id to the category if absent, removes it otherwise.
// It returns true when id is a favorite after the call.
func (f *FavoritesState) Toggle(category FavoriteCategory, id string) bool {
	list := f.list(category)
	if list == nil {
		return false
	}
	if i := slices.Index(*list, id); i >= 0 {
		*list = slices.Delete(*list, i, i+1)
		return false
	}
	*list = append(*list, id)
	return true
}

// Valid reports whether c is a known favorites category
func (c FavoriteCategory) Valid() bool {
	switch c {
	case FavoriteFrames, FavoriteNameplates, FavoriteIcons, FavoriteTitles:
		return true
	}
	return false
}

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meur/maiprofile/internal/models"
	"github.com/meur/maiprofile/internal/profile"
	"github.com/meur/maiprofile/internal/storage"
)

// handleCreateProfile registers a new profile and returns its id
func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()
	if err := s.store.CreateProfile(id, time.Now().UTC()); err != nil {
		s.logger.Error("failed to create profile", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to create profile")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"profile_id": id})
}

// persistenceFor resolves the profile of the request, writing an error
// response when it cannot.
func (s *Server) persistenceFor(w http.ResponseWriter, r *http.Request) (*profile.Persistence, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid profile id")
		return nil, false
	}

	exists, err := s.store.ProfileExists(id.String())
	if err != nil {
		s.logger.Error("failed to fetch profile", zap.String("profile_id", id.String()), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return nil, false
	}
	if !exists {
		respondError(w, http.StatusNotFound, "Profile not found")
		return nil, false
	}

	logger := s.logger.With(zap.String("profile_id", id.String()))
	return profile.New(storage.Scoped(s.store, id.String()), profile.WithLogger(logger)), true
}

// handleGetSelection returns the stored selection, null when none
func (s *Server) handleGetSelection(w http.ResponseWriter, r *http.Request) {
	p, ok := s.persistenceFor(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"selection": p.LoadSelection()})
}

// handlePutSelection replaces the stored selection
func (s *Server) handlePutSelection(w http.ResponseWriter, r *http.Request) {
	p, ok := s.persistenceFor(w, r)
	if !ok {
		return
	}

	var selection models.SelectionState
	if err := decodeJSON(r, &selection); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validateSelection(selection); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := p.SaveSelection(selection); err != nil {
		s.logger.Error("failed to save selection", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to save selection")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"selection": selection})
}

// handleGetFavorites returns the stored favorites
func (s *Server) handleGetFavorites(w http.ResponseWriter, r *http.Request) {
	p, ok := s.persistenceFor(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"favorites": p.LoadFavorites()})
}

// handlePutFavorites replaces the stored favorites
func (s *Server) handlePutFavorites(w http.ResponseWriter, r *http.Request) {
	p, ok := s.persistenceFor(w, r)
	if !ok {
		return
	}

	var favorites models.FavoritesState
	if err := decodeJSON(r, &favorites); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	favorites.Normalize()

	// Ids already stored stay accepted even if their asset is gone
	stored := p.LoadFavorites()
	checks := []struct {
		category models.FavoriteCategory
		ids      []string
	}{
		{models.FavoriteFrames, favorites.Frames},
		{models.FavoriteNameplates, favorites.Nameplates},
		{models.FavoriteIcons, favorites.Icons},
		{models.FavoriteTitles, favorites.Titles},
	}
	for _, check := range checks {
		for _, id := range check.ids {
			if stored.Contains(check.category, id) {
				continue
			}
			if !s.favoriteExists(check.category, id) {
				respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown %s id %q", check.category, id))
				return
			}
		}
	}

	if err := p.SaveFavorites(favorites); err != nil {
		s.logger.Error("failed to save favorites", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to save favorites")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"favorites": favorites})
}

// handleToggleFavorite adds or removes one id from a favorites category
func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	p, ok := s.persistenceFor(w, r)
	if !ok {
		return
	}

	category := models.FavoriteCategory(pathParam(r, "category"))
	if !category.Valid() {
		respondError(w, http.StatusBadRequest, "Invalid favorites category")
		return
	}
	id := pathParam(r, "id")

	// Only additions need a catalog entry; stale ids can still be removed
	favorites := p.LoadFavorites()
	if !favorites.Contains(category, id) && !s.favoriteExists(category, id) {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}

	favorited := favorites.Toggle(category, id)
	if err := p.SaveFavorites(favorites); err != nil {
		s.logger.Error("failed to save favorites", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to save favorites")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"favorites": favorites,
		"favorited": favorited,
	})
}

// validateSelection checks that every referenced asset and title exists
func (s *Server) validateSelection(sel models.SelectionState) error {
	refs := []struct {
		kind models.Kind
		id   string
	}{
		{models.KindFrame, sel.FrameID},
		{models.KindNameplate, sel.NameplateID},
		{models.KindIcon, sel.IconID},
		{models.KindFanBattleClass, sel.FanBattleClassID},
		{models.KindDans, sel.DansID},
	}
	for _, ref := range refs {
		if ref.id == "" {
			continue
		}
		if !s.assetExists(ref.kind, ref.id) {
			return fmt.Errorf("unknown %s id %q", ref.kind, ref.id)
		}
	}

	if sel.TitleKey != "" {
		if _, ok := s.catalogs.Titles().FindByKey(sel.TitleKey); !ok {
			return fmt.Errorf("unknown title key %q", sel.TitleKey)
		}
	}
	return nil
}

func (s *Server) assetExists(kind models.Kind, id string) bool {
	c, ok := s.catalogs.Catalog(kind)
	if !ok {
		return false
	}
	_, ok = c.ByID(id)
	return ok
}

// favoriteExists reports whether id names an item of the favorites category
func (s *Server) favoriteExists(category models.FavoriteCategory, id string) bool {
	switch category {
	case models.FavoriteFrames:
		return s.assetExists(models.KindFrame, id)
	case models.FavoriteNameplates:
		return s.assetExists(models.KindNameplate, id)
	case models.FavoriteIcons:
		return s.assetExists(models.KindIcon, id)
	case models.FavoriteTitles:
		_, ok := s.catalogs.Titles().FindByKey(id)
		return ok
	}
	return false
}

package api

import (
	"net/http"

	"github.com/meur/maiprofile/internal/models"
)

// handleListCatalogs returns every asset group with its size
func (s *Server) handleListCatalogs(w http.ResponseWriter, r *http.Request) {
	type summary struct {
		Kind       models.Kind `json:"kind"`
		TotalCount int         `json:"total_count"`
	}

	kinds := models.Kinds()
	summaries := make([]summary, 0, len(kinds))
	for _, kind := range kinds {
		c, ok := s.catalogs.Catalog(kind)
		if !ok {
			continue
		}
		summaries = append(summaries, summary{Kind: kind, TotalCount: c.Size()})
	}

	respondJSON(w, http.StatusOK, summaries)
}

// handleGetCatalogItems returns the items of a catalog matching ?q=
func (s *Server) handleGetCatalogItems(w http.ResponseWriter, r *http.Request) {
	c, ok := s.catalogs.Catalog(models.Kind(pathParam(r, "kind")))
	if !ok {
		respondError(w, http.StatusNotFound, "Catalog not found")
		return
	}

	items := c.Search(r.URL.Query().Get("q"))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":       items,
		"total_count": len(items),
	})
}

// handleGetCatalogItem returns a single item by id
func (s *Server) handleGetCatalogItem(w http.ResponseWriter, r *http.Request) {
	c, ok := s.catalogs.Catalog(models.Kind(pathParam(r, "kind")))
	if !ok {
		respondError(w, http.StatusNotFound, "Catalog not found")
		return
	}

	item, ok := c.ByID(pathParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// handleGetTitles returns the titles matching ?q=
func (s *Server) handleGetTitles(w http.ResponseWriter, r *http.Request) {
	titles := s.catalogs.Titles().Search(r.URL.Query().Get("q"))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":       titles,
		"total_count": len(titles),
	})
}

// handleLookupTitle returns the title with composite key ?key=
func (s *Server) handleLookupTitle(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		respondError(w, http.StatusBadRequest, "key is required")
		return
	}

	title, ok := s.catalogs.Titles().FindByKey(key)
	if !ok {
		respondError(w, http.StatusNotFound, "Title not found")
		return
	}

	respondJSON(w, http.StatusOK, title)
}

package api

import (
	"errors"
	"net/http"

	"github.com/meur/relicforge/internal/catalog"
	"github.com/meur/relicforge/internal/models"
)

const suggestionLimit = 5

// handleGetItems returns catalog items, optionally for one category
func (s *Server) handleGetItems(w http.ResponseWriter, r *http.Request) {
	items := s.catalog.Items(r.URL.Query().Get("category"))
	respondJSON(w, http.StatusOK, models.ItemList{Items: items, TotalCount: len(items)})
}

// handleSearchItems returns items whose name contains q, with fuzzy
// suggestions when nothing matches
func (s *Server) handleSearchItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respondError(w, http.StatusBadRequest, "q is required")
		return
	}

	items := s.catalog.ItemsByNameContains(q)
	if items == nil {
		items = []models.Item{}
	}
	suggestions := []models.Item{}
	if len(items) == 0 {
		suggestions = append(suggestions, s.catalog.Suggest(q, suggestionLimit)...)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":       items,
		"total_count": len(items),
		"suggestions": suggestions,
	})
}

// handleGetItem returns a single item by ID
func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	item, ok := s.catalog.ItemByID(pathParam(r, "itemID"))
	if !ok {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// handleGetParts returns the part keys every tracked item carries
func (s *Server) handleGetParts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.catalog.Scaffold().Parts())
}

// handleGetRelic returns a relic by name
func (s *Server) handleGetRelic(w http.ResponseWriter, r *http.Request) {
	relic, ok := s.catalog.RelicByName(pathParam(r, "name"))
	if !ok {
		respondError(w, http.StatusNotFound, "Relic not found")
		return
	}
	respondJSON(w, http.StatusOK, relic)
}

// handleGetRelicDrops returns where a relic drops, best route first
func (s *Server) handleGetRelicDrops(w http.ResponseWriter, r *http.Request) {
	drops, err := s.catalog.RankedDrops(pathParam(r, "name"))
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, drops)
}

// handleResolve finds the relic for an item part and its ranked drops
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	relic, ok, err := s.catalog.ResolveRelic(q.Get("item"), q.Get("part"))
	if err != nil {
		respondCatalogError(w, err)
		return
	}

	resp := map[string]interface{}{"relic": nil, "drops": []models.MissionDrops{}}
	if ok {
		drops, err := s.catalog.RankedDrops(relic.Name)
		if err != nil {
			respondCatalogError(w, err)
			return
		}
		resp["relic"] = relic
		resp["drops"] = drops
	}
	respondJSON(w, http.StatusOK, resp)
}

func respondCatalogError(w http.ResponseWriter, err error) {
	if errors.Is(err, catalog.ErrInvalidArgument) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, "Catalog lookup failed")
}

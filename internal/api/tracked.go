package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/meur/relicforge/internal/tracker"
)

// trackRequest is the request body for tracking an item
type trackRequest struct {
	ItemID string `json:"item_id"`
}

// handleListTracked returns the tracked items
func (s *Server) handleListTracked(w http.ResponseWriter, r *http.Request) {
	items, err := s.tracker.List()
	if err != nil {
		log.Printf("list tracked: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch tracked items")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":       items,
		"total_count": len(items),
	})
}

// handleAddTracked starts tracking an item
func (s *Server) handleAddTracked(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ItemID == "" {
		respondError(w, http.StatusBadRequest, "item_id is required")
		return
	}

	tracked, err := s.tracker.AddItem(req.ItemID)
	switch {
	case errors.Is(err, tracker.ErrUnknownItem):
		respondError(w, http.StatusBadRequest, "Selected item is not on the list")
		return
	case errors.Is(err, tracker.ErrDuplicateItem):
		respondError(w, http.StatusConflict, "Item is already tracked")
		return
	case err != nil:
		log.Printf("add tracked %s: %v", req.ItemID, err)
		respondError(w, http.StatusInternalServerError, "Failed to track item")
		return
	}

	respondJSON(w, http.StatusCreated, tracked)
}

// handleGetTracked returns the item screen for a tracked item
func (s *Server) handleGetTracked(w http.ResponseWriter, r *http.Request) {
	itemID := pathParam(r, "itemID")

	view, ok, err := s.tracker.ItemView(itemID)
	if err != nil {
		log.Printf("item view %s: %v", itemID, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch tracked item")
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "Tracked item not found")
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// handleRemoveTracked stops tracking an item
func (s *Server) handleRemoveTracked(w http.ResponseWriter, r *http.Request) {
	itemID := pathParam(r, "itemID")

	if err := s.tracker.RemoveItem(itemID); err != nil {
		log.Printf("remove tracked %s: %v", itemID, err)
		respondError(w, http.StatusInternalServerError, "Failed to remove tracked item")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleTogglePart flips the acquisition status of a part
func (s *Server) handleTogglePart(w http.ResponseWriter, r *http.Request) {
	itemID := pathParam(r, "itemID")

	tracked, err := s.tracker.TogglePart(itemID, pathParam(r, "part"))
	if errors.Is(err, tracker.ErrNotTracked) {
		respondError(w, http.StatusNotFound, "Tracked item not found")
		return
	}
	if err != nil {
		log.Printf("toggle %s: %v", itemID, err)
		respondError(w, http.StatusInternalServerError, "Failed to update item")
		return
	}

	respondJSON(w, http.StatusOK, tracked)
}

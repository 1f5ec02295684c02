package api

import (
	"log"
	"net/http"
)

// handleCreateShare stores a read-only snapshot of the tracking state
func (s *Server) handleCreateShare(w http.ResponseWriter, r *http.Request) {
	items, err := s.tracker.All()
	if err != nil {
		log.Printf("share: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to read tracked items")
		return
	}
	inv, err := s.tracker.Inventory()
	if err != nil {
		log.Printf("share: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to read inventory")
		return
	}

	snap, err := s.snapshots.CreateSnapshot(items, inv)
	if err != nil {
		log.Printf("share: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create share link")
		return
	}
	respondJSON(w, http.StatusCreated, snap)
}

// handleGetShare returns a snapshot by share code
func (s *Server) handleGetShare(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshots.GetSnapshotByShareCode(pathParam(r, "code"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch share link")
		return
	}
	if snap == nil {
		respondError(w, http.StatusNotFound, "Share link not found")
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/meur/relicforge/internal/catalog"
	"github.com/meur/relicforge/internal/models"
)

// handleGetInventory returns the owned relic counts
func (s *Server) handleGetInventory(w http.ResponseWriter, r *http.Request) {
	inv, err := s.tracker.Inventory()
	if err != nil {
		log.Printf("inventory: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch inventory")
		return
	}
	respondJSON(w, http.StatusOK, inv)
}

// handleIncrementRelic adds one copy of a relic
func (s *Server) handleIncrementRelic(w http.ResponseWriter, r *http.Request) {
	s.updateRelic(w, r, s.tracker.IncrementRelic)
}

// handleDecrementRelic removes one copy of a relic, never below zero
func (s *Server) handleDecrementRelic(w http.ResponseWriter, r *http.Request) {
	s.updateRelic(w, r, s.tracker.DecrementRelic)
}

func (s *Server) updateRelic(w http.ResponseWriter, r *http.Request, update func(string) (models.RelicCount, error)) {
	name := pathParam(r, "name")
	if _, ok := s.catalog.RelicByName(name); !ok {
		respondError(w, http.StatusNotFound, "Relic not found")
		return
	}

	rc, err := update(name)
	if errors.Is(err, catalog.ErrInvalidArgument) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Printf("update relic %s: %v", name, err)
		respondError(w, http.StatusInternalServerError, "Failed to update inventory")
		return
	}
	respondJSON(w, http.StatusOK, rc)
}

package api

import (
	"log"
	"net/http"

	"github.com/meur/relicforge/internal/export"
	"github.com/meur/relicforge/internal/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleExport streams the farming plan as an xlsx workbook
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	items, err := s.tracker.List()
	if err != nil {
		log.Printf("export: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to read tracked items")
		return
	}

	views := make([]models.ItemView, 0, len(items))
	for _, item := range items {
		view, ok, err := s.tracker.ItemView(item.ID)
		if err != nil {
			log.Printf("export %s: %v", item.ID, err)
			respondError(w, http.StatusInternalServerError, "Failed to build plan")
			return
		}
		if ok {
			views = append(views, view)
		}
	}
	inv, err := s.tracker.Inventory()
	if err != nil {
		log.Printf("export: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to read inventory")
		return
	}

	f, err := export.Plan(views, inv)
	if err != nil {
		log.Printf("export: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to build workbook")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="relicforge-plan.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if err := f.Write(w); err != nil {
		log.Printf("export write: %v", err)
	}
}

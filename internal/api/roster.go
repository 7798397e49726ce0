package api

import (
	"net/http"

	"github.com/kaiolohia/roster/pkg/core/services"
)

// handleGetRoster returns the full roster view for one scope. The
// optional ?event= query parameter selects an event lineup; without it
// the whole-roster lineup is returned.
func (s *Server) handleGetRoster(w http.ResponseWriter, r *http.Request) {
	eventID := r.URL.Query().Get("event")

	roster, err := services.GetRoster(r.Context(), s.store, s.logger, eventID)
	if err != nil {
		s.errorJSON(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{"roster": roster})
}

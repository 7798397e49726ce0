package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kaiolohia/roster/pkg/core/services"
	"github.com/kaiolohia/roster/pkg/db"
)

type canoePayload struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
}

// handleCreateCanoe adds a new canoe to the fleet.
func (s *Server) handleCreateCanoe(w http.ResponseWriter, r *http.Request) {
	var payload canoePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.errorJSON(w, errors.New("bad request: could not decode JSON"), http.StatusBadRequest)
		return
	}

	canoe, err := services.CreateCanoe(r.Context(), s.store, s.logger, services.CanoeInput{
		Name:        payload.Name,
		Designation: payload.Designation,
	})
	if err != nil {
		s.errorJSON(w, err, http.StatusBadRequest)
		return
	}

	s.writeJSON(w, http.StatusCreated, envelope{"canoe": canoe})
}

// handleDeleteCanoe removes a canoe. The delete is rejected while any
// paddler is still seated in it, in any scope.
func (s *Server) handleDeleteCanoe(w http.ResponseWriter, r *http.Request) {
	canoeID := chi.URLParam(r, "canoeID")

	if err := services.DeleteCanoe(r.Context(), s.store, s.logger, canoeID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorJSON(w, err, http.StatusNotFound)
			return
		}
		s.errorJSON(w, err, http.StatusConflict)
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{"deleted": canoeID})
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kaiolohia/roster/pkg/core/services"
	"github.com/kaiolohia/roster/pkg/db"
)

type paddlerPayload struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Gender         string `json:"gender"`
	Type           string `json:"type"`
	Ability        int    `json:"ability"`
	SeatPreference string `json:"seatPreference"`
	Email          string `json:"email"`
}

func (p paddlerPayload) toInput() services.PaddlerInput {
	return services.PaddlerInput{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Gender:         p.Gender,
		Type:           p.Type,
		Ability:        p.Ability,
		SeatPreference: p.SeatPreference,
		Email:          p.Email,
	}
}

// handleCreatePaddler adds a new paddler to the roster.
func (s *Server) handleCreatePaddler(w http.ResponseWriter, r *http.Request) {
	var payload paddlerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.errorJSON(w, errors.New("bad request: could not decode JSON"), http.StatusBadRequest)
		return
	}

	paddler, err := services.CreatePaddler(r.Context(), s.store, s.logger, payload.toInput())
	if err != nil {
		s.errorJSON(w, err, http.StatusBadRequest)
		return
	}

	s.writeJSON(w, http.StatusCreated, envelope{"paddler": paddler})
}

// handleUpdatePaddler replaces a paddler's editable fields.
func (s *Server) handleUpdatePaddler(w http.ResponseWriter, r *http.Request) {
	paddlerID := chi.URLParam(r, "paddlerID")

	var payload paddlerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.errorJSON(w, errors.New("bad request: could not decode JSON"), http.StatusBadRequest)
		return
	}

	paddler, err := services.UpdatePaddler(r.Context(), s.store, s.logger, paddlerID, payload.toInput())
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorJSON(w, err, http.StatusNotFound)
			return
		}
		s.errorJSON(w, err, http.StatusBadRequest)
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{"paddler": paddler})
}

// handleDeletePaddler removes a paddler and everything that references them.
func (s *Server) handleDeletePaddler(w http.ResponseWriter, r *http.Request) {
	paddlerID := chi.URLParam(r, "paddlerID")

	if err := services.DeletePaddler(r.Context(), s.store, s.logger, paddlerID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorJSON(w, err, http.StatusNotFound)
			return
		}
		s.errorJSON(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{"deleted": paddlerID})
}

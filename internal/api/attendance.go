package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kaiolohia/roster/pkg/core/services"
	"github.com/kaiolohia/roster/pkg/db"
)

type attendancePayload struct {
	Attending bool `json:"attending"`
}

// handleGetAttendance lists the attendance rows of one event. Paddlers
// with no row haven't responded and count as absent.
func (s *Server) handleGetAttendance(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	attendance, err := s.store.GetAttendance(r.Context(), eventID)
	if err != nil {
		s.errorJSON(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{"attendance": attendance})
}

// handleSetAttendance records whether a paddler attends an event.
// Marking absent also clears the paddler's seat for that event.
func (s *Server) handleSetAttendance(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	paddlerID := chi.URLParam(r, "paddlerID")

	var payload attendancePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.errorJSON(w, errors.New("bad request: could not decode JSON"), http.StatusBadRequest)
		return
	}

	if err := services.SetAttendance(r.Context(), s.store, s.logger, paddlerID, eventID, payload.Attending); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorJSON(w, err, http.StatusNotFound)
			return
		}
		s.errorJSON(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{"attending": payload.Attending})
}

// handleToggleAttendance flips a paddler's attendance for an event and
// returns the new state.
func (s *Server) handleToggleAttendance(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	paddlerID := chi.URLParam(r, "paddlerID")

	attending, err := services.ToggleAttendance(r.Context(), s.store, s.logger, paddlerID, eventID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorJSON(w, err, http.StatusNotFound)
			return
		}
		s.errorJSON(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{"attending": attending})
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kaiolohia/roster/pkg/core/services"
	"github.com/kaiolohia/roster/pkg/db"
)

type eventPayload struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	EventType string `json:"eventType"`

	Freq      string   `json:"freq"`
	Weekdays  []string `json:"weekdays"`
	MonthDays []int    `json:"monthDays"`
	Until     string   `json:"until"`
}

// handleGetEvents lists all events, recurring occurrences included.
func (s *Server) handleGetEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.store.GetEvents(r.Context())
	if err != nil {
		s.errorJSON(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{"events": events})
}

// handleDefineEvents creates a single event or expands a recurrence
// rule into a series of events sharing one series id.
func (s *Server) handleDefineEvents(w http.ResponseWriter, r *http.Request) {
	var payload eventPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.errorJSON(w, errors.New("bad request: could not decode JSON"), http.StatusBadRequest)
		return
	}

	events, err := services.DefineEvents(r.Context(), s.store, s.logger, services.EventInput{
		Title:     payload.Title,
		Date:      payload.Date,
		Time:      payload.Time,
		Location:  payload.Location,
		EventType: payload.EventType,
		Freq:      services.RecurrenceFreq(payload.Freq),
		Weekdays:  payload.Weekdays,
		MonthDays: payload.MonthDays,
		Until:     payload.Until,
	})
	if err != nil {
		s.errorJSON(w, err, http.StatusBadRequest)
		return
	}

	s.writeJSON(w, http.StatusCreated, envelope{"events": events})
}

// handleDeleteEvent removes an event along with its attendance and
// seat assignments.
func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	if err := s.store.DeleteEvent(r.Context(), eventID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorJSON(w, err, http.StatusNotFound)
			return
		}
		s.errorJSON(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{"deleted": eventID})
}

// handleNotifyAttendees emails every attending paddler their seat for
// the event. Returns 503 when no gmail client is configured.
func (s *Server) handleNotifyAttendees(w http.ResponseWriter, r *http.Request) {
	if s.mailer == nil {
		s.errorJSON(w, errors.New("gmail client is not configured"), http.StatusServiceUnavailable)
		return
	}

	eventID := chi.URLParam(r, "eventID")

	result, err := services.NotifyAttendees(r.Context(), s.store, s.mailer, s.logger, eventID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorJSON(w, err, http.StatusNotFound)
			return
		}
		s.errorJSON(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{"notified": result})
}

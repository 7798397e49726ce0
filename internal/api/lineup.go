package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/kaiolohia/roster/pkg/core/lineup"
	"github.com/kaiolohia/roster/pkg/core/services"
)

type assignOptimalPayload struct {
	EventID        string   `json:"eventID"`
	Priority       []string `json:"priority"`
	LockedCanoeIDs []string `json:"lockedCanoeIDs"`
	Policy         string   `json:"policy"`
}

// handleAssignOptimal recomputes the lineup of one scope from the
// priority-ordered criteria. Omitted priority and policy fall back to
// the configured defaults.
func (s *Server) handleAssignOptimal(w http.ResponseWriter, r *http.Request) {
	var payload assignOptimalPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.errorJSON(w, errors.New("bad request: could not decode JSON"), http.StatusBadRequest)
		return
	}

	priorityNames := payload.Priority
	if len(priorityNames) == 0 {
		priorityNames = s.config.DefaultPriority
	}
	priority, err := lineup.ParsePriority(priorityNames)
	if err != nil {
		s.errorJSON(w, err, http.StatusBadRequest)
		return
	}

	policy := lineup.FillPolicy(payload.Policy)
	if payload.Policy == "" {
		policy = lineup.FillPolicy(s.config.FillPolicy)
	}
	if !policy.IsValid() {
		s.errorJSON(w, fmt.Errorf("unknown fill policy %q", payload.Policy), http.StatusBadRequest)
		return
	}

	result, err := services.AssignOptimal(r.Context(), s.store, s.logger, services.AssignOptimalParams{
		EventID:        payload.EventID,
		Priority:       priority,
		LockedCanoeIDs: payload.LockedCanoeIDs,
		Policy:         policy,
	})
	if err != nil {
		s.errorJSON(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{"lineup": result})
}

type publishPayload struct {
	EventID string `json:"eventID"`
}

// handlePublishLineup writes the current lineup of one scope to the
// club's shared spreadsheet. Returns 503 when no sheets client is
// configured.
func (s *Server) handlePublishLineup(w http.ResponseWriter, r *http.Request) {
	if s.sheets == nil {
		s.errorJSON(w, errors.New("sheets client is not configured"), http.StatusServiceUnavailable)
		return
	}

	var payload publishPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.errorJSON(w, errors.New("bad request: could not decode JSON"), http.StatusBadRequest)
		return
	}

	err := services.PublishLineup(r.Context(), s.store, s.sheets, s.logger, services.PublishLineupParams{
		EventID:       payload.EventID,
		SpreadsheetID: s.config.LineupSheetID,
		SheetTab:      s.config.LineupTab,
	})
	if err != nil {
		s.errorJSON(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{"published": true})
}

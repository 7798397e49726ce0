package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/kaiolohia/roster/pkg/core/lineup"
	"github.com/kaiolohia/roster/pkg/core/services"
	"github.com/kaiolohia/roster/pkg/db"
)

type movePayload struct {
	EventID        string   `json:"eventID"`
	PaddlerID      string   `json:"paddlerID"`
	Zone           string   `json:"zone"`
	CanoeID        string   `json:"canoeID"`
	Seat           int      `json:"seat"`
	LockedCanoeIDs []string `json:"lockedCanoeIDs"`
}

// handleMove executes one drag-and-drop gesture: seat assignment, swap,
// unassign to staging, trash, or edit. No-op gestures return applied=false.
func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var payload movePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.errorJSON(w, errors.New("bad request: could not decode JSON"), http.StatusBadRequest)
		return
	}

	if payload.PaddlerID == "" {
		s.errorJSON(w, errors.New("paddlerID is required"), http.StatusBadRequest)
		return
	}

	zone := lineup.DropZone(payload.Zone)
	switch zone {
	case lineup.DropSeat, lineup.DropStaging, lineup.DropTrash, lineup.DropEdit:
	default:
		s.errorJSON(w, fmt.Errorf("unknown drop zone %q", payload.Zone), http.StatusBadRequest)
		return
	}

	result, err := services.HandleMove(r.Context(), s.store, s.logger, services.MoveRequest{
		EventID:        payload.EventID,
		PaddlerID:      payload.PaddlerID,
		Zone:           zone,
		CanoeID:        payload.CanoeID,
		Seat:           payload.Seat,
		LockedCanoeIDs: payload.LockedCanoeIDs,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorJSON(w, err, http.StatusNotFound)
			return
		}
		s.errorJSON(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{"move": result})
}

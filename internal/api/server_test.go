package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kaiolohia/roster/internal/config"
	"github.com/kaiolohia/roster/pkg/db"
)

// stubStore is a minimal in-memory db.Store for handler tests.
type stubStore struct {
	paddlers    []db.Paddler
	canoes      []db.Canoe
	assignments []db.SeatAssignment
	attendance  []db.Attendance
	events      []db.Event
}

func (s *stubStore) GetPaddlers(ctx context.Context) ([]db.Paddler, error) { return s.paddlers, nil }

func (s *stubStore) GetPaddler(ctx context.Context, id string) (*db.Paddler, error) {
	for _, p := range s.paddlers {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("paddler %s: %w", id, db.ErrNotFound)
}

func (s *stubStore) InsertPaddler(ctx context.Context, paddler *db.Paddler) error {
	s.paddlers = append(s.paddlers, *paddler)
	return nil
}

func (s *stubStore) UpdatePaddler(ctx context.Context, paddler *db.Paddler) error {
	for i, p := range s.paddlers {
		if p.ID == paddler.ID {
			s.paddlers[i] = *paddler
			return nil
		}
	}
	return fmt.Errorf("paddler %s: %w", paddler.ID, db.ErrNotFound)
}

func (s *stubStore) DeletePaddler(ctx context.Context, id string) error {
	for i, p := range s.paddlers {
		if p.ID == id {
			s.paddlers = append(s.paddlers[:i], s.paddlers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("paddler %s: %w", id, db.ErrNotFound)
}

func (s *stubStore) GetCanoes(ctx context.Context) ([]db.Canoe, error) { return s.canoes, nil }

func (s *stubStore) GetCanoe(ctx context.Context, id string) (*db.Canoe, error) {
	for _, c := range s.canoes {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("canoe %s: %w", id, db.ErrNotFound)
}

func (s *stubStore) InsertCanoe(ctx context.Context, canoe *db.Canoe) error {
	s.canoes = append(s.canoes, *canoe)
	return nil
}

func (s *stubStore) DeleteCanoe(ctx context.Context, id string) error {
	for i, c := range s.canoes {
		if c.ID == id {
			s.canoes = append(s.canoes[:i], s.canoes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("canoe %s: %w", id, db.ErrNotFound)
}

func (s *stubStore) GetAssignments(ctx context.Context, eventID string) ([]db.SeatAssignment, error) {
	var scoped []db.SeatAssignment
	for _, a := range s.assignments {
		if a.EventID == eventID {
			scoped = append(scoped, a)
		}
	}
	return scoped, nil
}

func (s *stubStore) ApplyMove(ctx context.Context, eventID string, unassign, assign []db.SeatAssignment) error {
	for _, u := range unassign {
		for i, a := range s.assignments {
			if a.EventID == eventID && a.CanoeID == u.CanoeID && a.Seat == u.Seat && a.PaddlerID == u.PaddlerID {
				s.assignments = append(s.assignments[:i], s.assignments[i+1:]...)
				break
			}
		}
	}
	s.assignments = append(s.assignments, assign...)
	return nil
}

func (s *stubStore) ReplaceAssignments(ctx context.Context, eventID string, keepCanoeIDs []string, assignments []db.SeatAssignment) error {
	keep := make(map[string]bool, len(keepCanoeIDs))
	for _, id := range keepCanoeIDs {
		keep[id] = true
	}
	kept := s.assignments[:0]
	for _, a := range s.assignments {
		if a.EventID != eventID || keep[a.CanoeID] {
			kept = append(kept, a)
		}
	}
	s.assignments = append(kept, assignments...)
	return nil
}

func (s *stubStore) GetAttendance(ctx context.Context, eventID string) ([]db.Attendance, error) {
	var scoped []db.Attendance
	for _, a := range s.attendance {
		if a.EventID == eventID {
			scoped = append(scoped, a)
		}
	}
	return scoped, nil
}

func (s *stubStore) SetAttendance(ctx context.Context, paddlerID, eventID string, attending bool) error {
	for i, a := range s.attendance {
		if a.PaddlerID == paddlerID && a.EventID == eventID {
			s.attendance[i].Attending = attending
			return nil
		}
	}
	s.attendance = append(s.attendance, db.Attendance{PaddlerID: paddlerID, EventID: eventID, Attending: attending})
	return nil
}

func (s *stubStore) GetEvents(ctx context.Context) ([]db.Event, error) { return s.events, nil }

func (s *stubStore) GetEvent(ctx context.Context, id string) (*db.Event, error) {
	for _, e := range s.events {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("event %s: %w", id, db.ErrNotFound)
}

func (s *stubStore) InsertEvents(ctx context.Context, events []db.Event) error {
	s.events = append(s.events, events...)
	return nil
}

func (s *stubStore) DeleteEvent(ctx context.Context, id string) error {
	for i, e := range s.events {
		if e.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("event %s: %w", id, db.ErrNotFound)
}

func newTestServer(store db.Store) *chi.Mux {
	cfg := &config.Config{
		DatabaseURL:     "postgres://localhost/roster",
		HTTPAddr:        ":8080",
		DefaultPriority: []string{"ability"},
		FillPolicy:      "sequential",
	}
	server := NewServer(cfg, store, zap.NewNop(), nil, nil)
	router := chi.NewRouter()
	server.RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetRosterEndpoint(t *testing.T) {
	store := &stubStore{
		paddlers: []db.Paddler{{ID: "p1", FirstName: "Nainoa", LastName: "K", Gender: "kane", Type: "racer", Ability: 4, SeatPreference: "000000"}},
		canoes:   []db.Canoe{{ID: "c1", Name: "Kai"}},
		assignments: []db.SeatAssignment{
			{ID: "a1", CanoeID: "c1", Seat: 1, PaddlerID: "p1"},
		},
	}

	rec := doJSON(t, newTestServer(store), http.MethodGet, "/api/roster", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Roster struct {
			Paddlers []struct {
				ID            string
				AssignedCanoe string
				AssignedSeat  int
			}
			Canoes []struct {
				ID     string
				Status string
			}
		}
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Roster.Paddlers, 1)
	assert.Equal(t, "c1", resp.Roster.Paddlers[0].AssignedCanoe)
	assert.Equal(t, 1, resp.Roster.Paddlers[0].AssignedSeat)
	require.Len(t, resp.Roster.Canoes, 1)
	assert.Equal(t, "open", resp.Roster.Canoes[0].Status)
}

func TestMoveEndpoint_Swap(t *testing.T) {
	store := &stubStore{
		paddlers: []db.Paddler{
			{ID: "A", FirstName: "A", LastName: "T", Gender: "kane", Type: "racer", Ability: 3, SeatPreference: "000000"},
			{ID: "B", FirstName: "B", LastName: "T", Gender: "wahine", Type: "racer", Ability: 3, SeatPreference: "000000"},
		},
		assignments: []db.SeatAssignment{
			{ID: "a1", CanoeID: "c1", Seat: 2, PaddlerID: "A"},
			{ID: "a2", CanoeID: "c2", Seat: 5, PaddlerID: "B"},
		},
	}

	rec := doJSON(t, newTestServer(store), http.MethodPost, "/api/moves", map[string]interface{}{
		"paddlerID": "A",
		"zone":      "seat",
		"canoeID":   "c2",
		"seat":      5,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Move struct{ Applied bool }
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Move.Applied)

	rows, _ := store.GetAssignments(context.Background(), "")
	assert.Len(t, rows, 2)
}

func TestMoveEndpoint_UnknownZone(t *testing.T) {
	rec := doJSON(t, newTestServer(&stubStore{}), http.MethodPost, "/api/moves", map[string]interface{}{
		"paddlerID": "A",
		"zone":      "bench",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMoveEndpoint_UnknownPaddler(t *testing.T) {
	rec := doJSON(t, newTestServer(&stubStore{}), http.MethodPost, "/api/moves", map[string]interface{}{
		"paddlerID": "ghost",
		"zone":      "seat",
		"canoeID":   "c1",
		"seat":      1,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePaddlerEndpoint(t *testing.T) {
	store := &stubStore{}

	rec := doJSON(t, newTestServer(store), http.MethodPost, "/api/paddlers", map[string]interface{}{
		"firstName": "Nainoa",
		"lastName":  "K",
		"gender":    "kane",
		"type":      "racer",
		"ability":   4,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, store.paddlers, 1)
}

func TestCreatePaddlerEndpoint_ValidationError(t *testing.T) {
	rec := doJSON(t, newTestServer(&stubStore{}), http.MethodPost, "/api/paddlers", map[string]interface{}{
		"firstName": "Nainoa",
		"lastName":  "K",
		"gender":    "male",
		"type":      "racer",
		"ability":   4,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssignOptimalEndpoint_UsesConfiguredDefaults(t *testing.T) {
	store := &stubStore{
		paddlers: []db.Paddler{
			{ID: "p1", FirstName: "A", LastName: "T", Gender: "kane", Type: "racer", Ability: 2, SeatPreference: "000000"},
			{ID: "p2", FirstName: "B", LastName: "T", Gender: "kane", Type: "racer", Ability: 5, SeatPreference: "000000"},
		},
		canoes: []db.Canoe{{ID: "c1", Name: "Kai"}},
	}

	rec := doJSON(t, newTestServer(store), http.MethodPost, "/api/lineup/optimal", map[string]interface{}{})
	require.Equal(t, http.StatusOK, rec.Code)

	rows, _ := store.GetAssignments(context.Background(), "")
	require.Len(t, rows, 2)
	// Seat 1 goes to the strongest paddler under the default ability priority.
	for _, r := range rows {
		if r.Seat == 1 {
			assert.Equal(t, "p2", r.PaddlerID)
		}
	}
}

func TestAssignOptimalEndpoint_BadPriority(t *testing.T) {
	rec := doJSON(t, newTestServer(&stubStore{}), http.MethodPost, "/api/lineup/optimal", map[string]interface{}{
		"priority": []string{"height"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublishEndpoint_NoSheetsClient(t *testing.T) {
	rec := doJSON(t, newTestServer(&stubStore{}), http.MethodPost, "/api/lineup/publish", map[string]interface{}{})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSetAttendanceEndpoint_UnknownEvent(t *testing.T) {
	store := &stubStore{
		paddlers: []db.Paddler{{ID: "A", FirstName: "A", LastName: "T", Gender: "kane", Type: "racer", Ability: 3, SeatPreference: "000000"}},
	}

	rec := doJSON(t, newTestServer(store), http.MethodPut, "/api/events/missing/attendance/A", map[string]interface{}{
		"attending": true,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteEventEndpoint(t *testing.T) {
	store := &stubStore{
		events: []db.Event{{ID: "e1", Title: "Practice", Date: "2026-09-01", EventType: "practice"}},
	}

	rec := doJSON(t, newTestServer(store), http.MethodDelete, "/api/events/e1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.events)

	rec = doJSON(t, newTestServer(store), http.MethodDelete, "/api/events/e1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

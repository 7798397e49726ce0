package services

import (
	"context"
	"fmt"

	"github.com/kaiolohia/roster/pkg/db"
)

// mockStore is an in-memory test double implementing every store
// interface the services need, including the transactional cascade
// semantics of the postgres layer.
type mockStore struct {
	paddlers    []db.Paddler
	canoes      []db.Canoe
	assignments []db.SeatAssignment
	attendance  []db.Attendance
	events      []db.Event

	insertedEvents []db.Event

	getPaddlersErr error
	applyMoveErr   error
	replaceErr     error
}

func (m *mockStore) GetPaddlers(ctx context.Context) ([]db.Paddler, error) {
	if m.getPaddlersErr != nil {
		return nil, m.getPaddlersErr
	}
	return m.paddlers, nil
}

func (m *mockStore) GetPaddler(ctx context.Context, id string) (*db.Paddler, error) {
	for _, p := range m.paddlers {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("paddler %s: %w", id, db.ErrNotFound)
}

func (m *mockStore) InsertPaddler(ctx context.Context, paddler *db.Paddler) error {
	m.paddlers = append(m.paddlers, *paddler)
	return nil
}

func (m *mockStore) UpdatePaddler(ctx context.Context, paddler *db.Paddler) error {
	for i, p := range m.paddlers {
		if p.ID == paddler.ID {
			m.paddlers[i] = *paddler
			return nil
		}
	}
	return fmt.Errorf("paddler %s: %w", paddler.ID, db.ErrNotFound)
}

func (m *mockStore) DeletePaddler(ctx context.Context, id string) error {
	found := false
	for i, p := range m.paddlers {
		if p.ID == id {
			m.paddlers = append(m.paddlers[:i], m.paddlers[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("paddler %s: %w", id, db.ErrNotFound)
	}

	kept := m.assignments[:0]
	for _, a := range m.assignments {
		if a.PaddlerID != id {
			kept = append(kept, a)
		}
	}
	m.assignments = kept

	keptAtt := m.attendance[:0]
	for _, a := range m.attendance {
		if a.PaddlerID != id {
			keptAtt = append(keptAtt, a)
		}
	}
	m.attendance = keptAtt
	return nil
}

func (m *mockStore) GetCanoes(ctx context.Context) ([]db.Canoe, error) {
	return m.canoes, nil
}

func (m *mockStore) GetCanoe(ctx context.Context, id string) (*db.Canoe, error) {
	for _, c := range m.canoes {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("canoe %s: %w", id, db.ErrNotFound)
}

func (m *mockStore) InsertCanoe(ctx context.Context, canoe *db.Canoe) error {
	m.canoes = append(m.canoes, *canoe)
	return nil
}

func (m *mockStore) DeleteCanoe(ctx context.Context, id string) error {
	for _, a := range m.assignments {
		if a.CanoeID == id {
			return fmt.Errorf("canoe %s is occupied", id)
		}
	}
	for i, c := range m.canoes {
		if c.ID == id {
			m.canoes = append(m.canoes[:i], m.canoes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("canoe %s: %w", id, db.ErrNotFound)
}

func (m *mockStore) GetAssignments(ctx context.Context, eventID string) ([]db.SeatAssignment, error) {
	var scoped []db.SeatAssignment
	for _, a := range m.assignments {
		if a.EventID == eventID {
			scoped = append(scoped, a)
		}
	}
	return scoped, nil
}

func (m *mockStore) ApplyMove(ctx context.Context, eventID string, unassign, assign []db.SeatAssignment) error {
	if m.applyMoveErr != nil {
		return m.applyMoveErr
	}
	for _, u := range unassign {
		for i, a := range m.assignments {
			if a.EventID == eventID && a.CanoeID == u.CanoeID && a.Seat == u.Seat && a.PaddlerID == u.PaddlerID {
				m.assignments = append(m.assignments[:i], m.assignments[i+1:]...)
				break
			}
		}
	}
	m.assignments = append(m.assignments, assign...)
	return nil
}

func (m *mockStore) ReplaceAssignments(ctx context.Context, eventID string, keepCanoeIDs []string, assignments []db.SeatAssignment) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	keep := make(map[string]bool, len(keepCanoeIDs))
	for _, id := range keepCanoeIDs {
		keep[id] = true
	}
	kept := m.assignments[:0]
	for _, a := range m.assignments {
		if a.EventID != eventID || keep[a.CanoeID] {
			kept = append(kept, a)
		}
	}
	m.assignments = append(kept, assignments...)
	return nil
}

func (m *mockStore) GetAttendance(ctx context.Context, eventID string) ([]db.Attendance, error) {
	var scoped []db.Attendance
	for _, a := range m.attendance {
		if a.EventID == eventID {
			scoped = append(scoped, a)
		}
	}
	return scoped, nil
}

func (m *mockStore) SetAttendance(ctx context.Context, paddlerID, eventID string, attending bool) error {
	updated := false
	for i, a := range m.attendance {
		if a.PaddlerID == paddlerID && a.EventID == eventID {
			m.attendance[i].Attending = attending
			updated = true
			break
		}
	}
	if !updated {
		m.attendance = append(m.attendance, db.Attendance{
			PaddlerID: paddlerID,
			EventID:   eventID,
			Attending: attending,
		})
	}

	if !attending {
		kept := m.assignments[:0]
		for _, a := range m.assignments {
			if !(a.EventID == eventID && a.PaddlerID == paddlerID) {
				kept = append(kept, a)
			}
		}
		m.assignments = kept
	}
	return nil
}

func (m *mockStore) GetEvents(ctx context.Context) ([]db.Event, error) {
	return m.events, nil
}

func (m *mockStore) GetEvent(ctx context.Context, id string) (*db.Event, error) {
	for _, e := range m.events {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("event %s: %w", id, db.ErrNotFound)
}

func (m *mockStore) InsertEvents(ctx context.Context, events []db.Event) error {
	m.events = append(m.events, events...)
	m.insertedEvents = append(m.insertedEvents, events...)
	return nil
}

func (m *mockStore) DeleteEvent(ctx context.Context, id string) error {
	for i, e := range m.events {
		if e.ID == id {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("event %s: %w", id, db.ErrNotFound)
}

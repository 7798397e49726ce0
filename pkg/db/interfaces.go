package db

import "context"

// PaddlerStore defines paddler database operations
type PaddlerStore interface {
	GetPaddlers(ctx context.Context) ([]Paddler, error)
	GetPaddler(ctx context.Context, id string) (*Paddler, error)
	InsertPaddler(ctx context.Context, paddler *Paddler) error
	UpdatePaddler(ctx context.Context, paddler *Paddler) error
	// DeletePaddler removes the paddler together with all of their seat
	// assignments and attendance rows in a single transaction.
	DeletePaddler(ctx context.Context, id string) error
}

// CanoeStore defines canoe database operations
type CanoeStore interface {
	GetCanoes(ctx context.Context) ([]Canoe, error)
	GetCanoe(ctx context.Context, id string) (*Canoe, error)
	InsertCanoe(ctx context.Context, canoe *Canoe) error
	// DeleteCanoe fails if the canoe is occupied in any scope.
	DeleteCanoe(ctx context.Context, id string) error
}

// AssignmentStore defines seat-assignment database operations. EventID ""
// addresses the whole-roster scope.
type AssignmentStore interface {
	GetAssignments(ctx context.Context, eventID string) ([]SeatAssignment, error)
	// ApplyMove deletes then inserts assignment rows in one transaction,
	// so a swap never exposes a half-moved state.
	ApplyMove(ctx context.Context, eventID string, unassign, assign []SeatAssignment) error
	// ReplaceAssignments clears every assignment in the scope except rows
	// belonging to the listed canoes, then inserts the new set, in one
	// transaction.
	ReplaceAssignments(ctx context.Context, eventID string, keepCanoeIDs []string, assignments []SeatAssignment) error
}

// AttendanceStore defines attendance database operations
type AttendanceStore interface {
	GetAttendance(ctx context.Context, eventID string) ([]Attendance, error)
	// SetAttendance upserts the attendance row; flipping to false also
	// deletes the paddler's seat assignment for the event in the same
	// transaction (attendance first, then the seat).
	SetAttendance(ctx context.Context, paddlerID, eventID string, attending bool) error
}

// EventStore defines event database operations
type EventStore interface {
	GetEvents(ctx context.Context) ([]Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	InsertEvents(ctx context.Context, events []Event) error
	// DeleteEvent removes the event with its attendance and assignment rows.
	DeleteEvent(ctx context.Context, id string) error
}

// Store combines every store interface; the postgres implementation
// satisfies all of them.
type Store interface {
	PaddlerStore
	CanoeStore
	AssignmentStore
	AttendanceStore
	EventStore
}

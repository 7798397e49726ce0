package db

// Paddler represents a database paddler record
type Paddler struct {
	ID             string
	FirstName      string
	LastName       string
	Gender         string
	Type           string
	Ability        int
	SeatPreference string
	Email          string
}

// Canoe represents a database canoe record
type Canoe struct {
	ID          string
	Name        string
	Designation string
}

// SeatAssignment represents one occupied seat. EventID is empty for the
// whole-roster (global) scope and holds an event id for per-event lineups.
type SeatAssignment struct {
	ID        string
	EventID   string
	CanoeID   string
	Seat      int
	PaddlerID string
}

// Event represents a database event record
type Event struct {
	ID        string
	SeriesID  string
	Title     string
	Date      string // YYYY-MM-DD
	Time      string
	Location  string
	EventType string
}

// Attendance represents a paddler's attendance flag for one event.
// Rows are created lazily on first toggle; a missing row means absent.
type Attendance struct {
	PaddlerID string
	EventID   string
	Attending bool
}

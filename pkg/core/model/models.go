package model

// SeatsPerCanoe is the fixed number of seats in an outrigger canoe.
const SeatsPerCanoe = 6

type Gender string

const (
	GenderKane   Gender = "kane"
	GenderWahine Gender = "wahine"
)

func (g Gender) IsValid() bool {
	return g == GenderKane || g == GenderWahine
}

// PaddlerType is a paddler's racing intent
type PaddlerType string

const (
	TypeRacer      PaddlerType = "racer"
	TypeCasual     PaddlerType = "casual"
	TypeVeryCasual PaddlerType = "very-casual"
)

func (t PaddlerType) IsValid() bool {
	return t == TypeRacer || t == TypeCasual || t == TypeVeryCasual
}

type EventType string

const (
	EventPractice EventType = "practice"
	EventRace     EventType = "race"
	EventOther    EventType = "other"
)

func (e EventType) IsValid() bool {
	return e == EventPractice || e == EventRace || e == EventOther
}

// Paddler represents a club member eligible for seat assignment
type Paddler struct {
	ID        string
	FirstName string
	LastName  string
	Gender    Gender
	Type      PaddlerType
	Ability   int // 1 (novice) to 5 (expert)
	// SeatPreference is a fixed-length 6-character digit string; each
	// character is a seat number in priority order or '0' for no further
	// preference. "612000" means seat 6 first, then 1, then 2.
	SeatPreference string
	Email          string // Empty string if no email on file
}

// Canoe represents a six-seat vessel
type Canoe struct {
	ID          string
	Name        string
	Designation string // Optional human label, empty if unset
}

// CanoeStatus is derived from the assignment count in a scope, never stored.
type CanoeStatus string

const (
	CanoeOpen CanoeStatus = "open"
	CanoeFull CanoeStatus = "full"
)

// StatusForCount returns the canoe status for a seat-assignment count.
func StatusForCount(assigned int) CanoeStatus {
	if assigned >= SeatsPerCanoe {
		return CanoeFull
	}
	return CanoeOpen
}

// Event represents a single dated club event. Recurring events are
// expanded into concrete rows sharing a SeriesID at creation time.
type Event struct {
	ID        string
	SeriesID  string
	Title     string
	Date      string // YYYY-MM-DD
	Time      string
	Location  string
	EventType EventType
}

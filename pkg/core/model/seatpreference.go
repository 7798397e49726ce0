package model

import "fmt"

// NoSeatPreference is the sort rank for a paddler with no preferred seat.
// It sorts after every real seat number.
const NoSeatPreference = 999

// PrimarySeatPreference returns the first-listed preferred seat number in
// the encoded preference string, or NoSeatPreference if the paddler has no
// preference (all zeros, empty, or malformed).
func PrimarySeatPreference(pref string) int {
	for _, c := range pref {
		if c >= '1' && c <= '6' {
			return int(c - '0')
		}
		if c != '0' {
			return NoSeatPreference
		}
	}
	return NoSeatPreference
}

// PreferredSeats decodes the preference string into an ordered list of
// distinct seat numbers, highest priority first.
func PreferredSeats(pref string) []int {
	seats := make([]int, 0, SeatsPerCanoe)
	for _, c := range pref {
		if c >= '1' && c <= '6' {
			seats = append(seats, int(c-'0'))
		}
	}
	return seats
}

// ValidateSeatPreference checks that a preference string is exactly six
// characters of digits 0-6 with no repeated nonzero digit. An empty string
// is accepted and means no preference.
func ValidateSeatPreference(pref string) error {
	if pref == "" {
		return nil
	}
	if len(pref) != SeatsPerCanoe {
		return fmt.Errorf("seat preference must be %d characters, got %d", SeatsPerCanoe, len(pref))
	}
	seen := make(map[rune]bool)
	for _, c := range pref {
		if c < '0' || c > '6' {
			return fmt.Errorf("seat preference contains invalid character %q", c)
		}
		if c == '0' {
			continue
		}
		if seen[c] {
			return fmt.Errorf("seat preference lists seat %c more than once", c)
		}
		seen[c] = true
	}
	return nil
}

// ValidSeat reports whether n addresses a real seat.
func ValidSeat(n int) bool {
	return n >= 1 && n <= SeatsPerCanoe
}

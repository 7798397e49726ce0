package lineup

import (
	"fmt"
	"strings"

	"github.com/kaiolohia/roster/pkg/core/model"
)

// Criterion is a single sort key for ordering paddlers.
type Criterion string

const (
	CriterionAbility        Criterion = "ability"
	CriterionGender         Criterion = "gender"
	CriterionType           Criterion = "type"
	CriterionSeatPreference Criterion = "seatPreference"
)

func (c Criterion) IsValid() bool {
	switch c {
	case CriterionAbility, CriterionGender, CriterionType, CriterionSeatPreference:
		return true
	}
	return false
}

// ParsePriority converts criterion names into an ordered priority list,
// rejecting unknown names and duplicates.
func ParsePriority(names []string) ([]Criterion, error) {
	seen := make(map[Criterion]bool)
	priority := make([]Criterion, 0, len(names))
	for _, name := range names {
		c := Criterion(name)
		if !c.IsValid() {
			return nil, fmt.Errorf("unknown sort criterion %q", name)
		}
		if seen[c] {
			return nil, fmt.Errorf("duplicate sort criterion %q", name)
		}
		seen[c] = true
		priority = append(priority, c)
	}
	return priority, nil
}

// Compare orders two paddlers by the given priority list. Criteria are
// evaluated in order and the first nonzero comparison wins; a full tie
// returns 0 so a stable sort preserves input order.
//
// Per-criterion rules:
//   - ability: descending (higher ability first)
//   - gender: ascending lexicographic on the label ("kane" < "wahine")
//   - type: ascending lexicographic on the label
//   - seatPreference: ascending on the primary preferred seat; paddlers
//     with no preference sort last
func Compare(a, b model.Paddler, priority []Criterion) int {
	for _, criterion := range priority {
		if cmp := compareBy(a, b, criterion); cmp != 0 {
			return cmp
		}
	}
	return 0
}

func compareBy(a, b model.Paddler, criterion Criterion) int {
	switch criterion {
	case CriterionAbility:
		return compareInts(b.Ability, a.Ability)
	case CriterionGender:
		return strings.Compare(string(a.Gender), string(b.Gender))
	case CriterionType:
		return strings.Compare(string(a.Type), string(b.Type))
	case CriterionSeatPreference:
		return compareInts(
			model.PrimarySeatPreference(a.SeatPreference),
			model.PrimarySeatPreference(b.SeatPreference),
		)
	}
	return 0
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiolohia/roster/pkg/core/model"
)

func paddler(id string, ability int, gender model.Gender, ptype model.PaddlerType, pref string) model.Paddler {
	return model.Paddler{
		ID:             id,
		FirstName:      id,
		Gender:         gender,
		Type:           ptype,
		Ability:        ability,
		SeatPreference: pref,
	}
}

func TestParsePriority(t *testing.T) {
	priority, err := ParsePriority([]string{"ability", "gender", "type", "seatPreference"})
	require.NoError(t, err)
	assert.Equal(t, []Criterion{CriterionAbility, CriterionGender, CriterionType, CriterionSeatPreference}, priority)

	_, err = ParsePriority([]string{"ability", "strength"})
	assert.Error(t, err)

	_, err = ParsePriority([]string{"ability", "ability"})
	assert.Error(t, err)
}

func TestCompare_AbilityDescending(t *testing.T) {
	strong := paddler("strong", 5, model.GenderKane, model.TypeRacer, "")
	weak := paddler("weak", 2, model.GenderKane, model.TypeRacer, "")

	assert.Equal(t, -1, Compare(strong, weak, []Criterion{CriterionAbility}))
	assert.Equal(t, 1, Compare(weak, strong, []Criterion{CriterionAbility}))
	assert.Equal(t, 0, Compare(strong, strong, []Criterion{CriterionAbility}))
}

func TestCompare_GenderLexicographic(t *testing.T) {
	kane := paddler("k", 3, model.GenderKane, model.TypeCasual, "")
	wahine := paddler("w", 3, model.GenderWahine, model.TypeCasual, "")

	// "kane" < "wahine" lexicographically, so kane sorts first.
	assert.Equal(t, -1, Compare(kane, wahine, []Criterion{CriterionGender}))
}

func TestCompare_TypeLexicographic(t *testing.T) {
	casual := paddler("c", 3, model.GenderKane, model.TypeCasual, "")
	racer := paddler("r", 3, model.GenderKane, model.TypeRacer, "")
	veryCasual := paddler("v", 3, model.GenderKane, model.TypeVeryCasual, "")

	// Plain string ordering: "casual" < "racer" < "very-casual".
	assert.Equal(t, -1, Compare(casual, racer, []Criterion{CriterionType}))
	assert.Equal(t, -1, Compare(racer, veryCasual, []Criterion{CriterionType}))
}

func TestCompare_SeatPreference(t *testing.T) {
	// Scenario: a paddler preferring seat 3 sorts before one with no
	// preference (3 < 999).
	prefersThree := paddler("three", 3, model.GenderKane, model.TypeCasual, "300000")
	noPreference := paddler("none", 3, model.GenderKane, model.TypeCasual, "000000")

	priority := []Criterion{CriterionSeatPreference}
	assert.Equal(t, -1, Compare(prefersThree, noPreference, priority))

	sorted := SortPaddlers([]model.Paddler{noPreference, prefersThree}, priority)
	assert.Equal(t, "three", sorted[0].ID)
}

func TestCompare_TieBreakChaining(t *testing.T) {
	a := paddler("a", 4, model.GenderKane, model.TypeRacer, "")
	b := paddler("b", 4, model.GenderWahine, model.TypeRacer, "")

	// Equal ability, so gender breaks the tie.
	priority := []Criterion{CriterionAbility, CriterionGender}
	assert.Equal(t, -1, Compare(a, b, priority))
	assert.Equal(t, 0, Compare(a, a, priority))
}

func TestSortPaddlers_Stability(t *testing.T) {
	// Two paddlers tying on every criterion keep their input order.
	first := paddler("first", 4, model.GenderKane, model.TypeRacer, "")
	second := paddler("second", 4, model.GenderKane, model.TypeRacer, "")
	stronger := paddler("stronger", 5, model.GenderKane, model.TypeRacer, "")

	sorted := SortPaddlers(
		[]model.Paddler{first, second, stronger},
		[]Criterion{CriterionAbility, CriterionGender},
	)

	require.Len(t, sorted, 3)
	assert.Equal(t, "stronger", sorted[0].ID)
	assert.Equal(t, "first", sorted[1].ID)
	assert.Equal(t, "second", sorted[2].ID)
}

func TestSortPaddlers_EmptyPriorityFallsBackToAbility(t *testing.T) {
	weak := paddler("weak", 1, model.GenderWahine, model.TypeCasual, "")
	strong := paddler("strong", 5, model.GenderKane, model.TypeRacer, "")

	sorted := SortPaddlers([]model.Paddler{weak, strong}, nil)
	assert.Equal(t, "strong", sorted[0].ID)
	assert.Equal(t, "weak", sorted[1].ID)
}

func TestSortPaddlers_DoesNotMutateInput(t *testing.T) {
	pool := []model.Paddler{
		paddler("weak", 1, model.GenderKane, model.TypeCasual, ""),
		paddler("strong", 5, model.GenderKane, model.TypeRacer, ""),
	}

	SortPaddlers(pool, []Criterion{CriterionAbility})
	assert.Equal(t, "weak", pool[0].ID)
}

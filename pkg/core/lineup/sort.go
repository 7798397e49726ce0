package lineup

import (
	"sort"

	"github.com/kaiolohia/roster/pkg/core/model"
)

// SortPaddlers returns a copy of the pool ordered by the priority list.
// An empty priority falls back to descending ability only. The sort is
// stable: paddlers tying on every criterion keep their input order.
func SortPaddlers(paddlers []model.Paddler, priority []Criterion) []model.Paddler {
	if len(priority) == 0 {
		priority = []Criterion{CriterionAbility}
	}

	sorted := make([]model.Paddler, len(paddlers))
	copy(sorted, paddlers)

	sort.SliceStable(sorted, func(i, j int) bool {
		return Compare(sorted[i], sorted[j], priority) < 0
	})

	return sorted
}

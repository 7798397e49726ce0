package services

import (
	"github.com/kaiolohia/roster/pkg/core/lineup"
	"github.com/kaiolohia/roster/pkg/core/model"
	"github.com/kaiolohia/roster/pkg/db"
)

func toModelPaddler(p db.Paddler) model.Paddler {
	return model.Paddler{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Gender:         model.Gender(p.Gender),
		Type:           model.PaddlerType(p.Type),
		Ability:        p.Ability,
		SeatPreference: p.SeatPreference,
		Email:          p.Email,
	}
}

func toModelCanoe(c db.Canoe) model.Canoe {
	return model.Canoe{
		ID:          c.ID,
		Name:        c.Name,
		Designation: c.Designation,
	}
}

func toLineupAssignments(rows []db.SeatAssignment) []lineup.Assignment {
	assignments := make([]lineup.Assignment, len(rows))
	for i, r := range rows {
		assignments[i] = lineup.Assignment{
			CanoeID:   r.CanoeID,
			Seat:      r.Seat,
			PaddlerID: r.PaddlerID,
		}
	}
	return assignments
}

func lockedSet(canoeIDs []string) map[string]bool {
	locked := make(map[string]bool, len(canoeIDs))
	for _, id := range canoeIDs {
		locked[id] = true
	}
	return locked
}

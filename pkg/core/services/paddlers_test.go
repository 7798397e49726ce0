package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kaiolohia/roster/pkg/db"
)

func validInput() PaddlerInput {
	return PaddlerInput{
		FirstName:      "Nainoa",
		LastName:       "K",
		Gender:         "kane",
		Type:           "racer",
		Ability:        4,
		SeatPreference: "612000",
	}
}

func TestCreatePaddler(t *testing.T) {
	store := &mockStore{}

	paddler, err := CreatePaddler(context.Background(), store, zap.NewNop(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, paddler.ID)
	assert.Equal(t, "Nainoa", paddler.FirstName)
	assert.Equal(t, "612000", paddler.SeatPreference)
	assert.Len(t, store.paddlers, 1)
}

func TestCreatePaddler_EmptyPreferenceDefaults(t *testing.T) {
	store := &mockStore{}
	input := validInput()
	input.SeatPreference = ""

	paddler, err := CreatePaddler(context.Background(), store, zap.NewNop(), input)
	require.NoError(t, err)
	assert.Equal(t, "000000", paddler.SeatPreference)
}

func TestCreatePaddler_Validation(t *testing.T) {
	store := &mockStore{}

	tests := []struct {
		name   string
		mutate func(*PaddlerInput)
	}{
		{"missing first name", func(in *PaddlerInput) { in.FirstName = "" }},
		{"invalid gender", func(in *PaddlerInput) { in.Gender = "male" }},
		{"invalid type", func(in *PaddlerInput) { in.Type = "competitive" }},
		{"ability too low", func(in *PaddlerInput) { in.Ability = 0 }},
		{"ability too high", func(in *PaddlerInput) { in.Ability = 6 }},
		{"bad seat preference", func(in *PaddlerInput) { in.SeatPreference = "712000" }},
		{"duplicate preference", func(in *PaddlerInput) { in.SeatPreference = "112000" }},
		{"bad email", func(in *PaddlerInput) { in.Email = "not-an-email" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := CreatePaddler(context.Background(), store, zap.NewNop(), input)
			assert.Error(t, err)
		})
	}

	assert.Empty(t, store.paddlers)
}

func TestUpdatePaddler_NotFound(t *testing.T) {
	store := &mockStore{}

	_, err := UpdatePaddler(context.Background(), store, zap.NewNop(), "ghost", validInput())
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestDeletePaddler_EvictsSeatsFirst(t *testing.T) {
	store := &mockStore{
		paddlers: []db.Paddler{testPaddler("A")},
		assignments: []db.SeatAssignment{
			{ID: "g1", EventID: "", CanoeID: "c1", Seat: 1, PaddlerID: "A"},
			{ID: "e1", EventID: "ev", CanoeID: "c1", Seat: 2, PaddlerID: "A"},
		},
		attendance: []db.Attendance{{PaddlerID: "A", EventID: "ev", Attending: true}},
	}

	err := DeletePaddler(context.Background(), store, zap.NewNop(), "A")
	require.NoError(t, err)

	assert.Empty(t, store.paddlers)
	assert.Empty(t, store.assignments)
	assert.Empty(t, store.attendance)
}

func TestCreateCanoe(t *testing.T) {
	store := &mockStore{}

	canoe, err := CreateCanoe(context.Background(), store, zap.NewNop(), CanoeInput{
		Name:        "Kai ʻElua",
		Designation: "OC6 #2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, canoe.ID)
	assert.Len(t, store.canoes, 1)

	_, err = CreateCanoe(context.Background(), store, zap.NewNop(), CanoeInput{})
	assert.Error(t, err)
}

func TestDeleteCanoe_RefusedWhileOccupied(t *testing.T) {
	store := &mockStore{
		canoes: []db.Canoe{{ID: "c1", Name: "Kai"}},
		assignments: []db.SeatAssignment{
			{ID: "a1", CanoeID: "c1", Seat: 1, PaddlerID: "A"},
		},
	}

	err := DeleteCanoe(context.Background(), store, zap.NewNop(), "c1")
	assert.Error(t, err)
	assert.Len(t, store.canoes, 1)
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimarySeatPreference(t *testing.T) {
	tests := []struct {
		name string
		pref string
		want int
	}{
		{"first seat wins", "612000", 6},
		{"single preference", "300000", 3},
		{"all zeros", "000000", NoSeatPreference},
		{"empty string", "", NoSeatPreference},
		{"seat one", "123456", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrimarySeatPreference(tt.pref))
		})
	}
}

func TestPreferredSeats(t *testing.T) {
	assert.Equal(t, []int{6, 1, 2}, PreferredSeats("612000"))
	assert.Empty(t, PreferredSeats("000000"))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, PreferredSeats("123456"))
}

func TestValidateSeatPreference(t *testing.T) {
	assert.NoError(t, ValidateSeatPreference(""))
	assert.NoError(t, ValidateSeatPreference("612000"))
	assert.NoError(t, ValidateSeatPreference("000000"))

	assert.Error(t, ValidateSeatPreference("61200"), "too short")
	assert.Error(t, ValidateSeatPreference("6120000"), "too long")
	assert.Error(t, ValidateSeatPreference("712000"), "seat out of range")
	assert.Error(t, ValidateSeatPreference("112000"), "duplicate seat")
	assert.Error(t, ValidateSeatPreference("61a000"), "non-digit")
}

func TestStatusForCount(t *testing.T) {
	assert.Equal(t, CanoeOpen, StatusForCount(0))
	assert.Equal(t, CanoeOpen, StatusForCount(5))
	assert.Equal(t, CanoeFull, StatusForCount(6))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, GenderKane.IsValid())
	assert.True(t, GenderWahine.IsValid())
	assert.False(t, Gender("male").IsValid())

	assert.True(t, TypeRacer.IsValid())
	assert.True(t, TypeVeryCasual.IsValid())
	assert.False(t, PaddlerType("competitive").IsValid())

	assert.True(t, EventPractice.IsValid())
	assert.False(t, EventType("regatta").IsValid())
}

package rooms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func room(capacity int64, floor string, features ...string) Room {
	return Room{
		ResourceName: "3.2",
		Name:         "3.2 The Hub",
		Email:        "room-3-2@example.com",
		Capacity:     capacity,
		Floor:        floor,
		Features:     features,
	}
}

func TestHasFeatures(t *testing.T) {
	tests := []struct {
		name      string
		room      Room
		requested []string
		expected  bool
	}{
		{
			name:      "EmptyRequestIsVacuouslyTrue",
			room:      room(4, "3"),
			requested: nil,
			expected:  true,
		},
		{
			name:      "SingleMatch",
			room:      room(4, "3", "TV", "Phone"),
			requested: []string{"TV"},
			expected:  true,
		},
		{
			name:      "AllRequestedMustMatch",
			room:      room(4, "3", "TV", "Phone"),
			requested: []string{"TV", "Sofas"},
			expected:  false,
		},
		{
			name:      "CaseSensitive",
			room:      room(4, "3", "TV"),
			requested: []string{"tv"},
			expected:  false,
		},
		{
			name:      "NoFeatureListFailsAnyRequest",
			room:      room(4, "3"),
			requested: []string{"TV"},
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasFeatures(tt.room, tt.requested))
		})
	}
}

func TestHasCapacity_Monotonic(t *testing.T) {
	r := room(6, "3")

	for n := int64(1); n <= 6; n++ {
		assert.True(t, HasCapacity(r, n), "capacity %d should fit", n)
	}
	for n := int64(7); n <= 10; n++ {
		assert.False(t, HasCapacity(r, n), "capacity %d should not fit", n)
	}
	assert.True(t, HasCapacity(r, 0), "no minimum requested")
}

func TestOnFloor(t *testing.T) {
	r := room(4, "3")

	assert.True(t, OnFloor(r, ""))
	assert.True(t, OnFloor(r, "3"))
	assert.False(t, OnFloor(r, "4"))
}

func TestMatches(t *testing.T) {
	r := room(8, "7", "TV", "Hangouts Meet")

	assert.True(t, Matches(r, FilterCriteria{}))
	assert.True(t, Matches(r, FilterCriteria{Features: []string{"TV"}, MinCapacity: 8, Floor: "7"}))
	assert.False(t, Matches(r, FilterCriteria{Features: []string{"TV"}, MinCapacity: 9, Floor: "7"}))
	assert.False(t, Matches(r, FilterCriteria{Features: []string{"Mac"}}))
	assert.False(t, Matches(r, FilterCriteria{Floor: "3"}))
}

func TestFindByName(t *testing.T) {
	list := []Room{room(4, "3"), {ResourceName: "7.1", Name: "Fawlty Towers", Email: "room-7-1@example.com"}}

	found, err := FindByName(list, "7.1")
	assert.NoError(t, err)
	assert.Equal(t, "room-7-1@example.com", found.Email)

	found, err = FindByName(list, "fawlty towers")
	assert.NoError(t, err)
	assert.Equal(t, "room-7-1@example.com", found.Email)

	_, err = FindByName(list, "9.9")
	assert.ErrorIs(t, err, ErrNotFound)
}

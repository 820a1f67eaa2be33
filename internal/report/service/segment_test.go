package service

import (
	"testing"

	"github.com/smallbiznis/salescope/internal/config"
	"github.com/smallbiznis/salescope/internal/report/domain"
	"github.com/stretchr/testify/assert"
)

func TestAgeWholeCalendarYears(t *testing.T) {
	now := date(2026, 6, 15)

	// Year difference only; the birthday itself does not matter.
	years, known := age(datePtr(1990, 12, 31), now)
	assert.True(t, known)
	assert.Equal(t, 36, years)

	years, known = age(datePtr(1990, 1, 1), now)
	assert.True(t, known)
	assert.Equal(t, 36, years)

	_, known = age(nil, now)
	assert.False(t, known)
}

func TestAgeGroupBands(t *testing.T) {
	bands := config.DefaultSegmentConfig().AgeBands

	tests := []struct {
		years int
		want  string
	}{
		{0, "Under 20"},
		{19, "Under 20"},
		{20, "20-29"},
		{29, "20-29"},
		{30, "30-39"},
		{49, "40-49"},
		{50, "50 and Above"},
		{97, "50 and Above"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ageGroup(tt.years, true, bands), "age %d", tt.years)
	}

	assert.Equal(t, domain.AgeGroupUnknown, ageGroup(33, false, bands))
}

func TestAgeGroupNoMatchingBand(t *testing.T) {
	bands := []config.AgeBand{
		{Label: "30-39", MinAge: 30, MaxAge: intPtr(39)},
	}
	assert.Equal(t, domain.AgeGroupUnknown, ageGroup(20, true, bands))
}

func intPtr(v int) *int { return &v }

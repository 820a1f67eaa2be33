package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthsBetween_CalendarBoundaries(t *testing.T) {
	// Day of month is ignored: only month boundaries count.
	assert.Equal(t, 1, MonthsBetween(date(2024, time.January, 31), date(2024, time.February, 1)))
	assert.Equal(t, 0, MonthsBetween(date(2024, time.January, 1), date(2024, time.January, 31)))
	assert.Equal(t, 12, MonthsBetween(date(2023, time.March, 15), date(2024, time.March, 1)))
	assert.Equal(t, 11, MonthsBetween(date(2023, time.March, 15), date(2024, time.February, 28)))
}

func TestMonthsBetween_Negative(t *testing.T) {
	assert.Equal(t, -2, MonthsBetween(date(2024, time.May, 1), date(2024, time.March, 31)))
}

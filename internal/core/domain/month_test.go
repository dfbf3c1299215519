package domain_test

import (
	"testing"
	"time"

	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestMonthKey_ClampDay(t *testing.T) {
	tests := []struct {
		name  string
		key   domain.MonthKey
		day   int
		want  int
	}{
		{"day 31 in a 30-day month", domain.MonthKey{Year: 2025, Month: time.June}, 31, 30},
		{"day 29 in non-leap February", domain.MonthKey{Year: 2025, Month: time.February}, 29, 28},
		{"day 29 in leap February", domain.MonthKey{Year: 2024, Month: time.February}, 29, 29},
		{"day within range", domain.MonthKey{Year: 2025, Month: time.January}, 15, 15},
		{"last day exactly", domain.MonthKey{Year: 2025, Month: time.January}, 31, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.ClampDay(tt.day))
		})
	}
}

func TestMonthKey_DateAtNoon(t *testing.T) {
	key := domain.MonthKey{Year: 2025, Month: time.April}

	got := key.DateAtNoon(31)

	// Clamped to April 30 and anchored at 12:00 UTC so a negative-offset
	// client still renders the same calendar day.
	assert.Equal(t, time.Date(2025, time.April, 30, 12, 0, 0, 0, time.UTC), got)
}

func TestMonthKey_Bounds(t *testing.T) {
	key := domain.MonthKey{Year: 2025, Month: time.February}

	start, end := key.Bounds()

	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, end.Before(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, key.Contains(end))
}

func TestMonthKey_String(t *testing.T) {
	assert.Equal(t, "2025-02", domain.MonthKey{Year: 2025, Month: time.February}.String())
	assert.Equal(t, "2025-11", domain.MonthKey{Year: 2025, Month: time.November}.String())
}

func TestParseMonthKey(t *testing.T) {
	key, err := domain.ParseMonthKey("2025-06")
	assert.NoError(t, err)
	assert.Equal(t, domain.MonthKey{Year: 2025, Month: time.June}, key)

	_, err = domain.ParseMonthKey("not-a-month")
	assert.Error(t, err)
}

func TestMonthKeyFromTime(t *testing.T) {
	key := domain.MonthKeyFromTime(time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, domain.MonthKey{Year: 2025, Month: time.December}, key)
}

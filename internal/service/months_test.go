package service_test

import (
	"testing"
	"time"

	"github.com/nutscript/helix-logs/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableMonths(t *testing.T) {
	now := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

	got := service.AvailableMonths(now, 3)

	require.Len(t, got, 3)
	assert.Equal(t, service.MonthOption{Month: 1, Year: 2025, Label: "Jan 2025"}, got[0])
	assert.Equal(t, service.MonthOption{Month: 12, Year: 2024, Label: "Dec 2024"}, got[1])
	assert.Equal(t, service.MonthOption{Month: 11, Year: 2024, Label: "Nov 2024"}, got[2])
}

func TestMonthDateRange(t *testing.T) {
	from, to := service.MonthDateRange(11, 2024)

	assert.Equal(t, time.Date(2024, time.November, 1, 1, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, time.December, 1, 1, 0, 0, 0, time.UTC), to)

	// December rolls into the next year.
	from, to = service.MonthDateRange(12, 2024)
	assert.Equal(t, time.Date(2024, time.December, 1, 1, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.January, 1, 1, 0, 0, 0, time.UTC), to)
}

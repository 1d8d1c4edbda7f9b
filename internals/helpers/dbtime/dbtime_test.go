package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayUTC(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// 2025-07-02 02:00 WIB = 2025-07-01 19:00 UTC → hari kanonik 07-01
	local := time.Date(2025, 7, 2, 2, 0, 0, 0, jakarta)
	got := DayUTC(local)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2025-07-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDay("2025-07-01T10:30:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDay("01/07/2025")
	assert.Error(t, err)
}

func TestExpandDays(t *testing.T) {
	start := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 3, 18, 0, 0, 0, time.UTC)

	days, err := ExpandDays(start, end)
	require.NoError(t, err)
	require.Len(t, days, 3, "inklusif kedua ujung")
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC), days[2])

	// satu hari
	days, err = ExpandDays(start, start)
	require.NoError(t, err)
	assert.Len(t, days, 1)

	// terbalik
	_, err = ExpandDays(end, start)
	assert.Error(t, err)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 7, 1, 23, 59, 59, 0, time.UTC)
	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, b.Add(time.Second)))
}

package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2025-01-24")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 24, 0, 0, 0, 0, time.UTC), day)

	_, err = ParseDay("24.01.2025")
	assert.Error(t, err)

	_, err = ParseDay("")
	assert.Error(t, err)
}

func TestLast7DayLabels(t *testing.T) {
	ref, err := ParseDay("2025-01-24")
	require.NoError(t, err)

	labels := Last7DayLabels(ref)
	require.Len(t, labels, 7)
	assert.Equal(t, "18.01", labels[0])
	assert.Equal(t, "24.01", labels[6])
	assert.Equal(t, []string{"18.01", "19.01", "20.01", "21.01", "22.01", "23.01", "24.01"}, labels)
}

func TestLast7DayLabelsAcrossMonthBoundary(t *testing.T) {
	ref, err := ParseDay("2025-03-02")
	require.NoError(t, err)

	labels := Last7DayLabels(ref)
	assert.Equal(t, []string{"24.02", "25.02", "26.02", "27.02", "28.02", "01.03", "02.03"}, labels)
}

func TestFormatLongDate(t *testing.T) {
	got, err := FormatLongDate("2025-04-13")
	require.NoError(t, err)
	assert.Equal(t, "13 April 2025", got)

	got, err = FormatLongDate("2024-12-01")
	require.NoError(t, err)
	assert.Equal(t, "1 December 2024", got)

	_, err = FormatLongDate("April 13, 2025")
	assert.Error(t, err)
}

func TestDayNavigation(t *testing.T) {
	day, err := ParseDay("2025-01-01")
	require.NoError(t, err)

	assert.Equal(t, "2024-12-31", FormatDay(PrevDay(day)))
	assert.Equal(t, "2025-01-02", FormatDay(NextDay(day)))
}

func TestCanGoForward(t *testing.T) {
	assert.True(t, CanGoForward("2025-01-24", "2025-01-25"))
	assert.False(t, CanGoForward("2025-01-25", "2025-01-25"))
	assert.False(t, CanGoForward("2025-01-26", "2025-01-25"))
	assert.False(t, CanGoForward("2025-01-24", ""))
}

func TestClampToLimit(t *testing.T) {
	assert.Equal(t, "2025-01-25", ClampToLimit("2025-02-01", "2025-01-25"))
	assert.Equal(t, "2025-01-20", ClampToLimit("2025-01-20", "2025-01-25"))
	assert.Equal(t, "2025-02-01", ClampToLimit("2025-02-01", ""))
}

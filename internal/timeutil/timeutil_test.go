package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationToHours(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    float64
		expectErr bool
	}{
		{name: "Half Past Seven", input: "07:30:00", expect: 7.5},
		{name: "Zero", input: "00:00:00", expect: 0},
		{name: "Seconds Granularity", input: "01:00:36", expect: 1.01},
		{name: "Empty", input: "", expectErr: true},
		{name: "Two Components", input: "07:30", expectErr: true},
		{name: "Non Numeric", input: "aa:bb:cc", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DurationToHours(tc.input)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrMalformedDuration)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expect, got, 1e-9)
		})
	}
}

func TestDurationToMinutesEmptyIsZero(t *testing.T) {
	got, err := DurationToMinutes("")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestDurationToMinutesMalformed(t *testing.T) {
	_, err := DurationToMinutes("not-a-duration")
	assert.ErrorIs(t, err, ErrMalformedDuration)
}

// Minutes and hours must agree up to unit scaling for every valid input.
func TestDurationUnitsAgree(t *testing.T) {
	for _, s := range []string{"00:00:00", "07:30:00", "01:00:36", "23:59:59", "00:01:30"} {
		hours, err := DurationToHours(s)
		require.NoError(t, err)
		minutes, err := DurationToMinutes(s)
		require.NoError(t, err)
		assert.InDelta(t, hours*60, minutes, 1e-9, s)
	}
}

func TestRoundTo2(t *testing.T) {
	assert.Equal(t, 1.01, RoundTo2(1.0051))
	assert.Equal(t, 4.16, RoundTo2(5.33-1.17))
	assert.Equal(t, -1.01, RoundTo2(-1.0051))
}

func TestNonRemHours(t *testing.T) {
	got, err := NonRemHours([]float64{8.0}, []float64{2.0})
	require.NoError(t, err)
	assert.Equal(t, []float64{6.0}, got)

	got, err = NonRemHours([]float64{5.33}, []float64{1.17})
	require.NoError(t, err)
	assert.Equal(t, []float64{4.16}, got)

	_, err = NonRemHours([]float64{8.0, 7.0}, []float64{2.0})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestActivityPercentages(t *testing.T) {
	testCases := []struct {
		name               string
		moderate, vigorous string
		expect             Percentages
	}{
		{name: "Zero Total", moderate: "00:00:00", vigorous: "00:00:00", expect: Percentages{}},
		{name: "One To Two", moderate: "00:30:00", vigorous: "01:00:00", expect: Percentages{ModeratePct: 33.33, VigorousPct: 66.67}},
		{name: "Absent Inputs", moderate: "", vigorous: "", expect: Percentages{}},
		{name: "Only Vigorous", moderate: "00:00:00", vigorous: "00:45:00", expect: Percentages{VigorousPct: 100}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ActivityPercentages(tc.moderate, tc.vigorous)
			require.NoError(t, err)
			assert.InDelta(t, tc.expect.ModeratePct, got.ModeratePct, 0.01)
			assert.InDelta(t, tc.expect.VigorousPct, got.VigorousPct, 0.01)
		})
	}
}

func TestIntensityBreakdown(t *testing.T) {
	b, err := IntensityBreakdown("00:10:00", "00:03:00", "00:02:00")
	require.NoError(t, err)
	assert.Equal(t, 10.0, b.TotalMinutes)
	assert.Equal(t, 3.0, b.ModerateMinutes)
	assert.Equal(t, 2.0, b.VigorousMinutes)
	assert.Equal(t, 5.0, b.LowMinutes)
	assert.True(t, b.HasEnoughActivity())

	// Classified time exceeding the total must not go negative.
	b, err = IntensityBreakdown("00:02:00", "00:02:00", "00:01:00")
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.LowMinutes)
	assert.False(t, b.HasEnoughActivity())

	b, err = IntensityBreakdown("", "", "")
	require.NoError(t, err)
	assert.Equal(t, Breakdown{}, b)
}

package timeutil

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedDuration is returned when a duration string is not three
// colon-separated integers ("HH:MM:SS").
var ErrMalformedDuration = errors.New("malformed duration, want HH:MM:SS")

// ErrLengthMismatch is returned when two metric sequences that must be
// index-aligned differ in length.
var ErrLengthMismatch = errors.New("sequence length mismatch")

// parseDuration splits "HH:MM:SS" into its integer components.
func parseDuration(s string) (h, m, sec int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, 0, 0, errors.Wrapf(ErrMalformedDuration, "%q", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, errors.Wrapf(ErrMalformedDuration, "%q", s)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

// DurationToHours converts an "HH:MM:SS" string to decimal hours. Malformed
// input, including the empty string, is an error; callers that want
// zero-for-absent semantics should use DurationToMinutes.
func DurationToHours(s string) (float64, error) {
	h, m, sec, err := parseDuration(s)
	if err != nil {
		return 0, err
	}
	return float64(h) + float64(m)/60 + float64(sec)/3600, nil
}

// DurationToMinutes converts an "HH:MM:SS" string to decimal minutes. An
// empty string means the metric is absent and yields 0; any other malformed
// input is an error.
func DurationToMinutes(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	hours, err := DurationToHours(s)
	if err != nil {
		return 0, err
	}
	return hours * 60, nil
}

// RoundTo2 rounds to two decimal places, half away from zero.
func RoundTo2(x float64) float64 {
	return math.Round(x*100) / 100
}

// NonRemHours derives the non-REM portion of each day's sleep by
// subtracting REM hours from total hours, rounding after the subtraction.
func NonRemHours(total, rem []float64) ([]float64, error) {
	if len(total) != len(rem) {
		return nil, errors.Wrapf(ErrLengthMismatch, "total %d, rem %d", len(total), len(rem))
	}
	out := make([]float64, len(total))
	for i := range total {
		out[i] = RoundTo2(total[i] - rem[i])
	}
	return out, nil
}

// Percentages is the moderate/vigorous share of classified activity time.
type Percentages struct {
	ModeratePct float64 `json:"moderatePct"`
	VigorousPct float64 `json:"vigorousPct"`
}

// ActivityPercentages splits classified activity time between moderate and
// vigorous intensity. A zero total yields {0, 0} rather than NaN.
func ActivityPercentages(moderate, vigorous string) (Percentages, error) {
	moderateMin, err := DurationToMinutes(moderate)
	if err != nil {
		return Percentages{}, err
	}
	vigorousMin, err := DurationToMinutes(vigorous)
	if err != nil {
		return Percentages{}, err
	}

	sum := moderateMin + vigorousMin
	if sum == 0 {
		return Percentages{}, nil
	}
	return Percentages{
		ModeratePct: RoundTo2(moderateMin / sum * 100),
		VigorousPct: RoundTo2(vigorousMin / sum * 100),
	}, nil
}

// MinActivityMinutes is the threshold below which a day is treated as
// having no meaningful activity data.
const MinActivityMinutes = 3

// Breakdown holds a day's intensity minutes split into pie slices. Low is
// the unclassified remainder of the total intensity time, clamped at zero.
type Breakdown struct {
	TotalMinutes    float64 `json:"totalMinutes"`
	ModerateMinutes float64 `json:"moderateMinutes"`
	VigorousMinutes float64 `json:"vigorousMinutes"`
	LowMinutes      float64 `json:"lowMinutes"`
}

// HasEnoughActivity reports whether the day clears the minimum-activity
// threshold for rendering the intensity chart.
func (b Breakdown) HasEnoughActivity() bool {
	return b.TotalMinutes >= MinActivityMinutes
}

// IntensityBreakdown splits total intensity time into vigorous, moderate
// and leftover low-intensity minutes. Empty inputs count as zero.
func IntensityBreakdown(total, moderate, vigorous string) (Breakdown, error) {
	totalMin, err := DurationToMinutes(total)
	if err != nil {
		return Breakdown{}, err
	}
	moderateMin, err := DurationToMinutes(moderate)
	if err != nil {
		return Breakdown{}, err
	}
	vigorousMin, err := DurationToMinutes(vigorous)
	if err != nil {
		return Breakdown{}, err
	}

	low := totalMin - (moderateMin + vigorousMin)
	if low < 0 {
		low = 0
	}
	return Breakdown{
		TotalMinutes:    totalMin,
		ModerateMinutes: moderateMin,
		VigorousMinutes: vigorousMin,
		LowMinutes:      low,
	}, nil
}

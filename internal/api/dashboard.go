package api

import (
	"net/http"
	"sync"

	"hrvibe/internal/charts"
	"hrvibe/internal/dateutil"
	"hrvibe/internal/domain"
	"hrvibe/internal/timeutil"
)

// Navigator drives the date picker: forward navigation is blocked at the
// latest day the backend has data for.
type Navigator struct {
	Current      string `json:"current"`
	Latest       string `json:"latest,omitempty"`
	Prev         string `json:"prev"`
	Next         string `json:"next,omitempty"`
	CanGoForward bool   `json:"canGoForward"`
}

// DashboardCharts holds the chart documents for the main view. A nil chart
// means its data was unavailable; the renderer shows a placeholder.
type DashboardCharts struct {
	Sleep       *charts.Options `json:"sleep,omitempty"`
	HeartRate   *charts.Options `json:"heartRate,omitempty"`
	BodyBattery *charts.Options `json:"bodyBattery,omitempty"`
	Stress      *charts.Options `json:"stress,omitempty"`
	Intensity   *charts.Options `json:"intensity,omitempty"`
}

// ActivityCard is the single-day activity summary grid.
type ActivityCard struct {
	Steps       float64              `json:"steps"`
	StepsGoal   float64              `json:"stepsGoal"`
	Floors      float64              `json:"floors"`
	FloorsGoal  float64              `json:"floorsGoal"`
	Distance    float64              `json:"distance"`
	Calories    float64              `json:"calories"`
	Duration    string               `json:"duration"`
	SweatLoss   float64              `json:"sweatLoss"`
	Percentages timeutil.Percentages `json:"percentages"`
}

// DashboardView is the composed view model for one reference date.
type DashboardView struct {
	Date        string          `json:"date"`
	DateDisplay string          `json:"dateDisplay"`
	Navigator   Navigator       `json:"navigator"`
	Charts      DashboardCharts `json:"charts"`
	Activity    *ActivityCard   `json:"activity,omitempty"`
	Warnings    []string        `json:"warnings,omitempty"`
}

var (
	sleepColors     = []string{"#8979FF", "#FF928A"}
	heartRateColors = []string{"#FF6961", "#FFB54C", "#3C50E0"}
	batteryColors   = []string{"#8CD47E", "#FFB54C"}
	stressColors    = []string{"#FF928A"}
)

// Dashboard composes the main view for a reference date. The recent-window
// and current-day fetches are issued concurrently; each failure is
// isolated and reported as a warning while the stale cell keeps rendering.
func (api *API) Dashboard(w http.ResponseWriter, r *http.Request) {
	log := api.log.With("method", "Dashboard")
	ctx := r.Context()

	limit, hasLimit := api.metrics.LatestDateAvailable()
	if !hasLimit {
		resolved, err := api.metrics.DateLimit(ctx)
		if err != nil {
			log.Warnw("failed to resolve date limit", "error", err)
		} else {
			limit = resolved
			hasLimit = resolved != ""
		}
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = limit
	}
	if date == "" {
		http.Error(w, "no date selected and no backend data available", http.StatusServiceUnavailable)
		return
	}
	if err := api.validate.Var(date, "datetime=2006-01-02"); err != nil {
		log.Errorf("validation error: %v", err)
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	date = dateutil.ClampToLimit(date, limit)

	var warnings []string
	var mu sync.Mutex
	warn := func(msg string) {
		mu.Lock()
		warnings = append(warnings, msg)
		mu.Unlock()
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := api.metrics.FetchRecent(ctx, date); err != nil {
			warn("recent summaries unavailable")
		}
	}()
	go func() {
		defer wg.Done()
		if err := api.metrics.FetchCurrentDay(ctx, date); err != nil {
			warn("day summary unavailable")
		}
	}()
	wg.Wait()

	// Loading is done for this request only once both fetches settled.
	view := DashboardView{Date: date}

	if display, err := dateutil.FormatLongDate(date); err == nil {
		view.DateDisplay = display
	}
	view.Navigator = api.buildNavigator(date)

	if recent, ok := api.metrics.Recent(); ok {
		refDay, err := dateutil.ParseDay(date)
		if err == nil {
			labels := dateutil.Last7DayLabels(refDay)
			view.Charts = api.buildTrendCharts(recent, labels, warn)
		}
	}
	if day, ok := api.metrics.CurrentDay(); ok {
		view.Activity, view.Charts.Intensity = api.buildActivity(day, warn)
	}

	mu.Lock()
	view.Warnings = warnings
	mu.Unlock()

	respondWithJSON(w, view)
}

func (api *API) buildNavigator(date string) Navigator {
	nav := Navigator{Current: date}
	if day, err := dateutil.ParseDay(date); err == nil {
		nav.Prev = dateutil.FormatDay(dateutil.PrevDay(day))
		if limit, ok := api.metrics.LatestDateAvailable(); ok {
			nav.Latest = limit
			nav.CanGoForward = dateutil.CanGoForward(date, limit)
			if nav.CanGoForward {
				nav.Next = dateutil.FormatDay(dateutil.NextDay(day))
			}
		}
	}
	return nav
}

func (api *API) buildTrendCharts(recent domain.RecentSummaries, labels []string, warn func(string)) DashboardCharts {
	var out DashboardCharts

	if sleep := api.buildSleepChart(recent, labels); sleep != nil {
		out.Sleep = sleep
	} else {
		warn("sleep chart unavailable")
	}

	hr := charts.LineOptions("Heart Rate", labels, heartRateColors, []charts.Series{
		{Name: "Max HR", Data: recent.HrMax},
		{Name: "Avg HR", Data: recent.HrAvg},
		{Name: "Resting HR", Data: recent.RhrAvg},
	})
	out.HeartRate = &hr

	bb := charts.LineOptions("Body Battery", labels, batteryColors, []charts.Series{
		{Name: "Max", Data: recent.BbMax},
		{Name: "Min", Data: recent.BbMin},
	})
	out.BodyBattery = &bb

	stress := charts.LineOptions("Stress", labels, stressColors, []charts.Series{
		{Name: "Avg Stress", Data: recent.StressAvg},
	})
	out.Stress = &stress

	return out
}

// buildSleepChart converts the window's sleep durations to hours and
// splits them into REM and non-REM stacked segments. Any malformed
// duration in the payload drops the whole chart rather than rendering a
// misaligned stack.
func (api *API) buildSleepChart(recent domain.RecentSummaries, labels []string) *charts.Options {
	total, err := durationsToHours(recent.SleepAvg)
	if err != nil {
		api.log.Warnw("bad sleep durations in recent summaries", "error", err)
		return nil
	}
	rem, err := durationsToHours(recent.RemSleepAvg)
	if err != nil {
		api.log.Warnw("bad REM durations in recent summaries", "error", err)
		return nil
	}
	nonRem, err := timeutil.NonRemHours(total, rem)
	if err != nil {
		api.log.Warnw("misaligned sleep sequences", "error", err)
		return nil
	}

	opts := charts.ColumnOptions("Sleep", labels, sleepColors, []charts.Series{
		{Name: "REM Sleep", Data: rem},
		{Name: "Non-REM Sleep", Data: nonRem},
	})
	return &opts
}

func (api *API) buildActivity(day domain.DaySummary, warn func(string)) (*ActivityCard, *charts.Options) {
	s := day.Summary

	card := &ActivityCard{
		Steps:      s.Steps,
		StepsGoal:  s.StepsGoal,
		Floors:     s.Floors,
		FloorsGoal: s.FloorsGoal,
		Distance:   timeutil.RoundTo2(s.ActivitiesDistance),
		Calories:   s.ActivitiesCalories,
		Duration:   s.IntensityTime,
		SweatLoss:  s.SweatLoss,
	}

	pct, err := timeutil.ActivityPercentages(s.ModerateActivityTime, s.VigorousActivityTime)
	if err != nil {
		warn("activity percentages unavailable")
	} else {
		card.Percentages = pct
	}

	breakdown, err := timeutil.IntensityBreakdown(s.IntensityTime, s.ModerateActivityTime, s.VigorousActivityTime)
	if err != nil {
		warn("intensity breakdown unavailable")
		return card, nil
	}
	if !breakdown.HasEnoughActivity() {
		return card, nil
	}

	pie := charts.PieOptions("Activity Intensity", []string{"Vigorous", "Moderate", "Low"},
		[]float64{breakdown.VigorousMinutes, breakdown.ModerateMinutes, breakdown.LowMinutes})
	return card, &pie
}

func durationsToHours(durations []string) ([]float64, error) {
	out := make([]float64, len(durations))
	for i, d := range durations {
		hours, err := timeutil.DurationToHours(d)
		if err != nil {
			return nil, err
		}
		out[i] = timeutil.RoundTo2(hours)
	}
	return out, nil
}

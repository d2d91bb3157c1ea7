// mockgarmin is a zero-infrastructure stand-in for the real backend. It
// generates a window of plausible wellness data at startup and serves the
// same endpoints the dashboard consumes, so the dashboard can be developed
// without a Garmin export pipeline or an OAuth app.
package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hrvibe/internal/api"
	"hrvibe/internal/dateutil"
	"hrvibe/internal/domain"
)

const daysInPast = 60

func main() {
	logger, _ := zap.NewProduction()
	log := logger.Sugar()

	port := os.Getenv("MOCK_PORT")
	if port == "" {
		port = ":8080"
	}

	days := generateDays(daysInPast)
	srv := &mockBackend{log: log, days: days}

	log.Infow("mock backend ready", "days", len(days), "latest", days[0].Day, "addr", port)
	if err := http.ListenAndServe(port, srv.routes()); err != nil {
		log.Fatal(err)
	}
}

type mockBackend struct {
	log *zap.SugaredLogger
	// days is ordered newest first, matching the real backend.
	days []domain.DaySummary
}

func (b *mockBackend) routes() *chi.Mux {
	r := chi.NewRouter()

	r.Get("/garmin/days", b.listDays)
	r.Get("/garmin/days/{day}", b.getDay)
	r.Get("/garmin/recent/{referenceDate}", b.getRecent)
	r.Get("/garmin/weeks", b.listWeeks)
	r.Get("/garmin/weeks/{referenceDate}", b.getWeek)
	r.Get("/garmin/months", b.listMonths)
	r.Get("/garmin/years", b.listYears)

	r.Get("/auth/admin", func(w http.ResponseWriter, r *http.Request) {
		// The mock has no OAuth app behind it, so every visitor is a
		// plain visitor.
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
	r.Get("/auth/guest", func(w http.ResponseWriter, r *http.Request) {
		api.WriteJSON(w, domain.Session{
			Username:  "guest",
			FirstName: "Guest",
			LastName:  "Visitor",
			City:      "Helsinki",
			Country:   "Finland",
			Role:      domain.RoleGuest,
		})
	})
	r.Post("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

func (b *mockBackend) listDays(w http.ResponseWriter, r *http.Request) {
	limit := 30
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > len(b.days) {
		limit = len(b.days)
	}
	api.WriteJSON(w, b.days[:limit])
}

func (b *mockBackend) getDay(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "day")
	for _, d := range b.days {
		if d.Day == day {
			api.WriteJSON(w, d)
			return
		}
	}
	http.NotFound(w, r)
}

func (b *mockBackend) getRecent(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "referenceDate")
	window := b.window(ref)
	if window == nil {
		http.NotFound(w, r)
		return
	}
	api.WriteJSON(w, window)
}

// window collects the 7 days ending at the reference date into the
// column-per-metric shape of the recent endpoint, oldest day first.
func (b *mockBackend) window(referenceDate string) *domain.RecentSummaries {
	refDay, err := dateutil.ParseDay(referenceDate)
	if err != nil {
		return nil
	}

	out := &domain.RecentSummaries{
		ID:        "recent-" + referenceDate,
		LatestDay: b.days[0].Day,
	}
	for i := domain.WindowDays - 1; i >= 0; i-- {
		day := dateutil.FormatDay(refDay.AddDate(0, 0, -i))
		summary := b.findDay(day)
		appendDay(out, summary)
	}
	return out
}

// appendDay pushes one day's metrics onto the end of every window column.
func appendDay(out *domain.RecentSummaries, s domain.Summary) {
	out.HrMin = append(out.HrMin, s.HrMin)
	out.HrMax = append(out.HrMax, s.HrMax)
	out.HrAvg = append(out.HrAvg, s.HrAvg)
	out.RhrMin = append(out.RhrMin, s.RhrMin)
	out.RhrMax = append(out.RhrMax, s.RhrMax)
	out.RhrAvg = append(out.RhrAvg, s.RhrAvg)
	out.InactiveHrMin = append(out.InactiveHrMin, s.InactiveHrMin)
	out.InactiveHrMax = append(out.InactiveHrMax, s.InactiveHrMax)
	out.InactiveHrAvg = append(out.InactiveHrAvg, s.InactiveHrAvg)

	out.CaloriesAvg = append(out.CaloriesAvg, s.CaloriesAvg)
	out.CaloriesGoal = append(out.CaloriesGoal, s.CaloriesGoal)
	out.CaloriesBmrAvg = append(out.CaloriesBmrAvg, s.CaloriesBmrAvg)
	out.CaloriesConsumedAvg = append(out.CaloriesConsumedAvg, s.CaloriesConsumedAvg)
	out.CaloriesActiveAvg = append(out.CaloriesActiveAvg, s.CaloriesActiveAvg)
	out.ActivitiesCalories = append(out.ActivitiesCalories, s.ActivitiesCalories)

	out.WeightMin = append(out.WeightMin, s.WeightMin)
	out.WeightMax = append(out.WeightMax, s.WeightMax)
	out.WeightAvg = append(out.WeightAvg, s.WeightAvg)

	out.HydrationGoal = append(out.HydrationGoal, s.HydrationGoal)
	out.HydrationIntake = append(out.HydrationIntake, s.HydrationIntake)
	out.HydrationAvg = append(out.HydrationAvg, s.HydrationAvg)
	out.SweatLoss = append(out.SweatLoss, s.SweatLoss)
	out.SweatLossAvg = append(out.SweatLossAvg, s.SweatLossAvg)

	out.BbMin = append(out.BbMin, s.BbMin)
	out.BbMax = append(out.BbMax, s.BbMax)
	out.StressAvg = append(out.StressAvg, s.StressAvg)

	out.RrMin = append(out.RrMin, s.RrMin)
	out.RrMax = append(out.RrMax, s.RrMax)
	out.RrWakingAvg = append(out.RrWakingAvg, s.RrWakingAvg)
	out.Spo2Min = append(out.Spo2Min, s.Spo2Min)
	out.Spo2Avg = append(out.Spo2Avg, s.Spo2Avg)

	out.SleepMin = append(out.SleepMin, s.SleepMin)
	out.SleepMax = append(out.SleepMax, s.SleepMax)
	out.SleepAvg = append(out.SleepAvg, s.SleepAvg)
	out.RemSleepMin = append(out.RemSleepMin, s.RemSleepMin)
	out.RemSleepMax = append(out.RemSleepMax, s.RemSleepMax)
	out.RemSleepAvg = append(out.RemSleepAvg, s.RemSleepAvg)

	out.StepsGoal = append(out.StepsGoal, s.StepsGoal)
	out.Steps = append(out.Steps, s.Steps)
	out.FloorsGoal = append(out.FloorsGoal, s.FloorsGoal)
	out.Floors = append(out.Floors, s.Floors)

	out.Activities = append(out.Activities, s.Activities)
	out.ActivitiesDistance = append(out.ActivitiesDistance, s.ActivitiesDistance)
	out.IntensityTimeGoal = append(out.IntensityTimeGoal, s.IntensityTimeGoal)
	out.IntensityTime = append(out.IntensityTime, s.IntensityTime)
	out.ModerateActivityTime = append(out.ModerateActivityTime, s.ModerateActivityTime)
	out.VigorousActivityTime = append(out.VigorousActivityTime, s.VigorousActivityTime)
}

func (b *mockBackend) findDay(day string) domain.Summary {
	for _, d := range b.days {
		if d.Day == day {
			return d.Summary
		}
	}
	// Gap days get a fresh random summary so the window stays full.
	return randomSummary()
}

func (b *mockBackend) listWeeks(w http.ResponseWriter, r *http.Request) {
	weeks := make([]domain.WeekSummary, 4)
	for i := range weeks {
		weeks[i] = domain.WeekSummary{
			ID:      fmt.Sprintf("week-%d", i),
			Week:    b.days[i*7].Day,
			Summary: randomSummary(),
		}
	}
	api.WriteJSON(w, weeks)
}

func (b *mockBackend) getWeek(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, domain.WeekSummary{
		ID:      "week-" + chi.URLParam(r, "referenceDate"),
		Week:    chi.URLParam(r, "referenceDate"),
		Summary: randomSummary(),
	})
}

func (b *mockBackend) listMonths(w http.ResponseWriter, r *http.Request) {
	year := time.Now().UTC().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			year = n
		}
	}
	months := make([]domain.MonthSummary, 12)
	for i := range months {
		months[i] = domain.MonthSummary{
			ID:      fmt.Sprintf("month-%d-%02d", year, i+1),
			Month:   fmt.Sprintf("%d-%02d", year, i+1),
			Summary: randomSummary(),
		}
	}
	api.WriteJSON(w, months)
}

func (b *mockBackend) listYears(w http.ResponseWriter, r *http.Request) {
	year := time.Now().UTC().Year()
	years := make([]domain.YearSummary, 3)
	for i := range years {
		years[i] = domain.YearSummary{
			ID:      fmt.Sprintf("year-%d", year-i),
			Year:    strconv.Itoa(year - i),
			Summary: randomSummary(),
		}
	}
	api.WriteJSON(w, years)
}

func generateDays(count int) []domain.DaySummary {
	days := make([]domain.DaySummary, count)
	today := time.Now().UTC()
	for i := 0; i < count; i++ {
		day := dateutil.FormatDay(today.AddDate(0, 0, -i))
		days[i] = domain.DaySummary{
			ID:      "day-" + day,
			Day:     day,
			Summary: randomSummary(),
		}
	}
	return days
}

func randomSummary() domain.Summary {
	weight := 70 + rand.Float64()*10
	consumed := 1800 + rand.Float64()*600

	return domain.Summary{
		HrMin:         float64(45 + rand.Intn(10)),
		HrMax:         float64(150 + rand.Intn(40)),
		HrAvg:         float64(60 + rand.Intn(20)),
		RhrMin:        float64(42 + rand.Intn(6)),
		RhrMax:        float64(55 + rand.Intn(10)),
		RhrAvg:        float64(48 + rand.Intn(8)),
		InactiveHrMin: float64(46 + rand.Intn(6)),
		InactiveHrMax: float64(70 + rand.Intn(15)),
		InactiveHrAvg: float64(55 + rand.Intn(10)),

		CaloriesAvg:         float64(2000 + rand.Intn(800)),
		CaloriesGoal:        2500,
		CaloriesBmrAvg:      float64(1600 + rand.Intn(200)),
		CaloriesConsumedAvg: &consumed,
		CaloriesActiveAvg:   float64(300 + rand.Intn(500)),
		ActivitiesCalories:  float64(200 + rand.Intn(600)),

		WeightMin: &weight,
		WeightMax: &weight,
		WeightAvg: &weight,

		HydrationGoal:   2500,
		HydrationIntake: float64(1500 + rand.Intn(1500)),
		HydrationAvg:    float64(1800 + rand.Intn(800)),
		SweatLoss:       float64(rand.Intn(900)),
		SweatLossAvg:    float64(300 + rand.Intn(400)),

		BbMin:     float64(10 + rand.Intn(30)),
		BbMax:     float64(70 + rand.Intn(30)),
		StressAvg: float64(20 + rand.Intn(40)),

		RrMin:       float64(10 + rand.Intn(4)),
		RrMax:       float64(16 + rand.Intn(6)),
		RrWakingAvg: float64(13 + rand.Intn(4)),
		Spo2Min:     float64(90 + rand.Intn(5)),
		Spo2Avg:     float64(95 + rand.Intn(4)),

		SleepMin:    randomDuration(5, 7),
		SleepMax:    randomDuration(8, 10),
		SleepAvg:    randomDuration(6, 9),
		RemSleepMin: randomDuration(0, 1),
		RemSleepMax: randomDuration(2, 3),
		RemSleepAvg: randomDuration(1, 2),

		StepsGoal:  10000,
		Steps:      float64(3000 + rand.Intn(12000)),
		FloorsGoal: 10,
		Floors:     float64(rand.Intn(25)),

		Activities:           float64(rand.Intn(3)),
		ActivitiesDistance:   rand.Float64() * 15,
		IntensityTimeGoal:    "02:30:00",
		IntensityTime:        randomDuration(0, 2),
		ModerateActivityTime: randomDuration(0, 1),
		VigorousActivityTime: randomDuration(0, 1),
	}
}

func randomDuration(minHours, maxHours int) string {
	h := minHours
	if maxHours > minHours {
		h += rand.Intn(maxHours - minHours)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, rand.Intn(60), rand.Intn(60))
}

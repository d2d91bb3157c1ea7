// Package metrics holds the fetched summary data the dashboard renders.
// The store is a set of latest-write-wins cells: each fetch replaces its
// cell wholesale on success and leaves the previous value in place on
// failure, so consumers keep rendering stale-but-present data through
// transient backend trouble.
package metrics

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"hrvibe/internal/domain"
	"hrvibe/internal/ports"
)

// Store caches the most recently fetched summaries. Fetches triggered by
// an older reference date than the latest request are discarded on
// completion, so an in-flight response can never overwrite a newer one.
type Store struct {
	data ports.DataService
	log  *zap.SugaredLogger

	mu sync.Mutex

	recentGen  uint64
	recent     *domain.RecentSummaries
	latestDate string
	hasLatest  bool

	currentGen uint64
	currentDay *domain.DaySummary

	daySummaries   []domain.DaySummary
	weekSummaries  []domain.WeekSummary
	monthSummaries []domain.MonthSummary
	yearSummaries  []domain.YearSummary
}

func NewStore(data ports.DataService, log *zap.SugaredLogger) *Store {
	return &Store{data: data, log: log}
}

// FetchRecent replaces the 7-day window for the given reference date. When
// the payload carries a latestDay it becomes the new date limit; when it
// does not, the limit is cleared and a warning is logged, but the fetch
// still counts as a success.
func (s *Store) FetchRecent(ctx context.Context, referenceDate string) error {
	s.mu.Lock()
	s.recentGen++
	gen := s.recentGen
	s.mu.Unlock()

	recent, err := s.data.RecentSummaries(ctx, referenceDate)
	if err != nil {
		s.log.Errorw("failed to fetch recent summaries", "referenceDate", referenceDate, "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.recentGen {
		s.log.Debugw("discarding stale recent summaries response", "referenceDate", referenceDate)
		return nil
	}

	s.recent = &recent
	if recent.LatestDay != "" {
		s.latestDate = recent.LatestDay
		s.hasLatest = true
	} else {
		s.log.Warnw("recent summaries payload has no latestDay", "referenceDate", referenceDate)
		s.latestDate = ""
		s.hasLatest = false
	}
	return nil
}

// FetchCurrentDay replaces the single-day summary for the given day.
func (s *Store) FetchCurrentDay(ctx context.Context, day string) error {
	s.mu.Lock()
	s.currentGen++
	gen := s.currentGen
	s.mu.Unlock()

	summary, err := s.data.DaySummary(ctx, day)
	if err != nil {
		s.log.Errorw("failed to fetch current day summary", "day", day, "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.currentGen {
		s.log.Debugw("discarding stale day summary response", "day", day)
		return nil
	}
	s.currentDay = &summary
	return nil
}

func (s *Store) FetchDaySummaries(ctx context.Context, limit int) error {
	summaries, err := s.data.DaySummaries(ctx, limit)
	if err != nil {
		s.log.Errorw("failed to fetch day summaries", "error", err)
		return err
	}
	s.mu.Lock()
	s.daySummaries = summaries
	s.mu.Unlock()
	return nil
}

func (s *Store) FetchWeekSummaries(ctx context.Context, limit int) error {
	summaries, err := s.data.WeekSummaries(ctx, limit)
	if err != nil {
		s.log.Errorw("failed to fetch week summaries", "error", err)
		return err
	}
	s.mu.Lock()
	s.weekSummaries = summaries
	s.mu.Unlock()
	return nil
}

func (s *Store) FetchMonthSummaries(ctx context.Context, year *int) error {
	summaries, err := s.data.MonthSummaries(ctx, year)
	if err != nil {
		s.log.Errorw("failed to fetch month summaries", "error", err)
		return err
	}
	s.mu.Lock()
	s.monthSummaries = summaries
	s.mu.Unlock()
	return nil
}

func (s *Store) FetchYearSummaries(ctx context.Context) error {
	summaries, err := s.data.YearSummaries(ctx)
	if err != nil {
		s.log.Errorw("failed to fetch year summaries", "error", err)
		return err
	}
	s.mu.Lock()
	s.yearSummaries = summaries
	s.mu.Unlock()
	return nil
}

// DateLimit asks the backend for the most recent day it has data for, by
// fetching a single day summary. The limit bounds forward navigation.
func (s *Store) DateLimit(ctx context.Context) (string, error) {
	days, err := s.data.DaySummaries(ctx, 1)
	if err != nil {
		return "", err
	}
	if len(days) == 0 {
		return "", nil
	}

	s.mu.Lock()
	s.latestDate = days[0].Day
	s.hasLatest = true
	s.mu.Unlock()

	return days[0].Day, nil
}

// Recent returns the stored 7-day window, or false before the first
// successful fetch.
func (s *Store) Recent() (domain.RecentSummaries, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.recent == nil {
		return domain.RecentSummaries{}, false
	}
	return *s.recent, true
}

// CurrentDay returns the stored single-day summary, or false before the
// first successful fetch.
func (s *Store) CurrentDay() (domain.DaySummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentDay == nil {
		return domain.DaySummary{}, false
	}
	return *s.currentDay, true
}

// LatestDateAvailable returns the most recent day the backend reported
// having data for, or false when it is unknown.
func (s *Store) LatestDateAvailable() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latestDate, s.hasLatest
}

func (s *Store) DaySummaries() []domain.DaySummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.daySummaries
}

func (s *Store) WeekSummaries() []domain.WeekSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weekSummaries
}

func (s *Store) MonthSummaries() []domain.MonthSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.monthSummaries
}

func (s *Store) YearSummaries() []domain.YearSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.yearSummaries
}

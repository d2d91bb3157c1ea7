package metrics

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hrvibe/internal/domain"
	"hrvibe/internal/mocks"
)

func setupStore() (*Store, *mocks.DataService) {
	logger, _ := zap.NewDevelopment()
	data := new(mocks.DataService)
	return NewStore(data, logger.Sugar()), data
}

func window(latestDay string) domain.RecentSummaries {
	return domain.RecentSummaries{
		ID:        "window-" + latestDay,
		LatestDay: latestDay,
		HrAvg:     []float64{60, 61, 62, 63, 64, 65, 66},
	}
}

func TestFetchRecentReplacesWholesale(t *testing.T) {
	store, data := setupStore()
	data.On("RecentSummaries", mock.Anything, "2025-01-24").Return(window("2025-01-25"), nil)

	require.NoError(t, store.FetchRecent(context.Background(), "2025-01-24"))

	recent, ok := store.Recent()
	require.True(t, ok)
	assert.Equal(t, "window-2025-01-25", recent.ID)

	latest, ok := store.LatestDateAvailable()
	require.True(t, ok)
	assert.Equal(t, "2025-01-25", latest)
}

func TestFetchRecentMissingLatestDayStillSucceeds(t *testing.T) {
	store, data := setupStore()
	data.On("RecentSummaries", mock.Anything, "2025-01-24").Return(window(""), nil)

	require.NoError(t, store.FetchRecent(context.Background(), "2025-01-24"))

	_, ok := store.Recent()
	assert.True(t, ok)
	_, ok = store.LatestDateAvailable()
	assert.False(t, ok)
}

func TestFetchRecentFailureKeepsPriorWindow(t *testing.T) {
	store, data := setupStore()
	data.On("RecentSummaries", mock.Anything, "2025-01-24").Return(window("2025-01-25"), nil).Once()
	data.On("RecentSummaries", mock.Anything, "2025-01-20").Return(domain.RecentSummaries{}, errors.New("backend down"))

	require.NoError(t, store.FetchRecent(context.Background(), "2025-01-24"))
	require.Error(t, store.FetchRecent(context.Background(), "2025-01-20"))

	recent, ok := store.Recent()
	require.True(t, ok)
	assert.Equal(t, "window-2025-01-25", recent.ID, "failed fetch must not clear the prior window")

	latest, ok := store.LatestDateAvailable()
	require.True(t, ok)
	assert.Equal(t, "2025-01-25", latest)
}

func TestFetchRecentStaleResponseDiscarded(t *testing.T) {
	store, data := setupStore()

	release := make(chan struct{})
	data.On("RecentSummaries", mock.Anything, "2025-01-20").Run(func(mock.Arguments) {
		<-release
	}).Return(window("2025-01-20"), nil)
	data.On("RecentSummaries", mock.Anything, "2025-01-24").Return(window("2025-01-25"), nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		store.FetchRecent(context.Background(), "2025-01-20")
	}()

	// The newer request completes while the older one is still in flight.
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, store.FetchRecent(context.Background(), "2025-01-24"))
	close(release)
	wg.Wait()

	recent, ok := store.Recent()
	require.True(t, ok)
	assert.Equal(t, "window-2025-01-25", recent.ID, "stale response must not overwrite the newer window")
}

func TestFetchCurrentDay(t *testing.T) {
	store, data := setupStore()
	day := domain.DaySummary{ID: "d1", Day: "2025-01-24"}
	data.On("DaySummary", mock.Anything, "2025-01-24").Return(day, nil)

	_, ok := store.CurrentDay()
	assert.False(t, ok, "store starts empty")

	require.NoError(t, store.FetchCurrentDay(context.Background(), "2025-01-24"))

	got, ok := store.CurrentDay()
	require.True(t, ok)
	assert.Equal(t, "2025-01-24", got.Day)
}

func TestFetchFailuresAreIsolated(t *testing.T) {
	store, data := setupStore()
	data.On("RecentSummaries", mock.Anything, "2025-01-24").Return(domain.RecentSummaries{}, errors.New("backend down"))
	data.On("DaySummary", mock.Anything, "2025-01-24").Return(domain.DaySummary{ID: "d1", Day: "2025-01-24"}, nil)

	assert.Error(t, store.FetchRecent(context.Background(), "2025-01-24"))
	assert.NoError(t, store.FetchCurrentDay(context.Background(), "2025-01-24"))

	_, ok := store.CurrentDay()
	assert.True(t, ok, "day summary success survives the recent-window failure")
}

func TestDateLimit(t *testing.T) {
	store, data := setupStore()
	data.On("DaySummaries", mock.Anything, 1).Return([]domain.DaySummary{{ID: "d", Day: "2025-01-25"}}, nil)

	limit, err := store.DateLimit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2025-01-25", limit)

	latest, ok := store.LatestDateAvailable()
	require.True(t, ok)
	assert.Equal(t, "2025-01-25", latest)
}

func TestDateLimitEmptyBackend(t *testing.T) {
	store, data := setupStore()
	data.On("DaySummaries", mock.Anything, 1).Return([]domain.DaySummary{}, nil)

	limit, err := store.DateLimit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, limit)

	_, ok := store.LatestDateAvailable()
	assert.False(t, ok)
}

func TestFetchSummaryLists(t *testing.T) {
	store, data := setupStore()
	data.On("DaySummaries", mock.Anything, 30).Return([]domain.DaySummary{{ID: "d"}}, nil)
	data.On("WeekSummaries", mock.Anything, 10).Return([]domain.WeekSummary{{ID: "w"}}, nil)
	data.On("MonthSummaries", mock.Anything, (*int)(nil)).Return([]domain.MonthSummary{{ID: "m"}}, nil)
	data.On("YearSummaries", mock.Anything).Return([]domain.YearSummary{{ID: "y"}}, nil)

	ctx := context.Background()
	require.NoError(t, store.FetchDaySummaries(ctx, 30))
	require.NoError(t, store.FetchWeekSummaries(ctx, 10))
	require.NoError(t, store.FetchMonthSummaries(ctx, nil))
	require.NoError(t, store.FetchYearSummaries(ctx))

	assert.Len(t, store.DaySummaries(), 1)
	assert.Len(t, store.WeekSummaries(), 1)
	assert.Len(t, store.MonthSummaries(), 1)
	assert.Len(t, store.YearSummaries(), 1)
}

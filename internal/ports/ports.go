package ports

import (
	"context"

	"hrvibe/internal/domain"
)

// DataService covers the read-only summary endpoints of the backend.
type DataService interface {
	DaySummaries(ctx context.Context, limit int) ([]domain.DaySummary, error)
	DaySummary(ctx context.Context, day string) (domain.DaySummary, error)
	RecentSummaries(ctx context.Context, referenceDate string) (domain.RecentSummaries, error)
	WeekSummaries(ctx context.Context, limit int) ([]domain.WeekSummary, error)
	WeekSummary(ctx context.Context, referenceDate string) (domain.WeekSummary, error)
	MonthSummaries(ctx context.Context, year *int) ([]domain.MonthSummary, error)
	YearSummaries(ctx context.Context) ([]domain.YearSummary, error)
}

// AuthService covers the backend's session endpoints.
type AuthService interface {
	CheckAdmin(ctx context.Context) (domain.Session, error)
	CheckGuest(ctx context.Context) (domain.Session, error)
	Logout(ctx context.Context) error
	AdminLoginURL() string
}

// Package mocks provides testify mocks for the port interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hrvibe/internal/domain"
)

type DataService struct {
	mock.Mock
}

func (m *DataService) DaySummaries(ctx context.Context, limit int) ([]domain.DaySummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DaySummary), args.Error(1)
}

func (m *DataService) DaySummary(ctx context.Context, day string) (domain.DaySummary, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(domain.DaySummary), args.Error(1)
}

func (m *DataService) RecentSummaries(ctx context.Context, referenceDate string) (domain.RecentSummaries, error) {
	args := m.Called(ctx, referenceDate)
	return args.Get(0).(domain.RecentSummaries), args.Error(1)
}

func (m *DataService) WeekSummaries(ctx context.Context, limit int) ([]domain.WeekSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeekSummary), args.Error(1)
}

func (m *DataService) WeekSummary(ctx context.Context, referenceDate string) (domain.WeekSummary, error) {
	args := m.Called(ctx, referenceDate)
	return args.Get(0).(domain.WeekSummary), args.Error(1)
}

func (m *DataService) MonthSummaries(ctx context.Context, year *int) ([]domain.MonthSummary, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthSummary), args.Error(1)
}

func (m *DataService) YearSummaries(ctx context.Context) ([]domain.YearSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.YearSummary), args.Error(1)
}

type AuthService struct {
	mock.Mock
}

func (m *AuthService) CheckAdmin(ctx context.Context) (domain.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *AuthService) CheckGuest(ctx context.Context) (domain.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *AuthService) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *AuthService) AdminLoginURL() string {
	args := m.Called()
	return args.String(0)
}

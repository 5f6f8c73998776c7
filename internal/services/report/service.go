// Package report builds the daily settlement report and the cash-flow
// forecast served by the dashboard.
package report

import (
	"context"
	"time"

	"posrecon/internal/repositories"
	"posrecon/internal/services/reference"
	"posrecon/internal/settlement"
	"posrecon/internal/validation"
)

type Service interface {
	Daily(ctx context.Context, date time.Time) (*settlement.DailyReport, error)
	// CashFlow forecasts expected inflows for the next `days` days
	// starting today. The horizon is capped; 0 means the default.
	CashFlow(ctx context.Context, days int) ([]settlement.ForecastEntry, error)
}

type service struct {
	reference reference.Service
}

func NewService(referenceService reference.Service) Service {
	return &service{reference: referenceService}
}

func (s *service) Daily(ctx context.Context, date time.Time) (*settlement.DailyReport, error) {
	engine, err := s.reference.Engine(ctx)
	if err != nil {
		return nil, err
	}

	// The repository narrows by day; the engine's own date filter then
	// handles the date-only comparison.
	txns, err := repositories.GetTransactionsByDay(date)
	if err != nil {
		return nil, err
	}
	return engine.GenerateDailyReport(txns, date)
}

func (s *service) CashFlow(ctx context.Context, days int) ([]settlement.ForecastEntry, error) {
	if days > validation.MaxForecastDays {
		days = validation.MaxForecastDays
	}

	engine, err := s.reference.Engine(ctx)
	if err != nil {
		return nil, err
	}

	txns, err := repositories.GetAllTransactions()
	if err != nil {
		return nil, err
	}
	return engine.Forecast(txns, time.Now(), days)
}

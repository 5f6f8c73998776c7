// Package simulation answers what-if questions: what a sale would net
// on a given terminal, which of two setups is cheaper, and which
// terminal to route a sale through.
package simulation

import (
	"context"
	"fmt"
	"time"

	"posrecon/internal/repositories"
	"posrecon/internal/services/reference"
	"posrecon/internal/settlement"
	"posrecon/internal/validation"
)

type Service interface {
	Calculate(ctx context.Context, req CalculateRequest) (*settlement.Result, error)
	Compare(ctx context.Context, req CompareRequest) (*settlement.Comparison, error)
	Recommend(ctx context.Context, req RecommendRequest) ([]settlement.Recommendation, error)
}

type service struct {
	reference reference.Service
}

func NewService(referenceService reference.Service) Service {
	return &service{reference: referenceService}
}

func (s *service) Calculate(ctx context.Context, req CalculateRequest) (*settlement.Result, error) {
	v := validation.New()
	v.CalculationInput(req.GrossAmount, req.CardType, req.InstallmentCount)
	v.Required("terminal_id", req.TerminalID)
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, v.Error())
	}

	engine, err := s.reference.Engine(ctx)
	if err != nil {
		return nil, err
	}

	return engine.Calculate(settlement.Input{
		GrossAmount:      req.GrossAmount,
		CardType:         req.CardType,
		InstallmentCount: req.InstallmentCount,
		TerminalID:       req.TerminalID,
		Date:             orNow(req.Date),
	})
}

func (s *service) Compare(ctx context.Context, req CompareRequest) (*settlement.Comparison, error) {
	v := validation.New()
	v.Range("gross_amount", req.GrossAmount, validation.MinGrossAmount, validation.MaxGrossAmount)
	v.CardType("card_type", req.CardType)
	v.Required("scenario1.terminal_id", req.Scenario1.TerminalID)
	v.Required("scenario2.terminal_id", req.Scenario2.TerminalID)
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, v.Error())
	}

	engine, err := s.reference.Engine(ctx)
	if err != nil {
		return nil, err
	}

	return engine.Compare(req.GrossAmount, req.CardType, req.Scenario1, req.Scenario2, orNow(req.Date))
}

func (s *service) Recommend(ctx context.Context, req RecommendRequest) ([]settlement.Recommendation, error) {
	v := validation.New()
	v.CalculationInput(req.GrossAmount, req.CardType, req.InstallmentCount)
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, v.Error())
	}

	candidates := req.TerminalIDs
	if len(candidates) == 0 {
		terminals, err := repositories.GetActiveTerminals()
		if err != nil {
			return nil, err
		}
		for _, t := range terminals {
			candidates = append(candidates, t.ID)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	engine, err := s.reference.Engine(ctx)
	if err != nil {
		return nil, err
	}

	return engine.Recommend(req.GrossAmount, req.CardType, req.InstallmentCount, candidates, time.Now())
}

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

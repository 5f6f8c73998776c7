package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"posrecon/internal/models"
	"posrecon/internal/repositories"
	"posrecon/internal/services/reference"
	"posrecon/internal/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*models.Transaction, error)
	Get(ctx context.Context, id string) (*models.Transaction, error)
	List(ctx context.Context, limit, offset int) ([]models.Transaction, int64, error)
	Delete(ctx context.Context, id string) error
	// Recalculate reruns the settlement engine over every stored
	// transaction, persists the computed fields and promotes pending
	// records to processed. Returns the number of records updated.
	Recalculate(ctx context.Context) (int, error)
}

type service struct {
	reference reference.Service
}

func NewService(referenceService reference.Service) Service {
	return &service{reference: referenceService}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*models.Transaction, error) {
	if req.InstallmentCount == 0 {
		req.InstallmentCount = 1
	}
	if req.Date.IsZero() {
		req.Date = time.Now()
	}

	txn := &models.Transaction{
		ID:               uuid.NewString(),
		Date:             req.Date,
		GrossAmount:      req.GrossAmount,
		CardType:         req.CardType,
		InstallmentCount: req.InstallmentCount,
		TerminalID:       req.TerminalID,
		Status:           models.StatusPending,
		CardLastFour:     req.CardLastFour,
		AuthCode:         req.AuthCode,
		Metadata:         req.Metadata,
	}

	v := validation.New()
	v.Transaction(txn)
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, v.Error())
	}

	terminal, err := repositories.GetTerminal(req.TerminalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTerminal, req.TerminalID)
		}
		return nil, err
	}
	txn.BranchID = terminal.BranchID
	txn.BankID = terminal.BankID

	if err := repositories.CreateTransaction(txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return txn, nil
}

func (s *service) Get(ctx context.Context, id string) (*models.Transaction, error) {
	txn, err := repositories.GetTransaction(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return txn, nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]models.Transaction, int64, error) {
	return repositories.GetTransactions(limit, offset)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return repositories.DeleteTransaction(id)
}

func (s *service) Recalculate(ctx context.Context) (int, error) {
	engine, err := s.reference.Engine(ctx)
	if err != nil {
		return 0, err
	}

	txns, err := repositories.GetAllTransactions()
	if err != nil {
		return 0, err
	}

	calculated, err := engine.CalculateBatch(txns)
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range calculated {
		txn := calculated[i]
		if txn.Status == models.StatusPending {
			txn.Status = models.StatusProcessed
		}
		if err := repositories.UpdateTransaction(&txn); err != nil {
			return updated, fmt.Errorf("failed to update transaction %s: %w", txn.ID, err)
		}
		updated++
	}
	return updated, nil
}

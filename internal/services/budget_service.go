package services

import (
	"context"

	apperrors "budgetmaster/internal/errors"
	"budgetmaster/internal/ledger"
	"budgetmaster/internal/models"
	"budgetmaster/internal/store"
)

// BudgetInput holds the fields submitted by the budget form.
type BudgetInput struct {
	Category models.BudgetCategory
	Amount   float64
	Date     string
}

// budgetService handles budget-related business logic.
type budgetService struct {
	records recordService[models.BudgetItem]
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(repo RecordStore[models.BudgetItem]) BudgetServicer {
	return &budgetService{records: recordService[models.BudgetItem]{repo: repo}}
}

// CreateBudgetItem validates and stores a new budget allocation.
func (s *budgetService) CreateBudgetItem(ctx context.Context, userID string, in BudgetInput) (*models.BudgetItem, error) {
	if !in.Category.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category must be one of the budget categories")
	}
	amount, err := requirePositiveAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	date, err := requireDate(in.Date)
	if err != nil {
		return nil, err
	}

	item := &models.BudgetItem{
		Category: in.Category,
		Entry:    models.Entry{Amount: amount, Date: date},
	}
	if err := s.records.add(ctx, userID, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListBudgetItems returns every budget item of the user.
func (s *budgetService) ListBudgetItems(ctx context.Context, userID string) (store.Snapshot[models.BudgetItem], error) {
	return s.records.list(ctx, userID)
}

// DeleteBudgetItem removes one budget item.
func (s *budgetService) DeleteBudgetItem(ctx context.Context, userID, id string) error {
	return s.records.remove(ctx, userID, id)
}

// BudgetView returns the budget items of period with per-category totals.
func (s *budgetService) BudgetView(ctx context.Context, userID string, period ledger.Period) (*RecordView[models.BudgetItem], error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	snap, err := s.records.list(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildView(snap, period, fixedUniverse[models.BudgetItem](models.Names(models.BudgetCategories))), nil
}

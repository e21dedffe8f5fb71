package services

import (
	"context"

	apperrors "budgetmaster/internal/errors"
	"budgetmaster/internal/ledger"
	"budgetmaster/internal/models"
	"budgetmaster/internal/store"
)

// ExpenseInput holds the fields submitted by the expense form.
type ExpenseInput struct {
	Category models.ExpenseCategory
	Amount   float64
	Date     string
}

// expenseService handles expense-related business logic.
type expenseService struct {
	records recordService[models.Expense]
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(repo RecordStore[models.Expense]) ExpenseServicer {
	return &expenseService{records: recordService[models.Expense]{repo: repo}}
}

// CreateExpense validates and stores a new expense.
func (s *expenseService) CreateExpense(ctx context.Context, userID string, in ExpenseInput) (*models.Expense, error) {
	if !in.Category.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category must be one of the expense categories")
	}
	amount, err := requirePositiveAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	date, err := requireDate(in.Date)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Category: in.Category,
		Entry:    models.Entry{Amount: amount, Date: date},
	}
	if err := s.records.add(ctx, userID, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses returns every expense of the user.
func (s *expenseService) ListExpenses(ctx context.Context, userID string) (store.Snapshot[models.Expense], error) {
	return s.records.list(ctx, userID)
}

// DeleteExpense removes one expense.
func (s *expenseService) DeleteExpense(ctx context.Context, userID, id string) error {
	return s.records.remove(ctx, userID, id)
}

// ExpenseView returns the expenses of period with per-category totals.
func (s *expenseService) ExpenseView(ctx context.Context, userID string, period ledger.Period) (*RecordView[models.Expense], error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	snap, err := s.records.list(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildView(snap, period, fixedUniverse[models.Expense](models.Names(models.ExpenseCategories))), nil
}

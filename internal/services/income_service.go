package services

import (
	"context"
	"strings"

	apperrors "budgetmaster/internal/errors"
	"budgetmaster/internal/ledger"
	"budgetmaster/internal/models"
	"budgetmaster/internal/store"
)

// IncomeInput holds the fields submitted by the income form. A non-empty
// CustomSource replaces Source.
type IncomeInput struct {
	Source       string
	CustomSource string
	Amount       float64
	Date         string
}

// incomeService handles income-related business logic.
type incomeService struct {
	records recordService[models.Income]
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(repo RecordStore[models.Income]) IncomeServicer {
	return &incomeService{records: recordService[models.Income]{repo: repo}}
}

// CreateIncome validates and stores a new income entry.
func (s *incomeService) CreateIncome(ctx context.Context, userID string, in IncomeInput) (*models.Income, error) {
	source := strings.TrimSpace(in.CustomSource)
	if source == "" {
		source = strings.TrimSpace(in.Source)
	}
	if source == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "source is required")
	}
	amount, err := requirePositiveAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	date, err := requireDate(in.Date)
	if err != nil {
		return nil, err
	}

	income := &models.Income{
		Source: source,
		Entry:  models.Entry{Amount: amount, Date: date},
	}
	if err := s.records.add(ctx, userID, income); err != nil {
		return nil, err
	}
	return income, nil
}

// ListIncome returns every income entry of the user.
func (s *incomeService) ListIncome(ctx context.Context, userID string) (store.Snapshot[models.Income], error) {
	return s.records.list(ctx, userID)
}

// DeleteIncome removes one income entry.
func (s *incomeService) DeleteIncome(ctx context.Context, userID, id string) error {
	return s.records.remove(ctx, userID, id)
}

// IncomeView returns the income of period grouped by source. Free-text
// sources seen in the period get their own slice after the presets. Yearly
// views also carry a per-month breakdown.
func (s *incomeService) IncomeView(ctx context.Context, userID string, period ledger.Period) (*RecordView[models.Income], error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	snap, err := s.records.list(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := buildView(snap, period, incomeUniverse)
	if period.IsYearly() {
		byMonth := ledger.AggregateByMonth(view.Records, recordAmount[models.Income])
		view.ByMonth = &byMonth
	}
	return view, nil
}

func incomeUniverse(records []models.Income) []string {
	return ledger.ObservedUniverse(models.IncomeSources, records, groupKey[models.Income])
}

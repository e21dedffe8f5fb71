package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "budgetmaster/internal/errors"
	"budgetmaster/internal/ledger"
	"budgetmaster/internal/models"
	"budgetmaster/internal/store"
)

// GoalInput holds the fields submitted by the goal form. Nil bounds take
// the form defaults.
type GoalInput struct {
	Name       string
	Category   models.GoalCategory
	Amount     float64
	Min        *float64
	Max        *float64
	PeriodType ledger.PeriodKind
	Month      *int
	Year       int
}

// GoalView is the goal list for a selection with a per-goal chart.
type GoalView struct {
	Selection ledger.GoalSelection `json:"selection"`
	Revision  int64                `json:"revision"`
	Goals     []models.Goal        `json:"goals"`
	Chart     ledger.Chart         `json:"chart"`
	Total     float64              `json:"total"`
}

// goalService handles goal-related business logic.
type goalService struct {
	records recordService[models.Goal]
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(repo RecordStore[models.Goal]) GoalServicer {
	return &goalService{records: recordService[models.Goal]{repo: repo}}
}

// CreateGoal validates and stores a new goal. Progress always starts at zero.
func (s *goalService) CreateGoal(ctx context.Context, userID string, in GoalInput) (*models.Goal, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if !in.Category.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category must be one of the goal categories")
	}

	lo, hi := float64(models.DefaultGoalMin), float64(models.DefaultGoalMax)
	if in.Min != nil {
		lo = ledger.Finite(*in.Min)
	}
	if in.Max != nil {
		hi = ledger.Finite(*in.Max)
	}
	if lo > hi {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "min must not exceed max")
	}
	amount, err := requirePositiveAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	if amount < lo || amount > hi {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must lie between min and max")
	}

	sel := ledger.GoalSelection{Kind: in.PeriodType, Year: in.Year}
	if in.Month != nil {
		sel.Month = *in.Month
	}
	if err := sel.Validate(); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	goal := &models.Goal{
		Name:       name,
		Category:   in.Category,
		Amount:     amount,
		Min:        lo,
		Max:        hi,
		PeriodType: in.PeriodType,
		Year:       in.Year,
	}
	if in.PeriodType == ledger.Monthly {
		month := sel.Month
		goal.Month = &month
	}
	if err := s.records.add(ctx, userID, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// ListGoals returns every goal of the user.
func (s *goalService) ListGoals(ctx context.Context, userID string) (store.Snapshot[models.Goal], error) {
	return s.records.list(ctx, userID)
}

// DeleteGoal removes one goal.
func (s *goalService) DeleteGoal(ctx context.Context, userID, id string) error {
	return s.records.remove(ctx, userID, id)
}

// GoalView returns the goals matching sel.
func (s *goalService) GoalView(ctx context.Context, userID string, sel ledger.GoalSelection) (*GoalView, error) {
	if err := sel.Validate(); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidPeriod, err.Error())
	}
	snap, err := s.records.list(ctx, userID)
	if err != nil {
		return nil, err
	}

	goals := ledger.FilterGoals(snap.Records, sel)
	chart, total := goalChart(goals)
	return &GoalView{
		Selection: sel,
		Revision:  snap.Revision,
		Goals:     goals,
		Chart:     chart,
		Total:     total,
	}, nil
}

// goalChart plots one bar per goal, labelled by name.
func goalChart(goals []models.Goal) (ledger.Chart, float64) {
	chart := ledger.Chart{
		Labels: make([]string, len(goals)),
		Data:   make([]float64, len(goals)),
	}
	total := decimal.Zero
	for i, g := range goals {
		amount := ledger.Finite(g.Amount)
		chart.Labels[i] = g.Name
		chart.Data[i] = amount
		total = total.Add(decimal.NewFromFloat(amount))
	}
	return chart, total.InexactFloat64()
}

package services

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	apperrors "budgetmaster/internal/errors"
	"budgetmaster/internal/ledger"
	"budgetmaster/internal/models"
)

// HomeSummary is the income versus spending overview for one period.
type HomeSummary struct {
	Period    ledger.Period `json:"period"`
	Income    float64       `json:"income"`
	Expenses  float64       `json:"expenses"`
	Remaining float64       `json:"remaining"`
	Chart     ledger.Chart  `json:"chart"`
}

// ChartRollup is an all-time chart with its total.
type ChartRollup struct {
	Chart ledger.Chart `json:"chart"`
	Total float64      `json:"total"`
}

// BudgetRollup lists every budget item with the overall total.
type BudgetRollup struct {
	Items []models.BudgetItem `json:"items"`
	Total float64             `json:"total"`
}

// GoalRow is a goal as listed on the dashboard.
type GoalRow struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// GoalRollup lists every goal with the overall total.
type GoalRollup struct {
	Goals []GoalRow `json:"goals"`
	Total float64   `json:"total"`
}

// DashboardSummary is the all-time rollup across the four collections.
type DashboardSummary struct {
	Budget   BudgetRollup `json:"budget"`
	Expenses ChartRollup  `json:"expenses"`
	Income   ChartRollup  `json:"income"`
	Goals    GoalRollup   `json:"goals"`
}

// dashboardService builds read-only rollups.
type dashboardService struct {
	expenses RecordStore[models.Expense]
	income   RecordStore[models.Income]
	budget   RecordStore[models.BudgetItem]
	goals    RecordStore[models.Goal]
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(
	expenses RecordStore[models.Expense],
	income RecordStore[models.Income],
	budget RecordStore[models.BudgetItem],
	goals RecordStore[models.Goal],
) DashboardServicer {
	return &dashboardService{expenses: expenses, income: income, budget: budget, goals: goals}
}

// Home totals income and expenses for period. Remaining may be negative.
func (s *dashboardService) Home(ctx context.Context, userID string, period ledger.Period) (*HomeSummary, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	var (
		income   []models.Income
		expenses []models.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap, err := s.income.List(gctx, userID)
		income = snap.Records
		return err
	})
	g.Go(func() error {
		snap, err := s.expenses.List(gctx, userID)
		expenses = snap.Records
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	in := ledger.Sum(ledger.FilterByPeriod(income, period), recordAmount[models.Income])
	out := ledger.Sum(ledger.FilterByPeriod(expenses, period), recordAmount[models.Expense])
	remaining := decimal.NewFromFloat(in).Sub(decimal.NewFromFloat(out)).InexactFloat64()

	return &HomeSummary{
		Period:    period,
		Income:    in,
		Expenses:  out,
		Remaining: remaining,
		Chart: ledger.Chart{
			Labels: []string{"Income", "Expenses", "Remaining"},
			Data:   []float64{in, out, remaining},
		},
	}, nil
}

// Dashboard loads all four collections concurrently and summarizes them
// without any period filter. The first failing load cancels the others.
func (s *dashboardService) Dashboard(ctx context.Context, userID string) (*DashboardSummary, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var (
		expenses []models.Expense
		income   []models.Income
		budget   []models.BudgetItem
		goals    []models.Goal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap, err := s.expenses.List(gctx, userID)
		expenses = snap.Records
		return err
	})
	g.Go(func() error {
		snap, err := s.income.List(gctx, userID)
		income = snap.Records
		return err
	})
	g.Go(func() error {
		snap, err := s.budget.List(gctx, userID)
		budget = snap.Records
		return err
	})
	g.Go(func() error {
		snap, err := s.goals.List(gctx, userID)
		goals = snap.Records
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expenseAgg := ledger.AggregateByKey(expenses, groupKey[models.Expense], recordAmount[models.Expense], models.Names(models.ExpenseCategories))
	incomeAgg := ledger.AggregateByKey(income, groupKey[models.Income], recordAmount[models.Income], incomeUniverse(income))

	rows := make([]GoalRow, len(goals))
	for i, goal := range goals {
		rows[i] = GoalRow{Name: goal.Name, Amount: ledger.Finite(goal.Amount)}
	}
	_, goalTotal := goalChart(goals)

	if budget == nil {
		budget = []models.BudgetItem{}
	}
	return &DashboardSummary{
		Budget:   BudgetRollup{Items: budget, Total: ledger.Sum(budget, recordAmount[models.BudgetItem])},
		Expenses: ChartRollup{Chart: expenseAgg.Chart(), Total: expenseAgg.Total},
		Income:   ChartRollup{Chart: incomeAgg.Chart(), Total: incomeAgg.Total},
		Goals:    GoalRollup{Goals: rows, Total: goalTotal},
	}, nil
}

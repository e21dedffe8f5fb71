package services

import (
	"context"

	"budgetmaster/internal/ledger"
	"budgetmaster/internal/models"
	"budgetmaster/internal/store"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password string, displayName *string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
	ClearRefreshTokenHash(userID string) error
	UpdateProfile(userID string, displayName, photoURL *string) (*models.User, error)
}

// PreferenceServicer defines the contract for per-user UI preferences.
type PreferenceServicer interface {
	GetTheme(userID string) (models.Theme, error)
	SetTheme(userID string, theme models.Theme) (models.Theme, error)
}

// RecordStore is the store surface the record services depend on.
// *store.Cached satisfies it.
type RecordStore[T any] interface {
	Collection() string
	Add(ctx context.Context, ownerID string, rec *T) (string, error)
	List(ctx context.Context, ownerID string) (store.Snapshot[T], error)
	Delete(ctx context.Context, ownerID, id string) error
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(ctx context.Context, userID string, in ExpenseInput) (*models.Expense, error)
	ListExpenses(ctx context.Context, userID string) (store.Snapshot[models.Expense], error)
	DeleteExpense(ctx context.Context, userID, id string) error
	ExpenseView(ctx context.Context, userID string, period ledger.Period) (*RecordView[models.Expense], error)
}

// IncomeServicer defines the contract for income-related business logic.
type IncomeServicer interface {
	CreateIncome(ctx context.Context, userID string, in IncomeInput) (*models.Income, error)
	ListIncome(ctx context.Context, userID string) (store.Snapshot[models.Income], error)
	DeleteIncome(ctx context.Context, userID, id string) error
	IncomeView(ctx context.Context, userID string, period ledger.Period) (*RecordView[models.Income], error)
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudgetItem(ctx context.Context, userID string, in BudgetInput) (*models.BudgetItem, error)
	ListBudgetItems(ctx context.Context, userID string) (store.Snapshot[models.BudgetItem], error)
	DeleteBudgetItem(ctx context.Context, userID, id string) error
	BudgetView(ctx context.Context, userID string, period ledger.Period) (*RecordView[models.BudgetItem], error)
}

// GoalServicer defines the contract for goal-related business logic.
type GoalServicer interface {
	CreateGoal(ctx context.Context, userID string, in GoalInput) (*models.Goal, error)
	ListGoals(ctx context.Context, userID string) (store.Snapshot[models.Goal], error)
	DeleteGoal(ctx context.Context, userID, id string) error
	GoalView(ctx context.Context, userID string, sel ledger.GoalSelection) (*GoalView, error)
}

// DashboardServicer defines the contract for the read-only rollups.
type DashboardServicer interface {
	Home(ctx context.Context, userID string, period ledger.Period) (*HomeSummary, error)
	Dashboard(ctx context.Context, userID string) (*DashboardSummary, error)
}

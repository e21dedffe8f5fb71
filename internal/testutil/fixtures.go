package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"budgetmaster/internal/ledger"
	"budgetmaster/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// Date parses a record date and fails the test on error.
func Date(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := ledger.ParseDate(s)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", s, err)
	}
	return &d
}

// CreateTestExpense inserts an expense for ownerID.
func CreateTestExpense(t *testing.T, db *gorm.DB, ownerID string, category models.ExpenseCategory, amount float64, date string) *models.Expense {
	t.Helper()

	e := &models.Expense{
		Record:   models.Record{OwnerID: ownerID},
		Category: category,
		Entry:    models.Entry{Amount: amount, Date: Date(t, date)},
	}
	if err := db.Create(e).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return e
}

// CreateTestIncome inserts an income entry for ownerID.
func CreateTestIncome(t *testing.T, db *gorm.DB, ownerID, source string, amount float64, date string) *models.Income {
	t.Helper()

	i := &models.Income{
		Record: models.Record{OwnerID: ownerID},
		Source: source,
		Entry:  models.Entry{Amount: amount, Date: Date(t, date)},
	}
	if err := db.Create(i).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return i
}

// CreateTestGoal inserts a goal for ownerID. month is ignored for yearly goals.
func CreateTestGoal(t *testing.T, db *gorm.DB, ownerID, name string, kind ledger.PeriodKind, month, year int, amount float64) *models.Goal {
	t.Helper()

	g := &models.Goal{
		Record:     models.Record{OwnerID: ownerID},
		Name:       name,
		Category:   models.GoalSaving,
		Amount:     amount,
		Min:        models.DefaultGoalMin,
		Max:        models.DefaultGoalMax,
		PeriodType: kind,
		Year:       year,
	}
	if kind == ledger.Monthly {
		m := month
		g.Month = &m
	}
	if err := db.Create(g).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return g
}

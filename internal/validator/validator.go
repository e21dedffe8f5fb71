// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"budgetmaster/internal/ledger"
	"budgetmaster/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("budget_category", validateBudgetCategory)
		_ = v.RegisterValidation("goal_category", validateGoalCategory)
		_ = v.RegisterValidation("period_type", validatePeriodType)
		_ = v.RegisterValidation("record_date", validateRecordDate)
		_ = v.RegisterValidation("theme", validateTheme)
	}
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.ExpenseCategory(fl.Field().String()).Valid()
}

func validateBudgetCategory(fl validator.FieldLevel) bool {
	return models.BudgetCategory(fl.Field().String()).Valid()
}

func validateGoalCategory(fl validator.FieldLevel) bool {
	return models.GoalCategory(fl.Field().String()).Valid()
}

func validatePeriodType(fl validator.FieldLevel) bool {
	_, ok := ledger.ParsePeriodKind(fl.Field().String())
	return ok
}

// validateRecordDate accepts "YYYY-MM", "YYYY-MM-DD" and RFC 3339 timestamps.
func validateRecordDate(fl validator.FieldLevel) bool {
	_, err := ledger.ParseDate(fl.Field().String())
	return err == nil
}

func validateTheme(fl validator.FieldLevel) bool {
	return models.Theme(fl.Field().String()).Valid()
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetmaster/internal/ledger"
	"budgetmaster/internal/models"
)

// CategoryHandler serves the fixed category lists used by the entry forms.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoriesResponse lists every closed set in display order.
type CategoriesResponse struct {
	Expense       []string `json:"expense"`
	Budget        []string `json:"budget"`
	Goal          []string `json:"goal"`
	IncomeSources []string `json:"income_sources"`
	PeriodTypes   []string `json:"period_types"`
}

// GetCategories returns the category lists.
// @Summary     Get categories
// @Description Expense, budget and goal categories, preset income sources and period types
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} CategoriesResponse "Categories"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesResponse{
		Expense:       models.Names(models.ExpenseCategories),
		Budget:        models.Names(models.BudgetCategories),
		Goal:          models.Names(models.GoalCategories),
		IncomeSources: append([]string(nil), models.IncomeSources...),
		PeriodTypes:   []string{string(ledger.Monthly), string(ledger.Yearly)},
	})
}

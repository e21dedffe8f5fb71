package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetmaster/internal/ledger"
	"budgetmaster/internal/models"
	"budgetmaster/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents the request payload for creating an expense.
type CreateExpenseRequest struct {
	Category models.ExpenseCategory `json:"category" binding:"required,expense_category"`
	Amount   ledger.Amount          `json:"amount" binding:"gt=0"`
	Date     string                 `json:"date" binding:"required,record_date"`
}

// ExpenseView is the expense table and chart for a period.
type ExpenseView = services.RecordView[models.Expense]

// ExpenseCreatedResponse is the new expense with the refreshed view.
type ExpenseCreatedResponse struct {
	Expense *models.Expense `json:"expense"`
	View    *ExpenseView    `json:"view"`
}

// ExpenseDeletedResponse is the refreshed view after a delete.
type ExpenseDeletedResponse struct {
	View *ExpenseView `json:"view"`
}

// GetExpenses returns the expense view for a period.
// @Summary     Get expenses
// @Description Expenses of the selected period with per-category totals
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Monthly or Yearly (default Monthly)"
// @Param       month  query int    false "Month 1-12 (default current)"
// @Param       year   query int    false "Year (default current)"
// @Success     200 {object} ExpenseView "Expense view"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.expenseService.ExpenseView(c.Request.Context(), userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListExpenses returns the user's expenses history.
// @Summary     Expense history
// @Description All expenses, newest first, one page at a time
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Page size 1-100 (default 20)"
// @Success     200 {object} pagination.PageResponse[models.Expense] "One page of records"
// @Failure     400 {object} ErrorResponse "Invalid page"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/history [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	respondWithHistory(c, h.expenseService.ListExpenses)
}

// CreateExpense records an expense and returns the view re-run for the
// period in the query string.
// @Summary     Create an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body  CreateExpenseRequest true  "Expense details"
// @Param       period  query string               false "Monthly or Yearly"
// @Param       month   query int                  false "Month 1-12"
// @Param       year    query int                  false "Year"
// @Success     201 {object} ExpenseCreatedResponse "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	expense, err := h.expenseService.CreateExpense(ctx, userID, services.ExpenseInput{
		Category: req.Category,
		Amount:   req.Amount.Float64(),
		Date:     req.Date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.expenseService.ExpenseView(ctx, userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ExpenseCreatedResponse{Expense: expense, View: view})
}

// DeleteExpense removes an expense and returns the refreshed view.
// @Summary     Delete an expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id     path  string true  "Expense ID"
// @Param       period query string false "Monthly or Yearly"
// @Param       month  query int    false "Month 1-12"
// @Param       year   query int    false "Year"
// @Success     200 {object} ExpenseDeletedResponse "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.expenseService.DeleteExpense(ctx, userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.expenseService.ExpenseView(ctx, userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ExpenseDeletedResponse{View: view})
}

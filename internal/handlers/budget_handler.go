package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetmaster/internal/ledger"
	"budgetmaster/internal/models"
	"budgetmaster/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudgetItemRequest represents the request payload for a budget item.
type CreateBudgetItemRequest struct {
	Category models.BudgetCategory `json:"category" binding:"required,budget_category"`
	Amount   ledger.Amount         `json:"amount" binding:"gt=0"`
	Date     string                `json:"date" binding:"required,record_date"`
}

// BudgetView is the budget table and chart for a period.
type BudgetView = services.RecordView[models.BudgetItem]

// BudgetItemCreatedResponse is the new item with the refreshed view.
type BudgetItemCreatedResponse struct {
	Item *models.BudgetItem `json:"item"`
	View *BudgetView        `json:"view"`
}

// BudgetItemDeletedResponse is the refreshed view after a delete.
type BudgetItemDeletedResponse struct {
	View *BudgetView `json:"view"`
}

// GetBudget returns the budget view for a period.
// @Summary     Get budget
// @Description Budget items of the selected period with per-category totals
// @Tags        budget
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Monthly or Yearly (default Monthly)"
// @Param       month  query int    false "Month 1-12 (default current)"
// @Param       year   query int    false "Year (default current)"
// @Success     200 {object} BudgetView "Budget view"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
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

	view, err := h.budgetService.BudgetView(c.Request.Context(), userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListBudgetItems returns the user's budget history.
// @Summary     Budget history
// @Description All budget items, newest first, one page at a time
// @Tags        budget
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Page size 1-100 (default 20)"
// @Success     200 {object} pagination.PageResponse[models.BudgetItem] "One page of records"
// @Failure     400 {object} ErrorResponse "Invalid page"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/history [get]
func (h *BudgetHandler) ListBudgetItems(c *gin.Context) {
	respondWithHistory(c, h.budgetService.ListBudgetItems)
}

// CreateBudgetItem adds a budget item and returns the refreshed view.
// @Summary     Create a budget item
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body  CreateBudgetItemRequest true  "Budget item"
// @Param       period  query string                  false "Monthly or Yearly"
// @Param       month   query int                     false "Month 1-12"
// @Param       year    query int                     false "Year"
// @Success     201 {object} BudgetItemCreatedResponse "Budget item created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [post]
func (h *BudgetHandler) CreateBudgetItem(c *gin.Context) {
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

	var req CreateBudgetItemRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	item, err := h.budgetService.CreateBudgetItem(ctx, userID, services.BudgetInput{
		Category: req.Category,
		Amount:   req.Amount.Float64(),
		Date:     req.Date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.budgetService.BudgetView(ctx, userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, BudgetItemCreatedResponse{Item: item, View: view})
}

// DeleteBudgetItem removes a budget item and returns the refreshed view.
// @Summary     Delete a budget item
// @Tags        budget
// @Produce     json
// @Security    BearerAuth
// @Param       id     path  string true  "Budget item ID"
// @Param       period query string false "Monthly or Yearly"
// @Param       month  query int    false "Month 1-12"
// @Param       year   query int    false "Year"
// @Success     200 {object} BudgetItemDeletedResponse "Budget item deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/{id} [delete]
func (h *BudgetHandler) DeleteBudgetItem(c *gin.Context) {
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
	if err := h.budgetService.DeleteBudgetItem(ctx, userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.budgetService.BudgetView(ctx, userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, BudgetItemDeletedResponse{View: view})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetmaster/internal/errors"
	"budgetmaster/internal/ledger"
	"budgetmaster/internal/models"
	"budgetmaster/internal/services"
)

// IncomeHandler handles income-related requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// CreateIncomeRequest represents the request payload for recording income.
// custom_source, when set, is stored instead of source.
type CreateIncomeRequest struct {
	Source       string        `json:"source" binding:"max=100"`
	CustomSource string        `json:"custom_source" binding:"max=100"`
	Amount       ledger.Amount `json:"amount" binding:"gt=0"`
	Date         string        `json:"date" binding:"required,record_date"`
}

// IncomeView is the income table and chart for a period.
type IncomeView = services.RecordView[models.Income]

// IncomeCreatedResponse is the new income entry with the refreshed view.
type IncomeCreatedResponse struct {
	Income *models.Income `json:"income"`
	View   *IncomeView    `json:"view"`
}

// IncomeDeletedResponse is the refreshed view after a delete.
type IncomeDeletedResponse struct {
	View *IncomeView `json:"view"`
}

// GetIncome returns the income view for a period.
// @Summary     Get income
// @Description Income of the selected period grouped by source; yearly views include a per-month breakdown
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Monthly or Yearly (default Monthly)"
// @Param       month  query int    false "Month 1-12 (default current)"
// @Param       year   query int    false "Year (default current)"
// @Success     200 {object} IncomeView "Income view"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income [get]
func (h *IncomeHandler) GetIncome(c *gin.Context) {
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

	view, err := h.incomeService.IncomeView(c.Request.Context(), userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListIncome returns the user's income history.
// @Summary     Income history
// @Description All income entries, newest first, one page at a time
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Page size 1-100 (default 20)"
// @Success     200 {object} pagination.PageResponse[models.Income] "One page of records"
// @Failure     400 {object} ErrorResponse "Invalid page"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/history [get]
func (h *IncomeHandler) ListIncome(c *gin.Context) {
	respondWithHistory(c, h.incomeService.ListIncome)
}

// CreateIncome records income and returns the refreshed view.
// @Summary     Record income
// @Tags        income
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body  CreateIncomeRequest true  "Income details"
// @Param       period  query string              false "Monthly or Yearly"
// @Param       month   query int                 false "Month 1-12"
// @Param       year    query int                 false "Year"
// @Success     201 {object} IncomeCreatedResponse "Income recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income [post]
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
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

	var req CreateIncomeRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Source == "" && req.CustomSource == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "source or custom_source is required"))
		return
	}

	ctx := c.Request.Context()
	income, err := h.incomeService.CreateIncome(ctx, userID, services.IncomeInput{
		Source:       req.Source,
		CustomSource: req.CustomSource,
		Amount:       req.Amount.Float64(),
		Date:         req.Date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.incomeService.IncomeView(ctx, userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, IncomeCreatedResponse{Income: income, View: view})
}

// DeleteIncome removes an income entry and returns the refreshed view.
// @Summary     Delete income
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       id     path  string true  "Income ID"
// @Param       period query string false "Monthly or Yearly"
// @Param       month  query int    false "Month 1-12"
// @Param       year   query int    false "Year"
// @Success     200 {object} IncomeDeletedResponse "Income deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
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
	if err := h.incomeService.DeleteIncome(ctx, userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.incomeService.IncomeView(ctx, userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, IncomeDeletedResponse{View: view})
}

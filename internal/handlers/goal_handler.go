package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetmaster/internal/ledger"
	"budgetmaster/internal/models"
	"budgetmaster/internal/services"
)

// GoalHandler handles goal-related requests.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the request payload for creating a goal.
// min and max default to 0 and 10000. month is required for Monthly goals.
type CreateGoalRequest struct {
	Name       string              `json:"name" binding:"required,min=1,max=100"`
	Category   models.GoalCategory `json:"category" binding:"required,goal_category"`
	Amount     ledger.Amount       `json:"amount" binding:"gt=0"`
	Min        *ledger.Amount      `json:"min"`
	Max        *ledger.Amount      `json:"max"`
	PeriodType string              `json:"period_type" binding:"required,period_type"`
	Month      *int                `json:"month" binding:"omitempty,min=1,max=12"`
	Year       int                 `json:"year" binding:"required,min=1"`
}

// GoalCreatedResponse is the new goal with the refreshed view.
type GoalCreatedResponse struct {
	Goal *models.Goal       `json:"goal"`
	View *services.GoalView `json:"view"`
}

// GoalDeletedResponse is the refreshed view after a delete.
type GoalDeletedResponse struct {
	View *services.GoalView `json:"view"`
}

func amountPtr(a *ledger.Amount) *float64 {
	if a == nil {
		return nil
	}
	v := a.Float64()
	return &v
}

// GetGoals returns the goals matching the selection.
// @Summary     Get goals
// @Description Monthly selections show Monthly goals of that month; Yearly selections show Yearly goals of that year
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Monthly or Yearly (default Monthly)"
// @Param       month  query int    false "Month 1-12 (default current)"
// @Param       year   query int    false "Year (default current)"
// @Success     200 {object} services.GoalView "Goal view"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	sel, err := parseGoalSelection(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.goalService.GoalView(c.Request.Context(), userID, sel)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListGoals returns the user's goals history.
// @Summary     Goal history
// @Description All goals, newest first, one page at a time
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Page size 1-100 (default 20)"
// @Success     200 {object} pagination.PageResponse[models.Goal] "One page of records"
// @Failure     400 {object} ErrorResponse "Invalid page"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/history [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	respondWithHistory(c, h.goalService.ListGoals)
}

// CreateGoal creates a goal and returns the refreshed view.
// @Summary     Create a goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body  CreateGoalRequest true  "Goal details"
// @Param       period  query string            false "Monthly or Yearly"
// @Param       month   query int               false "Month 1-12"
// @Param       year    query int               false "Year"
// @Success     201 {object} GoalCreatedResponse "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	sel, err := parseGoalSelection(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGoalRequest
	if !bindJSON(c, &req) {
		return
	}
	kind, _ := ledger.ParsePeriodKind(req.PeriodType)

	ctx := c.Request.Context()
	goal, err := h.goalService.CreateGoal(ctx, userID, services.GoalInput{
		Name:       req.Name,
		Category:   req.Category,
		Amount:     req.Amount.Float64(),
		Min:        amountPtr(req.Min),
		Max:        amountPtr(req.Max),
		PeriodType: kind,
		Month:      req.Month,
		Year:       req.Year,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.goalService.GoalView(ctx, userID, sel)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, GoalCreatedResponse{Goal: goal, View: view})
}

// DeleteGoal removes a goal and returns the refreshed view.
// @Summary     Delete a goal
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       id     path  string true  "Goal ID"
// @Param       period query string false "Monthly or Yearly"
// @Param       month  query int    false "Month 1-12"
// @Param       year   query int    false "Year"
// @Success     200 {object} GoalDeletedResponse "Goal deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
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
	sel, err := parseGoalSelection(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.goalService.DeleteGoal(ctx, userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.goalService.GoalView(ctx, userID, sel)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, GoalDeletedResponse{View: view})
}

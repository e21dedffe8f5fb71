package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetmaster/internal/services"
)

// DashboardHandler serves the read-only rollups.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetHome returns income, expenses and what remains for a period.
// @Summary     Home summary
// @Description Income and expense totals for the period (default current month) and the remaining balance
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Monthly or Yearly (default Monthly)"
// @Param       month  query int    false "Month 1-12 (default current)"
// @Param       year   query int    false "Year (default current)"
// @Success     200 {object} services.HomeSummary "Home summary"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /home [get]
func (h *DashboardHandler) GetHome(c *gin.Context) {
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

	summary, err := h.dashboardService.Home(c.Request.Context(), userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetDashboard returns the all-time rollup of every collection.
// @Summary     Dashboard
// @Description All-time budget, expense, income and goal summaries
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DashboardSummary "Dashboard"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.dashboardService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

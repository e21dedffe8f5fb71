package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetmaster/internal/models"
	"budgetmaster/internal/services"
)

// PreferenceHandler handles UI preference requests.
type PreferenceHandler struct {
	preferenceService services.PreferenceServicer
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(preferenceService services.PreferenceServicer) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// ThemeRequest sets the UI theme.
type ThemeRequest struct {
	Theme models.Theme `json:"theme" binding:"required,theme"`
}

// ThemeResponse carries the current UI theme.
type ThemeResponse struct {
	Theme models.Theme `json:"theme"`
}

// GetTheme returns the user's theme, light until changed.
// @Summary     Get theme
// @Tags        preferences
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} ThemeResponse "Current theme"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /preferences/theme [get]
func (h *PreferenceHandler) GetTheme(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	theme, err := h.preferenceService.GetTheme(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ThemeResponse{Theme: theme})
}

// SetTheme stores the user's theme.
// @Summary     Set theme
// @Tags        preferences
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ThemeRequest true "light or dark"
// @Success     200 {object} ThemeResponse "Stored theme"
// @Failure     400 {object} ErrorResponse "Invalid theme"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /preferences/theme [put]
func (h *PreferenceHandler) SetTheme(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ThemeRequest
	if !bindJSON(c, &req) {
		return
	}

	theme, err := h.preferenceService.SetTheme(userID, req.Theme)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ThemeResponse{Theme: theme})
}

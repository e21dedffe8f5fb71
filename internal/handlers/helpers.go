package handlers

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	apperrors "budgetmaster/internal/errors"
	"budgetmaster/internal/ledger"
	"budgetmaster/internal/logger"
	"budgetmaster/internal/pagination"
	"budgetmaster/internal/store"
	"budgetmaster/internal/uuid"
)

// now is the clock used for default periods.
var now = time.Now

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	v, exists := c.Get("userID")
	if !exists {
		return "", apperrors.ErrUnauthorized
	}
	userID, ok := v.(string)
	if !ok || userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// parsePathID reads a record id path parameter. Records carry UUIDs, except
// imported documents, which keep their ObjectID hex.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	raw := strings.TrimSpace(c.Param(param))
	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}
	if _, err := bson.ObjectIDFromHex(raw); err == nil {
		return raw, nil
	}
	return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
}

// PeriodQuery is the period selection sent as query parameters. Missing
// values default to the current month.
type PeriodQuery struct {
	Period string `form:"period" binding:"omitempty,period_type"`
	Month  int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year   int    `form:"year" binding:"omitempty,min=1"`
}

func (q PeriodQuery) resolve() (ledger.PeriodKind, int, int) {
	current := ledger.CurrentMonth(now())
	kind := ledger.Monthly
	if k, ok := ledger.ParsePeriodKind(q.Period); ok {
		kind = k
	}
	month, year := q.Month, q.Year
	if month == 0 {
		month = *current.Month
	}
	if year == 0 {
		year = current.Year
	}
	return kind, month, year
}

// parsePeriod reads the record period from the query string.
func parsePeriod(c *gin.Context) (ledger.Period, error) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return ledger.Period{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, err.Error())
	}
	kind, month, year := q.resolve()
	if kind == ledger.Yearly {
		return ledger.YearOf(year), nil
	}
	return ledger.MonthOf(month, year), nil
}

// parseGoalSelection reads the goal selection from the query string.
func parseGoalSelection(c *gin.Context) (ledger.GoalSelection, error) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return ledger.GoalSelection{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, err.Error())
	}
	kind, month, year := q.resolve()
	sel := ledger.GoalSelection{Kind: kind, Year: year}
	if kind == ledger.Monthly {
		sel.Month = month
	}
	return sel, nil
}

// respondWithHistory writes one page of the user's records, newest first.
func respondWithHistory[T any](c *gin.Context, list func(ctx context.Context, userID string) (store.Snapshot[T], error)) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	page.Defaults()

	snap, err := list(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Snapshots are shared with the cache.
	records := slices.Clone(snap.Records)
	slices.Reverse(records)

	resp := pagination.Slice(records, page)
	resp.Revision = snap.Revision
	c.JSON(http.StatusOK, resp)
}

// bindJSON binds the request body and maps binding failures to INVALID_INPUT.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return false
	}
	return true
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

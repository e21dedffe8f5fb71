package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetmaster/internal/errors"
	"budgetmaster/internal/ledger"
	"budgetmaster/internal/models"
	"budgetmaster/internal/services"
	"budgetmaster/internal/store"
)

// --- mock expense service ---

type mockExpenseService struct {
	createExpenseFn func(userID string, in services.ExpenseInput) (*models.Expense, error)
	deleteExpenseFn func(userID, id string) error
	listExpensesFn  func(userID string) (store.Snapshot[models.Expense], error)
	expenseViewFn   func(userID string, period ledger.Period) (*services.RecordView[models.Expense], error)
}

func (m *mockExpenseService) CreateExpense(_ context.Context, userID string, in services.ExpenseInput) (*models.Expense, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(userID, in)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) ListExpenses(_ context.Context, userID string) (store.Snapshot[models.Expense], error) {
	if m.listExpensesFn != nil {
		return m.listExpensesFn(userID)
	}
	return store.Snapshot[models.Expense]{Records: []models.Expense{}}, nil
}

func (m *mockExpenseService) DeleteExpense(_ context.Context, userID, id string) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(userID, id)
	}
	return nil
}

func (m *mockExpenseService) ExpenseView(_ context.Context, userID string, period ledger.Period) (*services.RecordView[models.Expense], error) {
	if m.expenseViewFn != nil {
		return m.expenseViewFn(userID, period)
	}
	return &services.RecordView[models.Expense]{Period: period, Records: []models.Expense{}}, nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/expenses", handler.GetExpenses)
	auth.GET("/expenses/history", handler.ListExpenses)
	auth.POST("/expenses", handler.CreateExpense)
	auth.DELETE("/expenses/:id", handler.DeleteExpense)
	return r
}

// pinClock fixes the clock used for default periods for the duration of t.
func pinClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestExpenseHandler_GetExpenses(t *testing.T) {
	t.Run("defaults to current month", func(t *testing.T) {
		pinClock(t, time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC))
		var got ledger.Period
		svc := &mockExpenseService{
			expenseViewFn: func(_ string, p ledger.Period) (*services.RecordView[models.Expense], error) {
				got = p
				return &services.RecordView[models.Expense]{Period: p, Total: 50, Revision: 7}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "GET", "/expenses", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.String() != "2024-03" {
			t.Errorf("expected 2024-03, got %s", got)
		}
		result := parseJSON(t, rec)
		if result["total"].(float64) != 50 || result["revision"].(float64) != 7 {
			t.Errorf("unexpected body %v", result)
		}
	})

	t.Run("yearly selection", func(t *testing.T) {
		var got ledger.Period
		svc := &mockExpenseService{
			expenseViewFn: func(_ string, p ledger.Period) (*services.RecordView[models.Expense], error) {
				got = p
				return &services.RecordView[models.Expense]{Period: p}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "GET", "/expenses?period=yearly&year=2023", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !got.IsYearly() || got.Year != 2023 {
			t.Errorf("expected yearly 2023, got %s", got)
		}
	})

	t.Run("returns 400 on bad month", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "GET", "/expenses?month=13", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_PERIOD")
	})

	t.Run("returns 400 on unknown period type", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "GET", "/expenses?period=weekly", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("returns 201 with the refreshed view", func(t *testing.T) {
		var got services.ExpenseInput
		views := 0
		svc := &mockExpenseService{
			createExpenseFn: func(_ string, in services.ExpenseInput) (*models.Expense, error) {
				got = in
				return &models.Expense{Category: in.Category, Entry: models.Entry{Amount: in.Amount}}, nil
			},
			expenseViewFn: func(_ string, p ledger.Period) (*services.RecordView[models.Expense], error) {
				views++
				return &services.RecordView[models.Expense]{Period: p, Total: 50}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "POST", "/expenses?month=3&year=2024",
			`{"category":"Food","amount":"50","date":"2024-03-10"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Category != models.ExpenseFood || got.Amount != 50 || got.Date != "2024-03-10" {
			t.Errorf("unexpected input %+v", got)
		}
		if views != 1 {
			t.Errorf("expected the view to be re-run once, got %d", views)
		}
		result := parseJSON(t, rec)
		if result["expense"] == nil || result["view"] == nil {
			t.Errorf("expected expense and view, got %v", result)
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"unknown category", `{"category":"Gadgets","amount":5,"date":"2024-03"}`},
		{"budget category", `{"category":"Rent","amount":5,"date":"2024-03"}`},
		{"zero amount", `{"category":"Food","amount":0,"date":"2024-03"}`},
		{"non numeric amount", `{"category":"Food","amount":"lots","date":"2024-03"}`},
		{"missing date", `{"category":"Food","amount":5}`},
		{"bad date", `{"category":"Food","amount":5,"date":"March"}`},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			svc := &mockExpenseService{
				createExpenseFn: func(string, services.ExpenseInput) (*models.Expense, error) {
					t.Error("service must not be called")
					return nil, nil
				},
			}
			r := setupExpenseRouter(NewExpenseHandler(svc))

			rec := doRequest(r, "POST", "/expenses", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}

	t.Run("returns 500 when the store fails", func(t *testing.T) {
		svc := &mockExpenseService{
			createExpenseFn: func(string, services.ExpenseInput) (*models.Expense, error) {
				return nil, apperrors.ErrInternalServer
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "POST", "/expenses", `{"category":"Food","amount":5,"date":"2024-03"}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_DeleteExpense(t *testing.T) {
	const id = "0190f1c2-7a3b-7c4d-8e5f-0000000000aa"

	t.Run("returns 200 with view", func(t *testing.T) {
		var deleted string
		svc := &mockExpenseService{
			deleteExpenseFn: func(_ string, got string) error {
				deleted = got
				return nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "DELETE", "/expenses/"+id, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if deleted != id {
			t.Errorf("expected %s deleted, got %s", id, deleted)
		}
		if parseJSON(t, rec)["view"] == nil {
			t.Error("expected view in response")
		}
	})

	t.Run("accepts object ids", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "DELETE", "/expenses/65f1a2b3c4d5e6f708192a3b", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed id", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "DELETE", "/expenses/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockExpenseService{
			deleteExpenseFn: func(string, string) error { return apperrors.ErrRecordNotFound },
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "DELETE", "/expenses/"+id, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "RECORD_NOT_FOUND")
	})
}

func TestExpenseHandler_ListExpenses(t *testing.T) {
	records := make([]models.Expense, 5)
	for i := range records {
		records[i].ID = fmt.Sprintf("exp-%d", i)
		records[i].Amount = float64(i + 1)
	}
	svc := &mockExpenseService{
		listExpensesFn: func(userID string) (store.Snapshot[models.Expense], error) {
			if userID != testUserID {
				t.Errorf("expected user %s, got %s", testUserID, userID)
			}
			return store.Snapshot[models.Expense]{Records: records, Revision: 7}, nil
		},
	}
	r := setupExpenseRouter(NewExpenseHandler(svc))

	t.Run("newest first with paging metadata", func(t *testing.T) {
		rec := doRequest(r, "GET", "/expenses/history?page=1&page_size=2", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Fatalf("expected 2 records, got %d", len(data))
		}
		if id := data[0].(map[string]interface{})["id"]; id != "exp-4" {
			t.Errorf("expected newest record first, got %v", id)
		}
		if result["total_items"] != 5.0 || result["total_pages"] != 3.0 {
			t.Errorf("unexpected totals: %v / %v", result["total_items"], result["total_pages"])
		}
		if result["revision"] != 7.0 {
			t.Errorf("expected revision 7, got %v", result["revision"])
		}
	})

	t.Run("snapshot order is untouched", func(t *testing.T) {
		doRequest(r, "GET", "/expenses/history", "")
		if records[0].ID != "exp-0" {
			t.Errorf("history must not reorder the shared snapshot, got %s first", records[0].ID)
		}
	})

	t.Run("invalid page size", func(t *testing.T) {
		rec := doRequest(r, "GET", "/expenses/history?page_size=500", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("store failure", func(t *testing.T) {
		failing := &mockExpenseService{
			listExpensesFn: func(string) (store.Snapshot[models.Expense], error) {
				return store.Snapshot[models.Expense]{}, apperrors.ErrInternalServer
			},
		}
		rec := doRequest(setupExpenseRouter(NewExpenseHandler(failing)), "GET", "/expenses/history", "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

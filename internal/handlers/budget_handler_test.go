package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "budgetmaster/internal/errors"
	"budgetmaster/internal/ledger"
	"budgetmaster/internal/models"
	"budgetmaster/internal/services"
	"budgetmaster/internal/store"
)

// --- mock budget service ---

type mockBudgetService struct {
	createBudgetItemFn func(userID string, in services.BudgetInput) (*models.BudgetItem, error)
	deleteBudgetItemFn func(userID, id string) error
	budgetViewFn       func(userID string, period ledger.Period) (*services.RecordView[models.BudgetItem], error)
}

func (m *mockBudgetService) CreateBudgetItem(_ context.Context, userID string, in services.BudgetInput) (*models.BudgetItem, error) {
	if m.createBudgetItemFn != nil {
		return m.createBudgetItemFn(userID, in)
	}
	return &models.BudgetItem{}, nil
}

func (m *mockBudgetService) ListBudgetItems(context.Context, string) (store.Snapshot[models.BudgetItem], error) {
	return store.Snapshot[models.BudgetItem]{Records: []models.BudgetItem{}}, nil
}

func (m *mockBudgetService) DeleteBudgetItem(_ context.Context, userID, id string) error {
	if m.deleteBudgetItemFn != nil {
		return m.deleteBudgetItemFn(userID, id)
	}
	return nil
}

func (m *mockBudgetService) BudgetView(_ context.Context, userID string, period ledger.Period) (*services.RecordView[models.BudgetItem], error) {
	if m.budgetViewFn != nil {
		return m.budgetViewFn(userID, period)
	}
	return &services.RecordView[models.BudgetItem]{Period: period, Records: []models.BudgetItem{}}, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/budget", handler.GetBudget)
	auth.POST("/budget", handler.CreateBudgetItem)
	auth.DELETE("/budget/:id", handler.DeleteBudgetItem)
	return r
}

func TestBudgetHandler_CreateBudgetItem(t *testing.T) {
	t.Run("returns 201", func(t *testing.T) {
		svc := &mockBudgetService{
			createBudgetItemFn: func(userID string, in services.BudgetInput) (*models.BudgetItem, error) {
				if userID != testUserID {
					t.Errorf("expected %s, got %s", testUserID, userID)
				}
				return &models.BudgetItem{Category: in.Category, Entry: models.Entry{Amount: in.Amount}}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "POST", "/budget", `{"category":"Rent","amount":900,"date":"2024-05"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		item := parseJSON(t, rec)["item"].(map[string]interface{})
		if item["category"] != "Rent" || item["amount"].(float64) != 900 {
			t.Errorf("unexpected item %v", item)
		}
	})

	t.Run("returns 400 on expense category", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}))

		rec := doRequest(r, "POST", "/budget", `{"category":"Food","amount":900,"date":"2024-05"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_DeleteBudgetItem(t *testing.T) {
	svc := &mockBudgetService{
		deleteBudgetItemFn: func(string, string) error { return apperrors.ErrRecordNotFound },
	}
	r := setupBudgetRouter(NewBudgetHandler(svc))

	rec := doRequest(r, "DELETE", "/budget/0190f1c2-7a3b-7c4d-8e5f-0000000000cc", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}))

	rec := doRequest(r, "GET", "/budget?month=5&year=2024", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	period := parseJSON(t, rec)["period"].(map[string]interface{})
	if period["month"].(float64) != 5 || period["year"].(float64) != 2024 {
		t.Errorf("unexpected period %v", period)
	}
}

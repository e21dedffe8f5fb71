package services

import (
	"testing"

	"budgetmaster/internal/ledger"
	"budgetmaster/internal/models"
	"budgetmaster/internal/testutil"
)

func TestCreateGoal(t *testing.T) {
	t.Run("monthly", func(t *testing.T) {
		_, cols, user := setupCollections(t)
		svc := NewGoalService(cols.Goals)

		goal, err := svc.CreateGoal(ctx, user.ID, GoalInput{
			Name: "Laptop", Category: models.GoalBuying, Amount: 1200,
			PeriodType: ledger.Monthly, Month: ptr(5), Year: 2024,
		})
		testutil.AssertNoError(t, err)

		if goal.Month == nil || *goal.Month != 5 {
			t.Errorf("expected month 5, got %v", goal.Month)
		}
		if goal.Min != models.DefaultGoalMin || goal.Max != models.DefaultGoalMax {
			t.Errorf("expected default bounds, got [%v, %v]", goal.Min, goal.Max)
		}
		if goal.Progress != 0 {
			t.Errorf("expected zero progress, got %v", goal.Progress)
		}
	})

	t.Run("yearly_drops_month", func(t *testing.T) {
		_, cols, user := setupCollections(t)
		svc := NewGoalService(cols.Goals)

		goal, err := svc.CreateGoal(ctx, user.ID, GoalInput{
			Name: "Trip", Category: models.GoalTravel, Amount: 500,
			PeriodType: ledger.Yearly, Month: ptr(7), Year: 2024,
		})
		testutil.AssertNoError(t, err)
		if goal.Month != nil {
			t.Errorf("expected no month on a yearly goal, got %d", *goal.Month)
		}
	})

	cases := []struct {
		name string
		in   GoalInput
	}{
		{"missing_name", GoalInput{Category: models.GoalSaving, Amount: 10, PeriodType: ledger.Yearly, Year: 2024}},
		{"missing_amount", GoalInput{Name: "Trip", Category: models.GoalTravel, PeriodType: ledger.Yearly, Year: 2024}},
		{"negative_amount", GoalInput{Name: "x", Category: models.GoalSaving, Amount: -5, Min: ptr(-10.0), PeriodType: ledger.Yearly, Year: 2024}},
		{"bad_category", GoalInput{Name: "x", Category: "Fun", Amount: 10, PeriodType: ledger.Yearly, Year: 2024}},
		{"above_default_max", GoalInput{Name: "x", Category: models.GoalSaving, Amount: 20000, PeriodType: ledger.Yearly, Year: 2024}},
		{"below_custom_min", GoalInput{Name: "x", Category: models.GoalSaving, Amount: 5, Min: ptr(10.0), PeriodType: ledger.Yearly, Year: 2024}},
		{"min_above_max", GoalInput{Name: "x", Category: models.GoalSaving, Amount: 5, Min: ptr(10.0), Max: ptr(1.0), PeriodType: ledger.Yearly, Year: 2024}},
		{"monthly_without_month", GoalInput{Name: "x", Category: models.GoalSaving, Amount: 5, PeriodType: ledger.Monthly, Year: 2024}},
		{"month_out_of_range", GoalInput{Name: "x", Category: models.GoalSaving, Amount: 5, PeriodType: ledger.Monthly, Month: ptr(13), Year: 2024}},
		{"unknown_period_type", GoalInput{Name: "x", Category: models.GoalSaving, Amount: 5, PeriodType: "Weekly", Year: 2024}},
		{"missing_year", GoalInput{Name: "x", Category: models.GoalSaving, Amount: 5, PeriodType: ledger.Yearly}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, cols, user := setupCollections(t)
			svc := NewGoalService(cols.Goals)

			_, err := svc.CreateGoal(ctx, user.ID, tc.in)
			testutil.AssertAppError(t, err, "INVALID_INPUT")

			snap, err := svc.ListGoals(ctx, user.ID)
			testutil.AssertNoError(t, err)
			if len(snap.Records) != 0 {
				t.Errorf("expected nothing stored, got %d goals", len(snap.Records))
			}
		})
	}
}

func TestGoalView(t *testing.T) {
	_, cols, user := setupCollections(t)
	svc := NewGoalService(cols.Goals)

	for _, in := range []GoalInput{
		{Name: "Trip", Category: models.GoalTravel, Amount: 500, PeriodType: ledger.Yearly, Year: 2024},
		{Name: "Laptop", Category: models.GoalBuying, Amount: 1200, PeriodType: ledger.Monthly, Month: ptr(5), Year: 2024},
		{Name: "Course", Category: models.GoalEducation, Amount: 300, PeriodType: ledger.Monthly, Month: ptr(5), Year: 2024},
		{Name: "Old", Category: models.GoalSaving, Amount: 100, PeriodType: ledger.Yearly, Year: 2023},
	} {
		_, err := svc.CreateGoal(ctx, user.ID, in)
		testutil.AssertNoError(t, err)
	}

	t.Run("yearly_selection", func(t *testing.T) {
		view, err := svc.GoalView(ctx, user.ID, ledger.GoalSelection{Kind: ledger.Yearly, Year: 2024})
		testutil.AssertNoError(t, err)
		if len(view.Goals) != 1 || view.Goals[0].Name != "Trip" {
			t.Fatalf("expected only Trip, got %+v", view.Goals)
		}
		if view.Total != 500 {
			t.Errorf("expected total 500, got %v", view.Total)
		}
	})

	t.Run("monthly_selection", func(t *testing.T) {
		view, err := svc.GoalView(ctx, user.ID, ledger.GoalSelection{Kind: ledger.Monthly, Month: 5, Year: 2024})
		testutil.AssertNoError(t, err)
		if len(view.Goals) != 2 {
			t.Fatalf("expected 2 goals, got %d", len(view.Goals))
		}
		if view.Chart.Labels[0] != "Laptop" || view.Chart.Data[1] != 300 {
			t.Errorf("unexpected chart %+v", view.Chart)
		}
		if view.Total != 1500 {
			t.Errorf("expected total 1500, got %v", view.Total)
		}
	})

	t.Run("switching_kind_does_not_change_stored_goals", func(t *testing.T) {
		before, err := svc.ListGoals(ctx, user.ID)
		testutil.AssertNoError(t, err)
		_, _ = svc.GoalView(ctx, user.ID, ledger.GoalSelection{Kind: ledger.Monthly, Month: 1, Year: 2024})
		after, err := svc.ListGoals(ctx, user.ID)
		testutil.AssertNoError(t, err)
		if len(before.Records) != len(after.Records) || before.Revision != after.Revision {
			t.Error("viewing goals must not modify them")
		}
	})

	t.Run("invalid_selection", func(t *testing.T) {
		_, err := svc.GoalView(ctx, user.ID, ledger.GoalSelection{Kind: ledger.Monthly, Year: 2024})
		testutil.AssertAppError(t, err, "INVALID_PERIOD")
	})
}

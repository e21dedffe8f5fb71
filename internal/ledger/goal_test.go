package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type goal struct {
	name  string
	kind  PeriodKind
	month int
	year  int
}

func (g goal) GoalPeriod() (PeriodKind, int, int) { return g.kind, g.month, g.year }

func TestGoalSelection_Matches(t *testing.T) {
	trip := goal{name: "Trip", kind: Yearly, year: 2024}
	laptop := goal{name: "Laptop", kind: Monthly, month: 5, year: 2024}
	// Yearly goals may still carry the month they were created in.
	car := goal{name: "Car", kind: Yearly, month: 2, year: 2024}

	tests := []struct {
		name string
		sel  GoalSelection
		g    goal
		want bool
	}{
		{name: "yearly goal, yearly selection", sel: GoalSelection{Kind: Yearly, Year: 2024}, g: trip, want: true},
		{name: "yearly goal, monthly selection", sel: GoalSelection{Kind: Monthly, Month: 5, Year: 2024}, g: trip, want: false},
		{name: "yearly goal, other year", sel: GoalSelection{Kind: Yearly, Year: 2025}, g: trip, want: false},
		{name: "yearly goal ignores stored month", sel: GoalSelection{Kind: Yearly, Month: 9, Year: 2024}, g: car, want: true},
		{name: "monthly goal, same month", sel: GoalSelection{Kind: Monthly, Month: 5, Year: 2024}, g: laptop, want: true},
		{name: "monthly goal, other month", sel: GoalSelection{Kind: Monthly, Month: 6, Year: 2024}, g: laptop, want: false},
		{name: "monthly goal, other year", sel: GoalSelection{Kind: Monthly, Month: 5, Year: 2023}, g: laptop, want: false},
		{name: "monthly goal, yearly selection", sel: GoalSelection{Kind: Yearly, Year: 2024}, g: laptop, want: false},
		{name: "unknown kind never matches", sel: GoalSelection{Kind: Yearly, Year: 2024}, g: goal{kind: "Weekly", year: 2024}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sel.Matches(tt.g))
		})
	}
}

func TestFilterGoals(t *testing.T) {
	goals := []goal{
		{name: "A", kind: Monthly, month: 1, year: 2024},
		{name: "B", kind: Yearly, year: 2024},
		{name: "C", kind: Monthly, month: 1, year: 2024},
	}

	monthly := FilterGoals(goals, GoalSelection{Kind: Monthly, Month: 1, Year: 2024})
	assert.Equal(t, []goal{goals[0], goals[2]}, monthly)

	yearly := FilterGoals(goals, GoalSelection{Kind: Yearly, Year: 2024})
	assert.Equal(t, []goal{goals[1]}, yearly)

	assert.NotNil(t, FilterGoals[goal](nil, GoalSelection{Kind: Yearly, Year: 2024}))
}

func TestGoalSelection_Validate(t *testing.T) {
	assert.NoError(t, GoalSelection{Kind: Yearly, Year: 2024}.Validate())
	assert.NoError(t, GoalSelection{Kind: Monthly, Month: 12, Year: 2024}.Validate())
	assert.Error(t, GoalSelection{Kind: Monthly, Year: 2024}.Validate())
	assert.Error(t, GoalSelection{Kind: "Weekly", Year: 2024}.Validate())
	assert.Error(t, GoalSelection{Kind: Yearly}.Validate())
}

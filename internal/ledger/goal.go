package ledger

import "fmt"

// GoalPeriod is implemented by goals. month is only meaningful for Monthly goals.
type GoalPeriod interface {
	GoalPeriod() (kind PeriodKind, month int, year int)
}

// GoalSelection is the period a user is currently looking at on the goals view.
type GoalSelection struct {
	Kind  PeriodKind `json:"period_type"`
	Month int        `json:"month,omitempty"`
	Year  int        `json:"year"`
}

// Validate checks the kind, and the month when the kind is Monthly.
func (s GoalSelection) Validate() error {
	if !s.Kind.Valid() {
		return fmt.Errorf("period type must be Monthly or Yearly, got %q", s.Kind)
	}
	if s.Year <= 0 {
		return fmt.Errorf("year must be positive, got %d", s.Year)
	}
	if s.Kind == Monthly && (s.Month < 1 || s.Month > 12) {
		return fmt.Errorf("month must be between 1 and 12, got %d", s.Month)
	}
	return nil
}

// Matches reports whether g belongs to the selection. A Monthly selection only
// shows Monthly goals for that month; a Yearly selection only shows Yearly
// goals for that year, whatever month they were created in.
func (s GoalSelection) Matches(g GoalPeriod) bool {
	kind, month, year := g.GoalPeriod()
	if kind != s.Kind || year != s.Year {
		return false
	}
	switch kind {
	case Monthly:
		return month == s.Month
	case Yearly:
		return true
	}
	return false
}

// FilterGoals keeps the goals matching sel, preserving input order.
func FilterGoals[G GoalPeriod](goals []G, sel GoalSelection) []G {
	out := make([]G, 0, len(goals))
	for _, g := range goals {
		if sel.Matches(g) {
			out = append(out, g)
		}
	}
	return out
}

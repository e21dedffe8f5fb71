// Package ledger holds the period-filtered aggregation engine shared by every
// record collection: selecting records that fall in a calendar period,
// summing them per category, and matching goals against a period selection.
//
// Everything here is pure. Callers fetch records from the store and pass
// them in; nothing in this package performs I/O or keeps state.
package ledger

import (
	"fmt"
	"strings"
	"time"
)

// PeriodKind distinguishes month-scoped from year-scoped selections and goals.
type PeriodKind string

const (
	Monthly PeriodKind = "Monthly"
	Yearly  PeriodKind = "Yearly"
)

// Valid reports whether k is one of the two known kinds.
func (k PeriodKind) Valid() bool {
	return k == Monthly || k == Yearly
}

// ParsePeriodKind accepts "monthly"/"yearly" in any letter case.
func ParsePeriodKind(s string) (PeriodKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly":
		return Monthly, true
	case "yearly":
		return Yearly, true
	}
	return "", false
}

// Period is a (month, year) pair, or a whole year when Month is nil.
type Period struct {
	Month *int `json:"month,omitempty"`
	Year  int  `json:"year"`
}

// MonthOf returns the period covering a single calendar month.
func MonthOf(month, year int) Period {
	m := month
	return Period{Month: &m, Year: year}
}

// YearOf returns the period covering a whole calendar year.
func YearOf(year int) Period {
	return Period{Year: year}
}

// CurrentMonth returns the month period containing now, in UTC.
func CurrentMonth(now time.Time) Period {
	now = now.UTC()
	return MonthOf(int(now.Month()), now.Year())
}

// IsYearly reports whether the period spans a whole year.
func (p Period) IsYearly() bool {
	return p.Month == nil
}

// Kind returns Yearly for year-only periods and Monthly otherwise.
func (p Period) Kind() PeriodKind {
	if p.IsYearly() {
		return Yearly
	}
	return Monthly
}

// Validate checks the month range and that a year is present.
func (p Period) Validate() error {
	if p.Year <= 0 {
		return fmt.Errorf("year must be positive, got %d", p.Year)
	}
	if p.Month != nil && (*p.Month < 1 || *p.Month > 12) {
		return fmt.Errorf("month must be between 1 and 12, got %d", *p.Month)
	}
	return nil
}

// Contains reports whether t falls in the period. Dates are compared in UTC.
func (p Period) Contains(t time.Time) bool {
	t = t.UTC()
	if t.Year() != p.Year {
		return false
	}
	return p.Month == nil || int(t.Month()) == *p.Month
}

func (p Period) String() string {
	if p.Month == nil {
		return fmt.Sprintf("%04d", p.Year)
	}
	return fmt.Sprintf("%04d-%02d", p.Year, *p.Month)
}

package models

import "budgetmaster/internal/ledger"

// Default bounds offered by the goal form.
const (
	DefaultGoalMin = 0
	DefaultGoalMax = 10000
)

// Goal is a savings target for a month or a whole year. Month is only set
// for Monthly goals. Progress is written as zero and never recomputed.
type Goal struct {
	Record     `bson:",inline"`
	Name       string            `gorm:"not null" json:"name" bson:"name"`
	Category   GoalCategory      `gorm:"not null" json:"category" bson:"category"`
	Amount     float64           `gorm:"not null" json:"amount" bson:"amount"`
	Min        float64           `json:"min" bson:"min"`
	Max        float64           `json:"max" bson:"max"`
	PeriodType ledger.PeriodKind `gorm:"not null" json:"period_type" bson:"period_type"`
	Month      *int              `json:"month" bson:"month"`
	Year       int               `gorm:"not null;index" json:"year" bson:"year"`
	Progress   float64           `gorm:"default:0" json:"progress" bson:"progress"`
}

func (Goal) TableName() string { return "goals" }

// GoalPeriod implements ledger.GoalPeriod.
func (g Goal) GoalPeriod() (ledger.PeriodKind, int, int) {
	month := 0
	if g.Month != nil {
		month = *g.Month
	}
	return g.PeriodType, month, g.Year
}

// RecordAmount returns the target amount.
func (g Goal) RecordAmount() float64 { return g.Amount }

// SetRecordAmount replaces the target amount.
func (g *Goal) SetRecordAmount(v float64) { g.Amount = v }

// GroupKey returns the aggregation key.
func (g Goal) GroupKey() string { return g.Name }

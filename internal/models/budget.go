package models

// BudgetItem is a monthly allocation for a budget category.
type BudgetItem struct {
	Record   `bson:",inline"`
	Category BudgetCategory `gorm:"not null" json:"category" bson:"category"`
	Entry    `bson:",inline"`
}

func (BudgetItem) TableName() string { return "budget" }

// GroupKey returns the aggregation key.
func (b BudgetItem) GroupKey() string { return string(b.Category) }

package models

// Expense is a single spending entry.
type Expense struct {
	Record   `bson:",inline"`
	Category ExpenseCategory `gorm:"not null" json:"category" bson:"category"`
	Entry    `bson:",inline"`
}

// TableName is also the document collection name.
func (Expense) TableName() string { return "expenses" }

// GroupKey returns the aggregation key.
func (e Expense) GroupKey() string { return string(e.Category) }

package models

// Income is a single income entry. Source is either a preset from
// IncomeSources or free text.
type Income struct {
	Record `bson:",inline"`
	Source string `gorm:"not null" json:"source" bson:"source"`
	Entry  `bson:",inline"`
}

func (Income) TableName() string { return "income" }

// GroupKey returns the aggregation key.
func (i Income) GroupKey() string { return i.Source }

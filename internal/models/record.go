package models

import "time"

// Record is embedded by every user-owned collection entry.
type Record struct {
	Base    `bson:",inline"`
	OwnerID string `gorm:"type:uuid;not null;index" json:"owner_id" bson:"owner_id"`
}

// GetOwnerID returns the owning user's ID.
func (r Record) GetOwnerID() string {
	return r.OwnerID
}

// SetOwnerID stamps the record with its owner.
func (r *Record) SetOwnerID(id string) {
	r.OwnerID = id
}

// Entry is the amount and date pair shared by expenses, income and budget items.
type Entry struct {
	Amount float64    `gorm:"not null" json:"amount" bson:"amount"`
	Date   *time.Time `gorm:"index" json:"date" bson:"date"`
}

// RecordDate implements ledger.Dated.
func (e Entry) RecordDate() (time.Time, bool) {
	if e.Date == nil || e.Date.IsZero() {
		return time.Time{}, false
	}
	return e.Date.UTC(), true
}

// RecordAmount returns the stored amount.
func (e Entry) RecordAmount() float64 {
	return e.Amount
}

// SetRecordDate replaces the date. A nil date marks the record as undated.
func (e *Entry) SetRecordDate(t *time.Time) {
	e.Date = t
}

// SetRecordAmount replaces the amount.
func (e *Entry) SetRecordAmount(v float64) {
	e.Amount = v
}

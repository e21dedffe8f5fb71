package ledger

import "time"

// Dated is implemented by records carrying a calendar date. ok is false when
// the date is missing or could not be parsed when the record was loaded.
type Dated interface {
	RecordDate() (t time.Time, ok bool)
}

// FilterByPeriod keeps the records whose date falls in p, preserving input
// order. Records without a usable date are dropped. The result is never nil.
func FilterByPeriod[R Dated](records []R, p Period) []R {
	out := make([]R, 0, len(records))
	for _, r := range records {
		t, ok := r.RecordDate()
		if !ok {
			continue
		}
		if p.Contains(t) {
			out = append(out, r)
		}
	}
	return out
}

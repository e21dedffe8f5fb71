package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Group is the summed amount for one universe key.
type Group struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}

// Aggregate holds per-key sums in universe order plus the grand total.
type Aggregate struct {
	Groups []Group `json:"groups"`
	Total  float64 `json:"total"`
}

// Chart is a chart dataset: Labels[i] is the label of Data[i].
type Chart struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// AggregateByKey sums amount(r) per key(r) for every key in universe, in
// universe order. Keys without records get zero. Total covers all records,
// including those whose key is outside the universe.
func AggregateByKey[R any](records []R, key func(R) string, amount func(R) float64, universe []string) Aggregate {
	sums := make(map[string]decimal.Decimal, len(universe))
	total := decimal.Zero
	for _, r := range records {
		v := decimal.NewFromFloat(Finite(amount(r)))
		total = total.Add(v)
		k := key(r)
		sums[k] = sums[k].Add(v)
	}

	groups := make([]Group, len(universe))
	for i, k := range universe {
		groups[i] = Group{Key: k, Total: sums[k].InexactFloat64()}
	}
	return Aggregate{Groups: groups, Total: total.InexactFloat64()}
}

// Chart materializes the groups as a positional dataset.
func (a Aggregate) Chart() Chart {
	c := Chart{
		Labels: make([]string, len(a.Groups)),
		Data:   make([]float64, len(a.Groups)),
	}
	for i, g := range a.Groups {
		c.Labels[i] = g.Key
		c.Data[i] = g.Total
	}
	return c
}

// Sum totals amount(r) over records.
func Sum[R any](records []R, amount func(R) float64) float64 {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(decimal.NewFromFloat(Finite(amount(r))))
	}
	return total.InexactFloat64()
}

// ObservedUniverse returns universe followed by any keys seen in records
// that are not already in it, in first-seen order. Free-text income sources
// use this to get their own chart slice.
func ObservedUniverse[R any](universe []string, records []R, key func(R) string) []string {
	seen := make(map[string]bool, len(universe))
	out := make([]string, 0, len(universe))
	for _, k := range universe {
		seen[k] = true
		out = append(out, k)
	}
	for _, r := range records {
		k := key(r)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// AggregateByMonth buckets records into the twelve calendar months of their
// date. Records without a date are skipped.
func AggregateByMonth[R Dated](records []R, amount func(R) float64) Chart {
	var buckets [12]decimal.Decimal
	for _, r := range records {
		t, ok := r.RecordDate()
		if !ok {
			continue
		}
		m := t.UTC().Month() - 1
		buckets[m] = buckets[m].Add(decimal.NewFromFloat(Finite(amount(r))))
	}

	c := Chart{Labels: make([]string, 12), Data: make([]float64, 12)}
	for i := range buckets {
		c.Labels[i] = time.Month(i + 1).String()
		c.Data[i] = buckets[i].InexactFloat64()
	}
	return c
}

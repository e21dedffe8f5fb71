package ledger

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	category string
	amount   float64
	date     *time.Time
}

func (e entry) RecordDate() (time.Time, bool) {
	if e.date == nil {
		return time.Time{}, false
	}
	return *e.date, true
}

func day(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return &d
}

func categoryOf(e entry) string { return e.category }
func amountOf(e entry) float64  { return e.amount }

func groupTotal(agg Aggregate, key string) float64 {
	for _, g := range agg.Groups {
		if g.Key == key {
			return g.Total
		}
	}
	return 0
}

var expenseUniverse = []string{"Food", "Shopping", "Bills", "Transport", "Health", "Other"}

func TestFilterByPeriod(t *testing.T) {
	records := []entry{
		{category: "Food", amount: 50, date: day(t, "2024-03-10")},
		{category: "Food", amount: 30, date: day(t, "2024-04-01")},
		{category: "Bills", amount: 20, date: day(t, "2024-03")},
		{category: "Other", amount: 5, date: nil},
		{category: "Health", amount: 7, date: day(t, "2023-03-15")},
	}

	tests := []struct {
		name   string
		period Period
		want   []float64
	}{
		{name: "matching month keeps insertion order", period: MonthOf(3, 2024), want: []float64{50, 20}},
		{name: "other month", period: MonthOf(4, 2024), want: []float64{30}},
		{name: "same month other year", period: MonthOf(3, 2023), want: []float64{7}},
		{name: "yearly ignores month", period: YearOf(2024), want: []float64{50, 30, 20}},
		{name: "no matches", period: MonthOf(12, 2030), want: []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByPeriod(records, tt.period)
			require.NotNil(t, got)
			amounts := make([]float64, 0, len(got))
			for _, r := range got {
				amounts = append(amounts, r.amount)
			}
			assert.Equal(t, tt.want, amounts)
		})
	}
}

func TestFilterByPeriod_DropsUndatedRecordsForEveryPeriod(t *testing.T) {
	records := []entry{{category: "Food", amount: 10}}
	for _, p := range []Period{MonthOf(1, 2024), YearOf(2024), MonthOf(1, 1)} {
		assert.Empty(t, FilterByPeriod(records, p), p.String())
	}
}

func TestFilterByPeriod_IsRepeatable(t *testing.T) {
	records := []entry{
		{category: "Food", amount: 50, date: day(t, "2024-03-10")},
		{category: "Food", amount: 30, date: day(t, "2024-04-01")},
	}
	first := FilterByPeriod(records, MonthOf(3, 2024))
	_ = FilterByPeriod(records, MonthOf(4, 2024))
	second := FilterByPeriod(records, MonthOf(3, 2024))
	assert.Equal(t, first, second)
	assert.Len(t, records, 2)
}

func TestAggregateByKey(t *testing.T) {
	t.Run("empty input yields zero for every key", func(t *testing.T) {
		agg := AggregateByKey(nil, categoryOf, amountOf, expenseUniverse)
		require.Len(t, agg.Groups, len(expenseUniverse))
		for i, g := range agg.Groups {
			assert.Equal(t, expenseUniverse[i], g.Key)
			assert.Zero(t, g.Total)
		}
		assert.Zero(t, agg.Total)
	})

	t.Run("month scenario", func(t *testing.T) {
		records := []entry{
			{category: "Food", amount: 50, date: day(t, "2024-03-10")},
			{category: "Food", amount: 30, date: day(t, "2024-04-01")},
		}
		filtered := FilterByPeriod(records, MonthOf(3, 2024))
		agg := AggregateByKey(filtered, categoryOf, amountOf, expenseUniverse)

		assert.Equal(t, 50.0, groupTotal(agg, "Food"))
		for _, k := range expenseUniverse[1:] {
			assert.Zero(t, groupTotal(agg, k), k)
		}
		assert.Equal(t, 50.0, agg.Total)
	})

	t.Run("total includes keys outside the universe", func(t *testing.T) {
		records := []entry{
			{category: "Salary", amount: 1000},
			{category: "Lottery", amount: 250},
		}
		agg := AggregateByKey(records, categoryOf, amountOf, []string{"Salary", "Freelance"})
		assert.Equal(t, 1000.0, groupTotal(agg, "Salary"))
		assert.Zero(t, groupTotal(agg, "Lottery"))
		assert.Equal(t, 1250.0, agg.Total)
	})

	t.Run("non numeric amounts count as zero", func(t *testing.T) {
		records := []entry{
			{category: "Food", amount: math.NaN()},
			{category: "Food", amount: math.Inf(1)},
			{category: "Food", amount: 12.5},
		}
		agg := AggregateByKey(records, categoryOf, amountOf, expenseUniverse)
		assert.Equal(t, 12.5, groupTotal(agg, "Food"))
		assert.Equal(t, 12.5, agg.Total)
	})

	t.Run("decimal summation avoids float drift", func(t *testing.T) {
		records := []entry{{category: "Food", amount: 0.1}, {category: "Food", amount: 0.2}}
		agg := AggregateByKey(records, categoryOf, amountOf, expenseUniverse)
		assert.Equal(t, 0.3, agg.Total)
	})

	t.Run("chart follows universe order", func(t *testing.T) {
		records := []entry{{category: "Other", amount: 1}, {category: "Food", amount: 2}}
		chart := AggregateByKey(records, categoryOf, amountOf, expenseUniverse).Chart()
		assert.Equal(t, expenseUniverse, chart.Labels)
		assert.Equal(t, []float64{2, 0, 0, 0, 0, 1}, chart.Data)
	})
}

func TestAggregatePipeline_IsIdempotent(t *testing.T) {
	records := []entry{
		{category: "Food", amount: 50, date: day(t, "2024-03-10")},
		{category: "Bills", amount: 80, date: day(t, "2024-03-02")},
	}
	run := func() Aggregate {
		return AggregateByKey(FilterByPeriod(records, MonthOf(3, 2024)), categoryOf, amountOf, expenseUniverse)
	}
	assert.Equal(t, run(), run())
}

func TestObservedUniverse(t *testing.T) {
	records := []entry{
		{category: "Salary"},
		{category: "Tutoring"},
		{category: "Salary"},
		{category: ""},
		{category: "Dividends"},
		{category: "Tutoring"},
	}
	got := ObservedUniverse([]string{"Salary", "Freelance"}, records, categoryOf)
	assert.Equal(t, []string{"Salary", "Freelance", "Tutoring", "Dividends"}, got)
}

func TestAggregateByMonth(t *testing.T) {
	records := []entry{
		{amount: 100, date: day(t, "2024-01-05")},
		{amount: 50, date: day(t, "2024-01-20")},
		{amount: 75, date: day(t, "2024-12")},
		{amount: 999},
	}
	chart := AggregateByMonth(records, amountOf)
	require.Len(t, chart.Labels, 12)
	assert.Equal(t, "January", chart.Labels[0])
	assert.Equal(t, "December", chart.Labels[11])
	assert.Equal(t, 150.0, chart.Data[0])
	assert.Equal(t, 75.0, chart.Data[11])
	assert.Zero(t, chart.Data[5])
}

func TestPeriod(t *testing.T) {
	assert.NoError(t, MonthOf(1, 2024).Validate())
	assert.NoError(t, YearOf(2024).Validate())
	assert.Error(t, MonthOf(0, 2024).Validate())
	assert.Error(t, MonthOf(13, 2024).Validate())
	assert.Error(t, YearOf(0).Validate())

	assert.Equal(t, "2024-03", MonthOf(3, 2024).String())
	assert.Equal(t, "2024", YearOf(2024).String())
	assert.Equal(t, Yearly, YearOf(2024).Kind())
	assert.Equal(t, Monthly, MonthOf(3, 2024).Kind())

	now := time.Date(2025, time.July, 31, 23, 0, 0, 0, time.FixedZone("UTC-3", -3*3600))
	cur := CurrentMonth(now)
	require.NotNil(t, cur.Month)
	assert.Equal(t, 8, *cur.Month, "current month is computed in UTC")
	assert.Equal(t, 2025, cur.Year)
}

func TestParsePeriodKind(t *testing.T) {
	k, ok := ParsePeriodKind("monthly")
	assert.True(t, ok)
	assert.Equal(t, Monthly, k)
	k, ok = ParsePeriodKind(" Yearly ")
	assert.True(t, ok)
	assert.Equal(t, Yearly, k)
	_, ok = ParsePeriodKind("weekly")
	assert.False(t, ok)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-03", want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2024-03-10", want: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		{in: "2024-03-10T12:30:00Z", want: time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC)},
		{in: "2024-03-31T23:30:00-02:00", want: time.Date(2024, 4, 1, 1, 30, 0, 0, time.UTC)},
		{in: "", wantErr: true},
		{in: "March 2024", wantErr: true},
		{in: "2024-13", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestCoerceAmount(t *testing.T) {
	assert.Equal(t, 12.5, CoerceAmount(12.5))
	assert.Equal(t, 7.0, CoerceAmount(int32(7)))
	assert.Equal(t, 9.0, CoerceAmount(int64(9)))
	assert.Equal(t, 42.0, CoerceAmount(" 42 "))
	assert.Zero(t, CoerceAmount("abc"))
	assert.Zero(t, CoerceAmount(math.NaN()))
	assert.Zero(t, CoerceAmount(nil))
	assert.Zero(t, CoerceAmount(true))
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var req struct {
		Amount Amount `json:"amount"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"amount": 50}`), &req))
	assert.Equal(t, 50.0, req.Amount.Float64())

	require.NoError(t, json.Unmarshal([]byte(`{"amount": "30.25"}`), &req))
	assert.Equal(t, 30.25, req.Amount.Float64())

	require.NoError(t, json.Unmarshal([]byte(`{"amount": ""}`), &req))
	assert.Zero(t, req.Amount.Float64())

	assert.Error(t, json.Unmarshal([]byte(`{"amount": "ten"}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"amount": true}`), &req))
}

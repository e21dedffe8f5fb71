package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "budgetmaster/internal/errors"
	"budgetmaster/internal/ledger"
	"budgetmaster/internal/store"
)

// entryRecord is satisfied by expenses, income and budget items.
type entryRecord interface {
	ledger.Dated
	GroupKey() string
	RecordAmount() float64
}

// RecordView is the period-filtered table and chart for one collection.
// Revision increases with every write; clients drop views older than the
// newest one they have shown.
type RecordView[R any] struct {
	Period   ledger.Period  `json:"period"`
	Revision int64          `json:"revision"`
	Records  []R            `json:"records"`
	Groups   []ledger.Group `json:"groups"`
	Chart    ledger.Chart   `json:"chart"`
	Total    float64        `json:"total"`
	// ByMonth is only filled for yearly income views.
	ByMonth *ledger.Chart `json:"by_month,omitempty"`
}

// recordService holds the create/list/delete plumbing shared by every
// collection.
type recordService[T any] struct {
	repo RecordStore[T]
}

func (s recordService[T]) add(ctx context.Context, userID string, rec *T) error {
	if userID == "" {
		return apperrors.ErrUnauthorized
	}
	if _, err := s.repo.Add(ctx, userID, rec); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s recordService[T]) list(ctx context.Context, userID string) (store.Snapshot[T], error) {
	if userID == "" {
		return store.Snapshot[T]{}, apperrors.ErrUnauthorized
	}
	snap, err := s.repo.List(ctx, userID)
	if err != nil {
		return store.Snapshot[T]{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snap, nil
}

func (s recordService[T]) remove(ctx context.Context, userID, id string) error {
	if userID == "" {
		return apperrors.ErrUnauthorized
	}
	if strings.TrimSpace(id) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "id is required")
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// buildView filters snap to period and aggregates it over the universe
// returned by universe, which sees the filtered records.
func buildView[R entryRecord](snap store.Snapshot[R], period ledger.Period, universe func([]R) []string) *RecordView[R] {
	records := ledger.FilterByPeriod(snap.Records, period)
	agg := ledger.AggregateByKey(records, groupKey[R], recordAmount[R], universe(records))
	return &RecordView[R]{
		Period:   period,
		Revision: snap.Revision,
		Records:  records,
		Groups:   agg.Groups,
		Chart:    agg.Chart(),
		Total:    agg.Total,
	}
}

func groupKey[R entryRecord](r R) string      { return r.GroupKey() }
func recordAmount[R entryRecord](r R) float64 { return r.RecordAmount() }

func fixedUniverse[R any](keys []string) func([]R) []string {
	return func([]R) []string { return keys }
}

func validatePeriod(p ledger.Period) error {
	if err := p.Validate(); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidPeriod, err.Error())
	}
	return nil
}

func requirePositiveAmount(amount float64) (float64, error) {
	amount = ledger.Finite(amount)
	if amount <= 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a positive number")
	}
	return amount, nil
}

func requireDate(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	d, err := ledger.ParseDate(raw)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("invalid date %q", raw))
	}
	return &d, nil
}

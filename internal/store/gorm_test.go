package store

import (
	"context"
	"testing"
	"time"

	"budgetmaster/internal/cache"
	"budgetmaster/internal/models"
	"budgetmaster/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormBackend(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	alice := testutil.CreateTestUser(t, db)
	bob := testutil.CreateTestUser(t, db)

	backend := NewGormBackend[models.Expense](db)
	assert.Equal(t, "expenses", backend.Collection())

	first := &models.Expense{Category: models.ExpenseFood, Entry: models.Entry{Amount: 50, Date: testutil.Date(t, "2024-03-10")}}
	id1, err := backend.Add(ctx, alice.ID, first)
	require.NoError(t, err)
	assert.NotEmpty(t, id1)
	assert.Equal(t, alice.ID, first.OwnerID)

	second := &models.Expense{Category: models.ExpenseFood, Entry: models.Entry{Amount: 30, Date: testutil.Date(t, "2024-04-01")}}
	id2, err := backend.Add(ctx, alice.ID, second)
	require.NoError(t, err)

	t.Run("lists in insertion order", func(t *testing.T) {
		records, err := backend.List(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, id1, records[0].ID)
		assert.Equal(t, id2, records[1].ID)
		assert.Equal(t, 50.0, records[0].Amount)
	})

	t.Run("other owners see nothing", func(t *testing.T) {
		records, err := backend.List(ctx, bob.ID)
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
		assert.ErrorIs(t, backend.Delete(ctx, bob.ID, id1), ErrNotFound)
	})

	t.Run("delete unknown id", func(t *testing.T) {
		assert.ErrorIs(t, backend.Delete(ctx, alice.ID, "01900000-0000-7000-8000-000000000000"), ErrNotFound)
		records, err := backend.List(ctx, alice.ID)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("delete existing", func(t *testing.T) {
		require.NoError(t, backend.Delete(ctx, alice.ID, id1))
		records, err := backend.List(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, id2, records[0].ID)
	})
}

func TestGormBackend_Goals(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, db)

	backend := NewGormBackend[models.Goal](db)
	month := 5
	_, err := backend.Add(ctx, user.ID, &models.Goal{
		Name: "Laptop", Category: models.GoalBuying, Amount: 1200,
		Max: models.DefaultGoalMax, PeriodType: "Monthly", Month: &month, Year: 2024,
	})
	require.NoError(t, err)

	goals, err := backend.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	require.NotNil(t, goals[0].Month)
	assert.Equal(t, 5, *goals[0].Month)
	assert.Zero(t, goals[0].Progress)
}

func TestNewGormCollections(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, db)

	var changes []Change
	manager := cache.NewManager()
	cols := NewGormCollections(db, CacheConfig{
		Size:     10,
		TTL:      time.Minute,
		OnChange: func(ch Change) { changes = append(changes, ch) },
		Manager:  manager,
	})
	assert.Equal(t, []string{"expenses", "income", "budget", "goals"}, Names())
	assert.Equal(t, "budget", cols.Budget.Collection())

	_, err := cols.Income.Add(ctx, user.ID, &models.Income{Source: "Salary", Entry: models.Entry{Amount: 1000}})
	require.NoError(t, err)
	snap, err := cols.Income.List(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, snap.Records, 1)
	require.Len(t, changes, 1)
	assert.Equal(t, "income", changes[0].Collection)
	assert.Zero(t, manager.CleanNow())
}

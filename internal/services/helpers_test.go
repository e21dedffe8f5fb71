package services

import (
	"context"
	"testing"
	"time"

	"budgetmaster/internal/logger"
	"budgetmaster/internal/models"
	"budgetmaster/internal/store"
	"budgetmaster/internal/testutil"

	"gorm.io/gorm"
)

func init() {
	logger.Init("test")
}

// setupCollections returns cached collections over a fresh database and a
// user that owns nothing yet.
func setupCollections(t *testing.T) (*gorm.DB, *store.Collections, *models.User) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	cols := store.NewGormCollections(db, store.CacheConfig{Size: 100, TTL: time.Minute})
	return db, cols, testutil.CreateTestUser(t, db)
}

func ptr[T any](v T) *T { return &v }

var ctx = context.Background()

package store

import (
	"time"

	"budgetmaster/internal/cache"
	"budgetmaster/internal/models"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/gorm"
)

// Collections bundles the four cached record collections.
type Collections struct {
	Expenses *Cached[models.Expense]
	Income   *Cached[models.Income]
	Budget   *Cached[models.BudgetItem]
	Goals    *Cached[models.Goal]
}

// CacheConfig configures the snapshot caches placed in front of each backend.
type CacheConfig struct {
	Size     int
	TTL      time.Duration
	OnChange func(Change)
	// Manager, when set, sweeps expired snapshots of every collection.
	Manager *cache.Manager
}

// Names returns the collection names in a fixed order.
func Names() []string {
	return []string{
		models.Expense{}.TableName(),
		models.Income{}.TableName(),
		models.BudgetItem{}.TableName(),
		models.Goal{}.TableName(),
	}
}

// NewGormCollections serves every collection from the relational database.
func NewGormCollections(db *gorm.DB, cfg CacheConfig) *Collections {
	return &Collections{
		Expenses: wrap(NewGormBackend[models.Expense](db), cfg),
		Income:   wrap(NewGormBackend[models.Income](db), cfg),
		Budget:   wrap(NewGormBackend[models.BudgetItem](db), cfg),
		Goals:    wrap(NewGormBackend[models.Goal](db), cfg),
	}
}

// NewMongoCollections serves every collection from the document database.
func NewMongoCollections(db *mongo.Database, cfg CacheConfig) *Collections {
	return &Collections{
		Expenses: wrap(NewMongoBackend[models.Expense](db), cfg),
		Income:   wrap(NewMongoBackend[models.Income](db), cfg),
		Budget:   wrap(NewMongoBackend[models.BudgetItem](db), cfg),
		Goals:    wrap(NewMongoBackend[models.Goal](db), cfg),
	}
}

func wrap[T any](backend Backend[T], cfg CacheConfig) *Cached[T] {
	snapshots := cache.NewLRUCache[Snapshot[T]](cfg.Size, cfg.TTL)
	if cfg.Manager != nil {
		cfg.Manager.Register(snapshots)
	}
	var opts []CachedOption[T]
	if cfg.OnChange != nil {
		opts = append(opts, WithChangeHook[T](cfg.OnChange))
	}
	return NewCached(backend, snapshots, opts...)
}

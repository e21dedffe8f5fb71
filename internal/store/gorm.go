package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type gormBackend[T any, PT Owned[T]] struct {
	db   *gorm.DB
	name string
}

// NewGormBackend returns a relational backend for the model T.
func NewGormBackend[T any, PT Owned[T]](db *gorm.DB) Backend[T] {
	return &gormBackend[T, PT]{db: db, name: collectionOf[T, PT]()}
}

func (b *gormBackend[T, PT]) Collection() string { return b.name }

func (b *gormBackend[T, PT]) Add(ctx context.Context, ownerID string, rec *T) (string, error) {
	p := PT(rec)
	p.SetOwnerID(ownerID)
	p.Prepare(time.Now().UTC())
	if err := b.db.WithContext(ctx).Create(rec).Error; err != nil {
		return "", fmt.Errorf("insert into %s: %w", b.name, err)
	}
	return p.GetID(), nil
}

func (b *gormBackend[T, PT]) List(ctx context.Context, ownerID string) ([]T, error) {
	out := make([]T, 0)
	err := b.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", b.name, err)
	}
	return out, nil
}

func (b *gormBackend[T, PT]) Delete(ctx context.Context, ownerID, id string) error {
	result := b.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(PT(new(T)))
	if result.Error != nil {
		return fmt.Errorf("delete from %s: %w", b.name, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

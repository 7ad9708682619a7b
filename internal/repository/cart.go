package repository

import (
	"context"
	"equistore-backend/internal/apperr"
	"equistore-backend/internal/model"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionTTL is the cart retention window: records untouched for longer
// than this are treated as gone and purged by the background sweep.
const SessionTTL = 24 * time.Hour

type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*model.Cart, error)
	Upsert(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, sessionID string) error
	PurgeExpired(ctx context.Context) (int64, error)
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND updated_at > ?", sessionID, time.Now().Add(-SessionTTL)).
		First(&cart).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence("get cart", err)
	}

	return &cart, nil
}

// Upsert replaces the cart items wholesale, last writer wins.
func (r *cartRepoImpl) Upsert(ctx context.Context, cart *model.Cart) error {
	cart.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		UpdateAll: true,
	}).Create(cart).Error

	if err != nil {
		return apperr.Persistence("upsert cart", err)
	}

	return nil
}

func (r *cartRepoImpl) Delete(ctx context.Context, sessionID string) error {
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&model.Cart{}).Error

	if err != nil {
		return apperr.Persistence("delete cart", err)
	}

	return nil
}

func (r *cartRepoImpl) PurgeExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("updated_at <= ?", time.Now().Add(-SessionTTL)).
		Delete(&model.Cart{})

	if result.Error != nil {
		return 0, apperr.Persistence("purge expired carts", result.Error)
	}

	return result.RowsAffected, nil
}

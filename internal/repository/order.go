package repository

import (
	"context"
	"equistore-backend/internal/apperr"
	"equistore-backend/internal/model"
	"errors"
	"time"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByOrderID(ctx context.Context, orderID string) (*model.Order, error)
	ListAll(ctx context.Context) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*model.Order, error)
	AttachReceipt(ctx context.Context, orderID, receiptURL string) (*model.Order, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return apperr.Persistence("create order", err)
	}
	return nil
}

func (r *orderRepoImpl) FindByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&order).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence("find order", err)
	}

	return &order, nil
}

func (r *orderRepoImpl) ListAll(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, apperr.Persistence("list orders", err)
	}

	return orders, nil
}

func (r *orderRepoImpl) UpdateStatus(ctx context.Context, orderID, status string) (*model.Order, error) {
	return r.updateOrder(ctx, orderID, map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
}

func (r *orderRepoImpl) AttachReceipt(ctx context.Context, orderID, receiptURL string) (*model.Order, error) {
	return r.updateOrder(ctx, orderID, map[string]interface{}{
		"receipt_img": receiptURL,
		"status":      model.StatusPendingVerification,
		"updated_at":  time.Now(),
	})
}

// updateOrder applies the given column updates and returns the updated record.
// A missing orderID is reported as NotFound, not a silent no-op.
func (r *orderRepoImpl) updateOrder(ctx context.Context, orderID string, updates map[string]interface{}) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Order{}).
			Where("order_id = ?", orderID).
			Updates(updates)

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// Fetch the updated record within the same transaction
		return tx.Where("order_id = ?", orderID).First(&order).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence("update order", err)
	}

	return &order, nil
}

package service

import (
	"context"
	"equistore-backend/internal/apperr"
	"equistore-backend/internal/model"
	"equistore-backend/internal/repository"
	"errors"
	"time"

	"go.uber.org/zap"
)

type CartService interface {
	Get(ctx context.Context, sessionID string) (*model.Cart, error)
	Replace(ctx context.Context, sessionID string, items []model.CartItem) (*model.Cart, error)
	Clear(ctx context.Context, sessionID string) error
	RunExpirySweep(ctx context.Context, interval time.Duration)
}

type cartServiceImpl struct {
	cartRepo repository.CartRepository
	logger   *zap.Logger
}

func NewCartService(cartRepo repository.CartRepository, logger *zap.Logger) CartService {
	return &cartServiceImpl{
		cartRepo: cartRepo,
		logger:   logger,
	}
}

// Get never fails for an unknown session: absence is an empty cart.
func (s *cartServiceImpl) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return &model.Cart{
				SessionID: sessionID,
				Items:     []model.CartItem{},
			}, nil
		}
		return nil, err
	}

	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}

	return cart, nil
}

// Replace overwrites the cart items wholesale; there is no merge.
func (s *cartServiceImpl) Replace(ctx context.Context, sessionID string, items []model.CartItem) (*model.Cart, error) {
	if items == nil {
		items = []model.CartItem{}
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, apperr.Validationf("item quantity must be positive")
		}
	}

	cart := &model.Cart{
		SessionID: sessionID,
		Items:     items,
	}
	if err := s.cartRepo.Upsert(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (s *cartServiceImpl) Clear(ctx context.Context, sessionID string) error {
	return s.cartRepo.Delete(ctx, sessionID)
}

// RunExpirySweep purges carts past the retention window on a ticker.
// Blocks until ctx is cancelled; run it in its own goroutine.
func (s *cartServiceImpl) RunExpirySweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := s.cartRepo.PurgeExpired(ctx)
			if err != nil {
				s.logger.Warn("cart expiry sweep failed", zap.Error(err))
				continue
			}
			if purged > 0 {
				s.logger.Info("purged expired carts", zap.Int64("count", purged))
			}
		}
	}
}

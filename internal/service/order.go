package service

import (
	"context"
	"equistore-backend/internal/apperr"
	"equistore-backend/internal/dto"
	"equistore-backend/internal/model"
	"equistore-backend/internal/repository"
	"fmt"
	"math/rand/v2"
	"regexp"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Canonical order reference format. Generated IDs always use it and
// client-supplied IDs must match it too.
var orderIDPattern = regexp.MustCompile(`^EQ-\d{4}$`)

type OrderService interface {
	Create(ctx context.Context, req *dto.CreateOrderRequest) (*model.Order, error)
	GetByOrderID(ctx context.Context, orderID string) (*model.Order, error)
	ListAll(ctx context.Context) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*model.Order, error)
	AttachReceipt(ctx context.Context, orderID, receiptURL string) (*model.Order, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) Create(ctx context.Context, req *dto.CreateOrderRequest) (*model.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperr.Validationf("order must contain at least one item")
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, apperr.Validationf("item quantity must be positive")
		}
	}
	if req.Total.IsNegative() || req.Subtotal.IsNegative() || req.ShippingFee.IsNegative() {
		return nil, apperr.Validationf("amounts must not be negative")
	}

	orderID := req.OrderID
	if orderID == "" {
		orderID = GenerateOrderID()
	} else if !orderIDPattern.MatchString(orderID) {
		return nil, apperr.Validationf("order id %q does not match format EQ-####", orderID)
	}

	customer := req.Customer
	if customer.Name == "" {
		customer.Name = "Guest"
	}

	subtotal := req.Subtotal
	if subtotal.IsZero() {
		subtotal = lo.Reduce(req.Items, func(sum decimal.Decimal, item model.OrderItem, _ int) decimal.Decimal {
			return sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}, decimal.Zero)
	}
	total := req.Total
	if total.IsZero() {
		total = subtotal.Add(req.ShippingFee)
	}

	order := &model.Order{
		OrderID:        orderID,
		Customer:       customer,
		Items:          req.Items,
		PaymentMethod:  req.PaymentMethod,
		DeliveryMethod: req.DeliveryMethod,
		Subtotal:       subtotal,
		ShippingFee:    req.ShippingFee,
		Total:          total,
		Status:         model.StatusAwaitingPayment,
	}

	// No collision check on generated IDs, the primary key constraint
	// is the backstop.
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *orderServiceImpl) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	return s.orderRepo.FindByOrderID(ctx, orderID)
}

func (s *orderServiceImpl) ListAll(ctx context.Context) ([]*model.Order, error) {
	return s.orderRepo.ListAll(ctx)
}

func (s *orderServiceImpl) UpdateStatus(ctx context.Context, orderID, status string) (*model.Order, error) {
	if !model.KnownStatus(status) {
		return nil, apperr.Validationf("unknown status %q", status)
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, status)
}

// AttachReceipt stores the receipt URL and forces the order into
// Pending Verification regardless of its current status.
func (s *orderServiceImpl) AttachReceipt(ctx context.Context, orderID, receiptURL string) (*model.Order, error) {
	return s.orderRepo.AttachReceipt(ctx, orderID, receiptURL)
}

// GenerateOrderID returns a reference like EQ-4821, four random digits
// in [1000,9999].
func GenerateOrderID() string {
	return fmt.Sprintf("EQ-%d", rand.IntN(9000)+1000)
}

package service_test

import (
	"errors"
	"regexp"
	"testing"

	"equistore-backend/internal/apperr"
	"equistore-backend/internal/dto"
	"equistore-backend/internal/model"
	"equistore-backend/internal/service"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderIDRe = regexp.MustCompile(`^EQ-\d{4}$`)

func fakeCreateRequest() *dto.CreateOrderRequest {
	return &dto.CreateOrderRequest{
		Customer: model.Customer{
			Name:    gofakeit.Name(),
			Email:   gofakeit.Email(),
			Address: gofakeit.Street(),
		},
		Items: []model.OrderItem{
			{
				ProductID: gofakeit.UUID(),
				Name:      gofakeit.ProductName(),
				Price:     decimal.NewFromInt(50),
				Quantity:  2,
			},
		},
		PaymentMethod:  "bank transfer",
		DeliveryMethod: "courier",
		Subtotal:       decimal.NewFromInt(100),
		ShippingFee:    decimal.NewFromInt(0),
		Total:          decimal.NewFromInt(100),
	}
}

func TestGenerateOrderIDFormat(t *testing.T) {
	for i := 0; i < 500; i++ {
		id := service.GenerateOrderID()
		require.Regexp(t, orderIDRe, id)
	}
}

func TestCreateGeneratesID(t *testing.T) {
	svc := newOrderService(t)
	ctx := t.Context()

	order, err := svc.Create(ctx, fakeCreateRequest())
	require.NoError(t, err)

	assert.Regexp(t, orderIDRe, order.OrderID)
	assert.Equal(t, model.StatusAwaitingPayment, order.Status)
	assert.False(t, order.CreatedAt.IsZero())

	// persisted and retrievable by the generated id
	found, err := svc.GetByOrderID(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderID, found.OrderID)
}

func TestCreateDefaultsGuestName(t *testing.T) {
	svc := newOrderService(t)

	req := fakeCreateRequest()
	req.Customer.Name = ""

	order, err := svc.Create(t.Context(), req)
	require.NoError(t, err)
	assert.Equal(t, "Guest", order.Customer.Name)
}

func TestCreateDerivesAmounts(t *testing.T) {
	svc := newOrderService(t)

	req := fakeCreateRequest()
	req.Subtotal = decimal.Zero
	req.Total = decimal.Zero
	req.ShippingFee = decimal.NewFromInt(15)

	order, err := svc.Create(t.Context(), req)
	require.NoError(t, err)

	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(100)), "subtotal: %s", order.Subtotal)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(115)), "total: %s", order.Total)
}

func TestCreateValidation(t *testing.T) {
	svc := newOrderService(t)

	tests := []struct {
		name   string
		mutate func(*dto.CreateOrderRequest)
	}{
		{
			name:   "no items",
			mutate: func(r *dto.CreateOrderRequest) { r.Items = nil },
		},
		{
			name:   "zero quantity",
			mutate: func(r *dto.CreateOrderRequest) { r.Items[0].Quantity = 0 },
		},
		{
			name:   "negative total",
			mutate: func(r *dto.CreateOrderRequest) { r.Total = decimal.NewFromInt(-1) },
		},
		{
			name:   "malformed supplied id",
			mutate: func(r *dto.CreateOrderRequest) { r.OrderID = "ORDER-42" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := fakeCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(t.Context(), req)
			require.Error(t, err)

			var validationErr *apperr.ValidationError
			assert.True(t, errors.As(err, &validationErr), "want ValidationError, got %v", err)
		})
	}
}

func TestCreateAcceptsCanonicalSuppliedID(t *testing.T) {
	svc := newOrderService(t)

	req := fakeCreateRequest()
	req.OrderID = "EQ-4821"

	order, err := svc.Create(t.Context(), req)
	require.NoError(t, err)
	assert.Equal(t, "EQ-4821", order.OrderID)
}

func TestAttachReceiptForcesPendingVerification(t *testing.T) {
	svc := newOrderService(t)
	ctx := t.Context()

	order, err := svc.Create(ctx, fakeCreateRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, order.OrderID, model.StatusShipped)
	require.NoError(t, err)

	// attach always lands on Pending Verification regardless of prior status
	updated, err := svc.AttachReceipt(ctx, order.OrderID, "http://localhost/uploads/receipt-1.jpg")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPendingVerification, updated.Status)

	updated, err = svc.AttachReceipt(ctx, order.OrderID, "http://localhost/uploads/receipt-2.jpg")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPendingVerification, updated.Status)
	require.NotNil(t, updated.ReceiptImg)
	assert.Equal(t, "http://localhost/uploads/receipt-2.jpg", *updated.ReceiptImg)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := newOrderService(t)
	ctx := t.Context()

	order, err := svc.Create(ctx, fakeCreateRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, order.OrderID, "Teleported")
	require.Error(t, err)

	var validationErr *apperr.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	svc := newOrderService(t)

	_, err := svc.UpdateStatus(t.Context(), "EQ-0000", model.StatusShipped)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

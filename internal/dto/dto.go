package dto

import (
	"equistore-backend/internal/model"
	"time"

	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	OrderID        string            `json:"orderId,omitempty"`
	Customer       model.Customer    `json:"customer"`
	Items          []model.OrderItem `json:"items"`
	PaymentMethod  string            `json:"paymentMethod,omitempty"`
	DeliveryMethod string            `json:"deliveryMethod,omitempty"`
	Subtotal       decimal.Decimal   `json:"subtotal"`
	ShippingFee    decimal.Decimal   `json:"shippingFee"`
	Total          decimal.Decimal   `json:"total"`
}

type OrderResponse struct {
	Success bool         `json:"success"`
	Order   *model.Order `json:"order"`
}

type OrderListResponse struct {
	Success bool           `json:"success"`
	Orders  []*model.Order `json:"orders"`
}

type TrackResponse struct {
	Success      bool            `json:"success"`
	OrderID      string          `json:"orderId"`
	Status       string          `json:"status"`
	CustomerName string          `json:"customerName"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type UploadReceiptResponse struct {
	Success bool         `json:"success"`
	FileURL string       `json:"fileUrl"`
	Order   *model.Order `json:"order"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ReplaceCartRequest struct {
	Items []model.CartItem `json:"items"`
}

type CartResponse struct {
	Success bool        `json:"success"`
	Cart    *model.Cart `json:"cart"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order lifecycle statuses. New orders start in StatusAwaitingPayment;
// uploading a receipt forces StatusPendingVerification. Admin updates
// must use one of these values.
const (
	StatusAwaitingPayment     = "Awaiting Payment"
	StatusPendingVerification = "Pending Verification"
	StatusApproved            = "Approved"
	StatusShipped             = "Shipped"
	StatusDelivered           = "Delivered"
	StatusCancelled           = "Cancelled"
)

var knownStatuses = map[string]struct{}{
	StatusAwaitingPayment:     {},
	StatusPendingVerification: {},
	StatusApproved:            {},
	StatusShipped:             {},
	StatusDelivered:           {},
	StatusCancelled:           {},
}

func KnownStatus(status string) bool {
	_, ok := knownStatuses[status]
	return ok
}

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

type Order struct {
	OrderID        string          `gorm:"primaryKey;size:64;not null" json:"orderId"` // reference code, EQ-####
	Customer       Customer        `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Items          []OrderItem     `gorm:"serializer:json" json:"items"`
	PaymentMethod  string          `gorm:"size:64" json:"paymentMethod,omitempty"`
	DeliveryMethod string          `gorm:"size:64" json:"deliveryMethod,omitempty"`
	Subtotal       decimal.Decimal `gorm:"type:numeric;not null" json:"subtotal"`
	ShippingFee    decimal.Decimal `gorm:"type:numeric;not null" json:"shippingFee"`
	Total          decimal.Decimal `gorm:"type:numeric;not null" json:"total"`
	Status         string          `gorm:"size:32;index;not null" json:"status"`
	ReceiptImg     *string         `gorm:"size:512" json:"receiptImg"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type CartItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

type Cart struct {
	SessionID string     `gorm:"primaryKey;size:128;not null" json:"sessionId"` // client-supplied session key
	Items     []CartItem `gorm:"serializer:json" json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

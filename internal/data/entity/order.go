package entity

import (
	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

func IsValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
	PaymentCreditCard     PaymentMethod = "Credit Card"
	PaymentPayPal         PaymentMethod = "PayPal"
)

func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCashOnDelivery, PaymentCreditCard, PaymentPayPal:
		return true
	}
	return false
}

type Order struct {
	Base
	UserID          uuid.UUID     `db:"user_id"`
	Items           []OrderItem   `db:"-"`
	TotalAmount     float64       `db:"total_amount"`
	Status          OrderStatus   `db:"status"`
	ShippingAddress string        `db:"shipping_address"`
	PaymentMethod   PaymentMethod `db:"payment_method"`
}

// OrderItem snapshots the product name and price at order time, so a
// later catalog price change never rewrites past orders.
type OrderItem struct {
	BaseSimple
	OrderID   uuid.UUID `db:"order_id"`
	ProductID uuid.UUID `db:"product_id"`
	Name      string    `db:"name"`
	Price     float64   `db:"price"`
	Quantity  int       `db:"quantity"`
}

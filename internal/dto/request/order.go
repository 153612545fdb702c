package request

type OrderItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string             `json:"shippingAddress" validate:"required"`
	PaymentMethod   string             `json:"paymentMethod" validate:"required,oneof='Cash on Delivery' 'Credit Card' 'PayPal'"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

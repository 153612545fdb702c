package response

import (
	"time"

	"pet-grooming/internal/data/entity"
)

type OrderItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type OrderResponse struct {
	ID              string               `json:"id"`
	Items           []OrderItemResponse  `json:"items"`
	TotalAmount     float64              `json:"totalAmount"`
	Status          entity.OrderStatus   `json:"status"`
	ShippingAddress string               `json:"shippingAddress"`
	PaymentMethod   entity.PaymentMethod `json:"paymentMethod"`
	CreatedAt       time.Time            `json:"createdAt"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

func OrderToResponse(o *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID.String(),
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return OrderResponse{
		ID:              o.ID.String(),
		Items:           items,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		CreatedAt:       o.CreatedAt,
	}
}

package adaptor

import (
	"encoding/json"
	"net/http"

	"pet-grooming/internal/dto/request"
	"pet-grooming/internal/usecase"
	"pet-grooming/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// Create handles POST /api/orders/create
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.CreateOrder(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create order")
		return
	}

	utils.ResponseCreated(w, "Order created", response)
}

// GetMine handles GET /api/orders/my-orders
func (h *OrderHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	response, err := h.service.GetUserOrders(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved", response)
}

// GetByID handles GET /api/orders/{id}
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	orderID := chi.URLParam(r, "id")

	response, err := h.service.GetOrderByID(r.Context(), userID.String(), orderID)
	if err != nil {
		handleServiceError(w, h.log, err, "get order")
		return
	}

	utils.ResponseSuccess(w, "Order retrieved", response)
}

// UpdateStatus handles PATCH /api/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	orderID := chi.URLParam(r, "id")

	var req request.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.UpdateStatus(r.Context(), userID.String(), orderID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, "Order status updated", response)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pet-grooming/internal/data/entity"
	"pet-grooming/internal/data/repository"
	"pet-grooming/internal/dto/request"
	"pet-grooming/internal/dto/response"
	"pet-grooming/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID string, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetUserOrders(ctx context.Context, userID string) (*response.OrderListResponse, error)
	GetOrderByID(ctx context.Context, userID, orderID string) (*response.OrderResponse, error)
	UpdateStatus(ctx context.Context, userID, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository // grouping orderRepo & productRepo
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, userID string, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	// 1. Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user ID", ErrInvalidInput)
	}

	// 2. Load every product, check availability and stock for friendly
	// errors. Name and price are snapshotted into the order items. The
	// guarded decrement inside the insert transaction is the real
	// arbiter under concurrency.
	now := time.Now()
	orderID := uuid.New()
	items := make([]entity.OrderItem, 0, len(req.Items))
	var total float64

	for _, item := range req.Items {
		productUUID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed product ID %q", ErrInvalidInput, item.ProductID)
		}

		product, err := s.repo.Product.FindByID(ctx, productUUID)
		if err != nil {
			s.log.Error("Failed to find product for order", zap.Error(err),
				zap.String("product_id", item.ProductID))
			return nil, fmt.Errorf("find product: %w", err)
		}
		if product == nil {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, item.ProductID)
		}
		if !product.InStock {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, product.Name)
		}
		if product.StockQuantity < item.Quantity {
			return nil, fmt.Errorf("%w: %s has %d left", ErrInsufficientStock, product.Name, product.StockQuantity)
		}

		items = append(items, entity.OrderItem{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			OrderID:   orderID,
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
		total += product.Price * float64(item.Quantity)
	}

	// 3. Persist order, items and stock decrements in one transaction:
	// a failure anywhere leaves stock untouched
	order := &entity.Order{
		Base: entity.Base{
			ID:        orderID,
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:          userUUID,
		Items:           items,
		TotalAmount:     total,
		Status:          entity.OrderStatusPending,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   entity.PaymentMethod(req.PaymentMethod),
	}

	if err := s.repo.Order.Create(ctx, order); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			// Lost a stock race after the pre-check passed
			s.log.Warn("Order rejected on stock guard", zap.Error(err), zap.String("user_id", userID))
			return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, err)
		}
		s.log.Error("Failed to create order", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID),
		zap.Float64("total", total),
		zap.Int("items", len(items)))

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string) (*response.OrderListResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user ID", ErrInvalidInput)
	}

	orders, err := s.repo.Order.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list orders: %w", err)
	}

	list := make([]response.OrderResponse, 0, len(orders))
	for _, o := range orders {
		list = append(list, response.OrderToResponse(o))
	}

	return &response.OrderListResponse{Orders: list}, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, userID, orderID string) (*response.OrderResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user ID", ErrInvalidInput)
	}

	orderUUID, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed order ID", ErrInvalidInput)
	}

	order, err := s.repo.Order.FindByID(ctx, orderUUID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("find order: %w", err)
	}
	// Owner scoping: someone else's order looks identical to no order.
	if order == nil || order.UserID != userUUID {
		return nil, ErrNotFound
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, userID, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	status := entity.OrderStatus(req.Status)
	if !entity.IsValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user ID", ErrInvalidInput)
	}

	orderUUID, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed order ID", ErrInvalidInput)
	}

	if err := s.repo.Order.UpdateStatus(ctx, orderUUID, userUUID, status); err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrNotFound
		}
		s.log.Error("Failed to update order status", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("update order status: %w", err)
	}

	order, err := s.repo.Order.FindByID(ctx, orderUUID)
	if err != nil {
		return nil, fmt.Errorf("reload order: %w", err)
	}
	if order == nil {
		return nil, ErrNotFound
	}

	s.log.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("status", req.Status))

	resp := response.OrderToResponse(order)
	return &resp, nil
}

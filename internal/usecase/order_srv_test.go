package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pet-grooming/internal/data/entity"
	"pet-grooming/internal/data/repository"
	"pet-grooming/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		cp := *p
		f.products[p.ID] = &cp
	}
	return f
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *product
	f.products[product.ID] = &cp
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Product
	for _, p := range f.products {
		if filter.Category != "" && string(p.Category) != filter.Category {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductRepo) CountAll(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	list, _ := f.FindAll(ctx, filter, 0, 0)
	return int64(len(list)), nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	return f.Create(ctx, product)
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, id)
	return nil
}

// fakeOrderRepo mimics the real repository's transactional Create:
// order, items and stock decrements land together or not at all.
type fakeOrderRepo struct {
	mu        sync.Mutex
	orders    map[uuid.UUID]*entity.Order
	products  *fakeProductRepo
	createErr error
}

func newFakeOrderRepo(products *fakeProductRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:   make(map[uuid.UUID]*entity.Order),
		products: products,
	}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}

	f.products.mu.Lock()
	defer f.products.mu.Unlock()

	// Check everything before touching anything, like a rolled-back tx
	for _, item := range order.Items {
		p, ok := f.products.products[item.ProductID]
		if !ok || p.StockQuantity < item.Quantity {
			return repository.ErrInsufficientStock
		}
	}
	for _, item := range order.Items {
		p := f.products.products[item.ProductID]
		p.StockQuantity -= item.Quantity
		if p.StockQuantity == 0 {
			p.InStock = false
		}
	}

	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id, userID uuid.UUID, status entity.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok || o.UserID != userID {
		return repository.ErrNotFound
	}
	o.Status = status
	return nil
}

func testProduct(name string, price float64, stock int) *entity.Product {
	now := time.Now()
	return &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          name,
		Description:   "test product",
		Price:         price,
		Category:      entity.CategoryFood,
		PetTypes:      []string{"All"},
		InStock:       stock > 0,
		StockQuantity: stock,
	}
}

func newTestOrderService(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) OrderService {
	repo := &repository.Repository{
		Product: productRepo,
		Order:   orderRepo,
	}
	return NewOrderService(repo, zap.NewNop())
}

func TestOrderService_CreateOrder(t *testing.T) {
	userID := uuid.New().String()

	t.Run("snapshots price and decrements stock", func(t *testing.T) {
		kibble := testProduct("Premium Kibble", 24.99, 10)
		products := newFakeProductRepo(kibble)
		svc := newTestOrderService(products, newFakeOrderRepo(products))

		resp, err := svc.CreateOrder(context.Background(), userID, &request.CreateOrderRequest{
			Items: []request.OrderItemRequest{
				{ProductID: kibble.ID.String(), Quantity: 3},
			},
			ShippingAddress: "12 Bone Lane",
			PaymentMethod:   "Credit Card",
		})
		require.NoError(t, err)

		assert.Equal(t, entity.OrderStatusPending, resp.Status)
		assert.InDelta(t, 74.97, resp.TotalAmount, 0.001)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Premium Kibble", resp.Items[0].Name)
		assert.Equal(t, 24.99, resp.Items[0].Price)

		left, err := products.FindByID(context.Background(), kibble.ID)
		require.NoError(t, err)
		assert.Equal(t, 7, left.StockQuantity)
	})

	t.Run("rejects when stock is short", func(t *testing.T) {
		kibble := testProduct("Premium Kibble", 24.99, 2)
		products := newFakeProductRepo(kibble)
		svc := newTestOrderService(products, newFakeOrderRepo(products))

		_, err := svc.CreateOrder(context.Background(), userID, &request.CreateOrderRequest{
			Items: []request.OrderItemRequest{
				{ProductID: kibble.ID.String(), Quantity: 5},
			},
			ShippingAddress: "12 Bone Lane",
			PaymentMethod:   "PayPal",
		})
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("failed insert leaves stock untouched", func(t *testing.T) {
		kibble := testProduct("Premium Kibble", 24.99, 5)
		products := newFakeProductRepo(kibble)
		orders := newFakeOrderRepo(products)
		orders.createErr = errors.New("connection reset")
		svc := newTestOrderService(products, orders)

		_, err := svc.CreateOrder(context.Background(), userID, &request.CreateOrderRequest{
			Items: []request.OrderItemRequest{
				{ProductID: kibble.ID.String(), Quantity: 2},
			},
			ShippingAddress: "12 Bone Lane",
			PaymentMethod:   "PayPal",
		})
		require.Error(t, err)

		left, err := products.FindByID(context.Background(), kibble.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, left.StockQuantity)
	})

	t.Run("stock race at insert maps to insufficient stock", func(t *testing.T) {
		kibble := testProduct("Premium Kibble", 24.99, 5)
		products := newFakeProductRepo(kibble)
		orders := newFakeOrderRepo(products)
		orders.createErr = repository.ErrInsufficientStock
		svc := newTestOrderService(products, orders)

		_, err := svc.CreateOrder(context.Background(), userID, &request.CreateOrderRequest{
			Items: []request.OrderItemRequest{
				{ProductID: kibble.ID.String(), Quantity: 2},
			},
			ShippingAddress: "12 Bone Lane",
			PaymentMethod:   "PayPal",
		})
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		products := newFakeProductRepo()
		svc := newTestOrderService(products, newFakeOrderRepo(products))

		_, err := svc.CreateOrder(context.Background(), userID, &request.CreateOrderRequest{
			Items: []request.OrderItemRequest{
				{ProductID: uuid.New().String(), Quantity: 1},
			},
			ShippingAddress: "12 Bone Lane",
			PaymentMethod:   "PayPal",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects out of stock product", func(t *testing.T) {
		gone := testProduct("Discontinued Chew", 5, 0)
		products := newFakeProductRepo(gone)
		svc := newTestOrderService(products, newFakeOrderRepo(products))

		_, err := svc.CreateOrder(context.Background(), userID, &request.CreateOrderRequest{
			Items: []request.OrderItemRequest{
				{ProductID: gone.ID.String(), Quantity: 1},
			},
			ShippingAddress: "12 Bone Lane",
			PaymentMethod:   "PayPal",
		})
		assert.ErrorIs(t, err, ErrProductUnavailable)
	})

	t.Run("totals across multiple items", func(t *testing.T) {
		kibble := testProduct("Premium Kibble", 20, 10)
		brush := testProduct("Slicker Brush", 12.5, 4)
		products := newFakeProductRepo(kibble, brush)
		svc := newTestOrderService(products, newFakeOrderRepo(products))

		resp, err := svc.CreateOrder(context.Background(), userID, &request.CreateOrderRequest{
			Items: []request.OrderItemRequest{
				{ProductID: kibble.ID.String(), Quantity: 2},
				{ProductID: brush.ID.String(), Quantity: 1},
			},
			ShippingAddress: "12 Bone Lane",
			PaymentMethod:   "Cash on Delivery",
		})
		require.NoError(t, err)
		assert.InDelta(t, 52.5, resp.TotalAmount, 0.001)
		assert.Len(t, resp.Items, 2)
	})
}

func TestOrderService_GetOrderByID(t *testing.T) {
	kibble := testProduct("Premium Kibble", 20, 10)
	products := newFakeProductRepo(kibble)
	svc := newTestOrderService(products, newFakeOrderRepo(products))

	owner := uuid.New().String()
	created, err := svc.CreateOrder(context.Background(), owner, &request.CreateOrderRequest{
		Items:           []request.OrderItemRequest{{ProductID: kibble.ID.String(), Quantity: 1}},
		ShippingAddress: "12 Bone Lane",
		PaymentMethod:   "PayPal",
	})
	require.NoError(t, err)

	t.Run("owner can read", func(t *testing.T) {
		resp, err := svc.GetOrderByID(context.Background(), owner, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, resp.ID)
	})

	t.Run("stranger sees not found", func(t *testing.T) {
		_, err := svc.GetOrderByID(context.Background(), uuid.New().String(), created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	kibble := testProduct("Premium Kibble", 20, 10)
	products := newFakeProductRepo(kibble)
	svc := newTestOrderService(products, newFakeOrderRepo(products))

	owner := uuid.New().String()
	created, err := svc.CreateOrder(context.Background(), owner, &request.CreateOrderRequest{
		Items:           []request.OrderItemRequest{{ProductID: kibble.ID.String(), Quantity: 1}},
		ShippingAddress: "12 Bone Lane",
		PaymentMethod:   "PayPal",
	})
	require.NoError(t, err)

	t.Run("owner cancels", func(t *testing.T) {
		resp, err := svc.UpdateStatus(context.Background(), owner, created.ID,
			&request.UpdateOrderStatusRequest{Status: "Cancelled"})
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCancelled, resp.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(context.Background(), owner, created.ID,
			&request.UpdateOrderStatusRequest{Status: "Vanished"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

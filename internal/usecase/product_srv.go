package usecase

import (
	"context"
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

type ProductService interface {
	// Public endpoints
	GetProducts(ctx context.Context, filter repository.ProductFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error)
	GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error)

	// Admin endpoints
	CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, productID string, req *request.ProductRequest) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type productService struct {
	repo repository.ProductRepository
	log  *zap.Logger
}

func NewProductService(repo repository.ProductRepository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

func (s *productService) GetProducts(ctx context.Context, filter repository.ProductFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error) {
	if filter.Category != "" && !entity.IsValidProductCategory(entity.ProductCategory(filter.Category)) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, filter.Category)
	}

	products, err := s.repo.FindAll(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}

	total, err := s.repo.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count products", zap.Error(err))
		return nil, fmt.Errorf("count products: %w", err)
	}

	list := make([]response.ProductResponse, 0, len(products))
	for _, p := range products {
		list = append(list, response.ProductToResponse(p))
	}

	resp := response.NewPaginatedResponse(list, page.Page, page.Limit(), int(total))
	return &resp, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error) {
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed product ID", ErrInvalidInput)
	}

	product, err := s.repo.FindByID(ctx, productUUID)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, ErrNotFound
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      entity.ProductCategory(req.Category),
		PetTypes:      req.PetTypes,
		Image:         req.Image,
		InStock:       req.StockQuantity > 0,
		StockQuantity: req.StockQuantity,
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if len(product.PetTypes) == 0 {
		product.PetTypes = []string{"All"}
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed product ID", ErrInvalidInput)
	}

	product, err := s.repo.FindByID(ctx, productUUID)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, ErrNotFound
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Category = entity.ProductCategory(req.Category)
	product.Image = req.Image
	product.StockQuantity = req.StockQuantity
	product.InStock = req.StockQuantity > 0
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if len(req.PetTypes) > 0 {
		product.PetTypes = req.PetTypes
	}
	product.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.log.Info("Product updated", zap.String("product_id", productID))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return fmt.Errorf("%w: malformed product ID", ErrInvalidInput)
	}

	product, err := s.repo.FindByID(ctx, productUUID)
	if err != nil {
		return fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return ErrNotFound
	}

	if err := s.repo.Delete(ctx, productUUID); err != nil {
		s.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", productID))
		return fmt.Errorf("delete product: %w", err)
	}

	s.log.Info("Product deleted", zap.String("product_id", productID))
	return nil
}

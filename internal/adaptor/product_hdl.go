package adaptor

import (
	"encoding/json"
	"net/http"

	"pet-grooming/internal/data/repository"
	"pet-grooming/internal/dto/request"
	"pet-grooming/internal/usecase"
	"pet-grooming/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// List handles GET /api/products?category=...&petType=...&page=...&per_page=...
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repository.ProductFilter{
		Category: q.Get("category"),
		PetType:  q.Get("petType"),
	}

	page := request.PaginatedRequest{
		Page:    utils.ParseInt(q.Get("page"), 1),
		PerPage: utils.ParseInt(q.Get("per_page"), 10),
	}

	response, err := h.service.GetProducts(r.Context(), filter, &page)
	if err != nil {
		handleServiceError(w, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved", response)
}

// GetByID handles GET /api/products/{id}
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	response, err := h.service.GetProductByID(r.Context(), productID)
	if err != nil {
		handleServiceError(w, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "Product retrieved", response)
}

// Create handles POST /api/admin/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created", response)
}

// Update handles PUT /api/admin/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.UpdateProduct(r.Context(), productID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "Product updated", response)
}

// Delete handles DELETE /api/admin/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	if err := h.service.DeleteProduct(r.Context(), productID); err != nil {
		handleServiceError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "Product deleted", nil)
}

package response

import (
	"time"

	"pet-grooming/internal/data/entity"
)

type ProductResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Price         float64                `json:"price"`
	Category      entity.ProductCategory `json:"category"`
	PetTypes      []string               `json:"petTypes"`
	Image         string                 `json:"image,omitempty"`
	InStock       bool                   `json:"inStock"`
	StockQuantity int                    `json:"stockQuantity"`
	CreatedAt     time.Time              `json:"createdAt"`
}

func ProductToResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Category:      p.Category,
		PetTypes:      p.PetTypes,
		Image:         p.Image,
		InStock:       p.InStock,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
	}
}

package request

type ProductRequest struct {
	Name          string   `json:"name" validate:"required,max=255"`
	Description   string   `json:"description" validate:"required"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	Category      string   `json:"category" validate:"required,oneof=Toys Food Accessories Health 'Grooming Tools' Clothing"`
	PetTypes      []string `json:"petTypes" validate:"omitempty,dive,oneof=Dog Cat Bird Rabbit All"`
	Image         string   `json:"image" validate:"required"`
	InStock       *bool    `json:"inStock,omitempty"`
	StockQuantity int      `json:"stockQuantity" validate:"min=0"`
}

package entity

type ProductCategory string

const (
	CategoryToys          ProductCategory = "Toys"
	CategoryFood          ProductCategory = "Food"
	CategoryAccessories   ProductCategory = "Accessories"
	CategoryHealth        ProductCategory = "Health"
	CategoryGroomingTools ProductCategory = "Grooming Tools"
	CategoryClothing      ProductCategory = "Clothing"
)

func IsValidProductCategory(c ProductCategory) bool {
	switch c {
	case CategoryToys, CategoryFood, CategoryAccessories,
		CategoryHealth, CategoryGroomingTools, CategoryClothing:
		return true
	}
	return false
}

type Product struct {
	Base
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	Price         float64         `db:"price"`
	Category      ProductCategory `db:"category"`
	PetTypes      []string        `db:"pet_types"`
	Image         string          `db:"image"`
	InStock       bool            `db:"in_stock"`
	StockQuantity int             `db:"stock_quantity"`
}

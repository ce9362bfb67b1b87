package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"max=1000"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" validate:"max=100"`
	Stock       int             `json:"stock" validate:"min=0"`
}

// UpdateProductRequest entrada para editar un producto. Solo precio y existencias son editables.
type UpdateProductRequest struct {
	Price *decimal.Decimal `json:"price"`
	Stock *int             `json:"stock" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse listado filtrado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Meta  ListMeta          `json:"meta"`
}

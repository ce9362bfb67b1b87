package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o servicio del catálogo.
// Solo Price y Stock cambian después de creado (edición manual).
type Product struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Price       decimal.Decimal `yaml:"price"` // precio unitario, >= 0
	Category    string          `yaml:"category"`
	Stock       int             `yaml:"stock"` // >= 0
	CreatedAt   time.Time       `yaml:"created_at"`
	UpdatedAt   time.Time       `yaml:"updated_at"`
}

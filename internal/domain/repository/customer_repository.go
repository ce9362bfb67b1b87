package repository

import "github.com/Bilal2025D/Fatora/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (facturación).
// GetByID y GetByTaxID devuelven (nil, nil) si no existe.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByTaxID(taxID string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}

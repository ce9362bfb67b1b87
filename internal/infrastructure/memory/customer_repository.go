package memory

import (
	"github.com/Bilal2025D/Fatora/internal/domain/entity"
	"github.com/Bilal2025D/Fatora/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria de CustomerRepository.
type CustomerRepo struct {
	items *collection[entity.Customer]
}

// NewCustomerRepository construye el repositorio vacío.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{items: newCollection(shallowClone[entity.Customer])}
}

func (r *CustomerRepo) Create(customer *entity.Customer) error {
	return r.items.insert(customer.ID, customer)
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.items.get(id), nil
}

// GetByTaxID busca por NIF; taxID vacío nunca coincide.
func (r *CustomerRepo) GetByTaxID(taxID string) (*entity.Customer, error) {
	if taxID == "" {
		return nil, nil
	}
	return r.items.find(func(c *entity.Customer) bool { return c.TaxID == taxID }), nil
}

func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	return r.items.list(nil), nil
}

func (r *CustomerRepo) Update(customer *entity.Customer) error {
	return r.items.replace(customer.ID, customer)
}

func (r *CustomerRepo) Delete(id string) error {
	return r.items.remove(id)
}

package memory

import (
	"github.com/Bilal2025D/Fatora/internal/domain/entity"
	"github.com/Bilal2025D/Fatora/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	items *collection[entity.Product]
}

func NewProductRepository() *ProductRepo {
	return &ProductRepo{items: newCollection(shallowClone[entity.Product])}
}

func (r *ProductRepo) Create(product *entity.Product) error {
	return r.items.insert(product.ID, product)
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.items.get(id), nil
}

func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.items.list(nil), nil
}

func (r *ProductRepo) Update(product *entity.Product) error {
	return r.items.replace(product.ID, product)
}

func (r *ProductRepo) Delete(id string) error {
	return r.items.remove(id)
}

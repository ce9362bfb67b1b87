package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Bilal2025D/Fatora/internal/application/dto"
	"github.com/Bilal2025D/Fatora/internal/domain"
	"github.com/Bilal2025D/Fatora/internal/domain/entity"
	"github.com/Bilal2025D/Fatora/internal/domain/repository"
	"github.com/Bilal2025D/Fatora/internal/domain/search"
)

// ProductUseCase casos de uso CRUD para productos. Una vez creado, solo Price y Stock son editables.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrValidation)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("%w: las existencias no pueden ser negativas", domain.ErrInvalidInput)
	}
	now := uc.now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update edita precio y/o existencias. Los campos nil no se tocan.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, fmt.Errorf("%w: las existencias no pueden ser negativas", domain.ErrInvalidInput)
		}
		product.Stock = *in.Stock
	}
	product.UpdatedAt = uc.now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve los productos cuyo nombre, descripción o categoría contienen query.
func (uc *ProductUseCase) List(query string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	values := make([]entity.Product, 0, len(list))
	for _, p := range list {
		values = append(values, *p)
	}
	filtered := search.FilterByQuery(values, query, search.ProductFields...)
	items := make([]dto.ProductResponse, 0, len(filtered))
	for i := range filtered {
		items = append(items, *toProductResponse(&filtered[i]))
	}
	return &dto.ProductListResponse{
		Items: items,
		Meta:  dto.ListMeta{Total: len(items), Query: query},
	}, nil
}

// Delete elimina un producto por ID. Las facturas ya emitidas conservan nombre y precio de sus líneas.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *ProductUseCase) load(id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

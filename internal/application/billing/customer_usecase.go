package billing

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
	"github.com/Bilal2025D/Fatora/pkg/validation"
)

// CustomerUseCase casos de uso para clientes (facturación).
type CustomerUseCase struct {
	repo repository.CustomerRepository
	now  func() time.Time
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, now: time.Now}
}

// Create crea un nuevo cliente. El NIF es opcional pero, si viene, no puede repetirse.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	in = normalizeCustomer(in)
	if err := checkCustomer(in); err != nil {
		return nil, err
	}
	if err := uc.ensureTaxIDFree(in.TaxID, ""); err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		TaxID:     in.TaxID,
		CreatedAt: uc.now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Get obtiene un cliente por ID.
func (uc *CustomerUseCase) Get(id string) (*dto.CustomerResponse, error) {
	c, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Update reemplaza los datos del cliente conservando ID y fecha de alta.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	req := normalizeCustomer(dto.CreateCustomerRequest(in))
	if err := checkCustomer(req); err != nil {
		return nil, err
	}
	c, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureTaxIDFree(req.TaxID, id); err != nil {
		return nil, err
	}
	c.Name = req.Name
	c.Email = req.Email
	c.Phone = req.Phone
	c.Address = req.Address
	c.TaxID = req.TaxID
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Delete elimina el cliente. Las facturas existentes conservan el nombre desnormalizado.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List devuelve los clientes cuyo nombre, email o teléfono contienen query.
func (uc *CustomerUseCase) List(query string) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	filtered := search.FilterByQuery(derefAll(list), query, search.CustomerFields...)
	out := &dto.CustomerListResponse{
		Items: make([]dto.CustomerResponse, 0, len(filtered)),
		Meta:  dto.ListMeta{Total: len(filtered), Query: query},
	}
	for i := range filtered {
		out.Items = append(out.Items, *toCustomerResponse(&filtered[i]))
	}
	return out, nil
}

func (uc *CustomerUseCase) load(id string) (*entity.Customer, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	return c, nil
}

func (uc *CustomerUseCase) ensureTaxIDFree(taxID, selfID string) error {
	if taxID == "" {
		return nil
	}
	existing, err := uc.repo.GetByTaxID(taxID)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%w: ya existe un cliente con NIF %s", domain.ErrDuplicate, taxID)
	}
	return nil
}

func normalizeCustomer(in dto.CreateCustomerRequest) dto.CreateCustomerRequest {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.TaxID = strings.TrimSpace(in.TaxID)
	return in
}

func checkCustomer(in dto.CreateCustomerRequest) error {
	if in.Name == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrValidation)
	}
	if !validation.IsValidEmail(in.Email) {
		return fmt.Errorf("%w: email inválido %q", domain.ErrValidation, in.Email)
	}
	if !validation.IsValidLocalPhone(in.Phone) {
		return fmt.Errorf("%w: teléfono inválido %q (10 dígitos, 05/06/07)", domain.ErrValidation, in.Phone)
	}
	return nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		TaxID:     c.TaxID,
		CreatedAt: c.CreatedAt,
	}
}

// derefAll convierte la copia del repositorio en valores para el filtro.
func derefAll[T any](list []*T) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		out = append(out, *v)
	}
	return out
}

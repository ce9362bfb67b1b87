package memory

import (
	"sync"

	"github.com/Bilal2025D/Fatora/internal/domain"
	"github.com/Bilal2025D/Fatora/internal/domain/entity"
	"github.com/Bilal2025D/Fatora/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación en memoria de InvoiceRepository.
// Mantiene un índice número -> id para garantizar la unicidad del número.
type InvoiceRepo struct {
	mu       sync.Mutex // serializa escrituras que tocan byNumber
	items    *collection[entity.Invoice]
	byNumber map[string]string
}

func NewInvoiceRepository() *InvoiceRepo {
	return &InvoiceRepo{
		items:    newCollection((*entity.Invoice).Clone),
		byNumber: make(map[string]string),
	}
}

func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byNumber[invoice.Number]; taken {
		return domain.ErrDuplicate
	}
	if err := r.items.insert(invoice.ID, invoice); err != nil {
		return err
	}
	r.byNumber[invoice.Number] = invoice.ID
	return nil
}

func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.items.get(id), nil
}

func (r *InvoiceRepo) GetByNumber(number string) (*entity.Invoice, error) {
	r.mu.Lock()
	id, ok := r.byNumber[number]
	r.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return r.items.get(id), nil
}

func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	return r.items.list(nil), nil
}

func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current := r.items.get(invoice.ID)
	if current == nil {
		return domain.ErrNotFound
	}
	if owner, taken := r.byNumber[invoice.Number]; taken && owner != invoice.ID {
		return domain.ErrDuplicate
	}
	if err := r.items.replace(invoice.ID, invoice); err != nil {
		return err
	}
	delete(r.byNumber, current.Number)
	r.byNumber[invoice.Number] = invoice.ID
	return nil
}

func (r *InvoiceRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current := r.items.get(id)
	if current == nil {
		return domain.ErrNotFound
	}
	if err := r.items.remove(id); err != nil {
		return err
	}
	delete(r.byNumber, current.Number)
	return nil
}

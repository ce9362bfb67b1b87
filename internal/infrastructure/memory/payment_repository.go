package memory

import (
	"github.com/Bilal2025D/Fatora/internal/domain/entity"
	"github.com/Bilal2025D/Fatora/internal/domain/repository"
)

var (
	_ repository.PaymentRepository       = (*PaymentRepo)(nil)
	_ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)
)

// PaymentRepo implementación en memoria de PaymentRepository.
type PaymentRepo struct {
	items *collection[entity.Payment]
}

func NewPaymentRepository() *PaymentRepo {
	return &PaymentRepo{items: newCollection(shallowClone[entity.Payment])}
}

func (r *PaymentRepo) Create(payment *entity.Payment) error {
	return r.items.insert(payment.ID, payment)
}

func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	return r.items.get(id), nil
}

func (r *PaymentRepo) List() ([]*entity.Payment, error) {
	return r.items.list(nil), nil
}

func (r *PaymentRepo) ListByInvoice(invoiceID string) ([]*entity.Payment, error) {
	return r.items.list(func(p *entity.Payment) bool { return p.InvoiceID == invoiceID }), nil
}

func (r *PaymentRepo) Delete(id string) error {
	return r.items.remove(id)
}

// PaymentMethodRepo catálogo en memoria de medios de pago.
type PaymentMethodRepo struct {
	items *collection[entity.PaymentMethod]
}

func NewPaymentMethodRepository() *PaymentMethodRepo {
	return &PaymentMethodRepo{items: newCollection(shallowClone[entity.PaymentMethod])}
}

func (r *PaymentMethodRepo) Create(method *entity.PaymentMethod) error {
	return r.items.insert(method.ID, method)
}

func (r *PaymentMethodRepo) List() ([]*entity.PaymentMethod, error) {
	return r.items.list(nil), nil
}

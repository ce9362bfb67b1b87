package repository

import "github.com/Bilal2025D/Fatora/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para pagos.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	List() ([]*entity.Payment, error)
	ListByInvoice(invoiceID string) ([]*entity.Payment, error)
	Delete(id string) error
}

// PaymentMethodRepository catálogo de medios de pago.
type PaymentMethodRepository interface {
	Create(method *entity.PaymentMethod) error
	List() ([]*entity.PaymentMethod, error)
}

package repository

import "github.com/Bilal2025D/Fatora/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice con sus líneas.
// El número de factura es único: Create/Update devuelven domain.ErrDuplicate si ya está en uso.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	GetByNumber(number string) (*entity.Invoice, error)
	// List devuelve las facturas en orden de creación.
	List() ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	Delete(id string) error
}

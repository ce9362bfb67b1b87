package dto

import "time"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"required,email_basic"`
	Phone   string `json:"phone" validate:"required,local_phone"`
	Address string `json:"address" validate:"max=500"`
	TaxID   string `json:"tax_id,omitempty" validate:"omitempty,max=30"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id (reemplaza todos los campos).
type UpdateCustomerRequest CreateCustomerRequest

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	TaxID     string    `json:"tax_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerListResponse listado filtrado de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Meta  ListMeta           `json:"meta"`
}

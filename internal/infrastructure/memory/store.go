package memory

// Store agrupa los repositorios de una sesión. Es el almacén explícito que
// poseen los casos de uso; el núcleo de cálculo nunca lo toca.
type Store struct {
	Customers      *CustomerRepo
	Products       *ProductRepo
	Invoices       *InvoiceRepo
	Payments       *PaymentRepo
	PaymentMethods *PaymentMethodRepo
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		Customers:      NewCustomerRepository(),
		Products:       NewProductRepository(),
		Invoices:       NewInvoiceRepository(),
		Payments:       NewPaymentRepository(),
		PaymentMethods: NewPaymentMethodRepository(),
	}
}

package search

import "github.com/Bilal2025D/Fatora/internal/domain/entity"

// Campos buscables por entidad.
var (
	CustomerFields = []Field[entity.Customer]{
		Text(func(c entity.Customer) string { return c.Name }),
		Text(func(c entity.Customer) string { return c.Email }),
		Text(func(c entity.Customer) string { return c.Phone }),
	}

	ProductFields = []Field[entity.Product]{
		Text(func(p entity.Product) string { return p.Name }),
		Text(func(p entity.Product) string { return p.Description }),
		Text(func(p entity.Product) string { return p.Category }),
	}

	InvoiceFields = []Field[entity.Invoice]{
		Text(func(i entity.Invoice) string { return i.Number }),
		Text(func(i entity.Invoice) string { return i.CustomerName }),
	}

	PaymentFields = []Field[entity.PaymentView]{
		Text(func(p entity.PaymentView) string { return p.InvoiceNumber }),
		Text(func(p entity.PaymentView) string { return p.CustomerName }),
		Text(func(p entity.PaymentView) string { return p.Reference }),
	}
)

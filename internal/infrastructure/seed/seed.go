// Package seed carga los datos de demostración embebidos en el almacén en memoria.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Bilal2025D/Fatora/internal/domain/billing"
	"github.com/Bilal2025D/Fatora/internal/domain/entity"
	"github.com/Bilal2025D/Fatora/internal/infrastructure/memory"
)

//go:embed seed.yaml
var demoYAML []byte

// Fixtures contenido decodificado de seed.yaml.
type Fixtures struct {
	Products       []entity.Product       `yaml:"products"`
	Customers      []entity.Customer      `yaml:"customers"`
	Invoices       []entity.Invoice       `yaml:"invoices"`
	Payments       []entity.Payment       `yaml:"payments"`
	PaymentMethods []entity.PaymentMethod `yaml:"payment_methods"`
}

// Parse decodifica fixtures YAML y recalcula los totales de cada factura.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decodificar seed: %w", err)
	}
	for i := range f.Invoices {
		if err := billing.ApplyTotals(&f.Invoices[i]); err != nil {
			return nil, fmt.Errorf("seed factura %s: %w", f.Invoices[i].Number, err)
		}
	}
	return &f, nil
}

// Demo devuelve los fixtures de demostración embebidos.
func Demo() (*Fixtures, error) {
	return Parse(demoYAML)
}

// Load inserta los fixtures en store. Falla si algún id o número ya existe.
func Load(store *memory.Store, f *Fixtures) error {
	for i := range f.Products {
		if err := store.Products.Create(&f.Products[i]); err != nil {
			return fmt.Errorf("seed producto %s: %w", f.Products[i].ID, err)
		}
	}
	for i := range f.Customers {
		if err := store.Customers.Create(&f.Customers[i]); err != nil {
			return fmt.Errorf("seed cliente %s: %w", f.Customers[i].ID, err)
		}
	}
	for i := range f.Invoices {
		if err := store.Invoices.Create(&f.Invoices[i]); err != nil {
			return fmt.Errorf("seed factura %s: %w", f.Invoices[i].Number, err)
		}
	}
	for i := range f.Payments {
		if err := store.Payments.Create(&f.Payments[i]); err != nil {
			return fmt.Errorf("seed pago %s: %w", f.Payments[i].ID, err)
		}
	}
	for i := range f.PaymentMethods {
		if err := store.PaymentMethods.Create(&f.PaymentMethods[i]); err != nil {
			return fmt.Errorf("seed medio de pago %s: %w", f.PaymentMethods[i].ID, err)
		}
	}
	return nil
}

// LoadDemo carga los datos de demostración en store.
func LoadDemo(store *memory.Store) error {
	f, err := Demo()
	if err != nil {
		return err
	}
	return Load(store, f)
}

package entity

import "time"

// Customer representa un cliente (facturación).
type Customer struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Email     string    `yaml:"email"`
	Phone     string    `yaml:"phone"` // móvil local de 10 dígitos
	Address   string    `yaml:"address"`
	TaxID     string    `yaml:"tax_id"` // opcional
	CreatedAt time.Time `yaml:"created_at"`
}

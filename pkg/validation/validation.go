// Package validation contiene los predicados usados en los límites de los formularios
// (cliente, factura). Son puros y totales: nunca devuelven error, solo true/false.
package validation

import "regexp"

var (
	// Sin espacios de ningún tipo: ASCII, \v, separadores Unicode (NBSP, U+2028...) y BOM.
	emailRe = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
	// Móvil local: 0 + operador (5, 6 o 7) + 8 dígitos = 10 dígitos.
	localPhoneRe = regexp.MustCompile(`^0[567][0-9]{8}$`)
	// PREFIJO-AAAA-NNN o PREFIJO-AAAAMM-NNN (ej. INV-2025-001, INV-202504-017).
	invoiceNumberRe = regexp.MustCompile(`^[A-Z][A-Z0-9]*-[0-9]{4}([0-9]{2})?-[0-9]{3,}$`)
	invoicePrefixRe = regexp.MustCompile(`^[A-Z][A-Z0-9]*$`)
)

// IsValidEmail indica si s tiene la forma local@dominio.tld.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidLocalPhone indica si s es un número móvil local de 10 dígitos.
func IsValidLocalPhone(s string) bool {
	return localPhoneRe.MatchString(s)
}

// IsValidInvoiceNumber indica si s respeta alguno de los dos formatos de numeración.
func IsValidInvoiceNumber(s string) bool {
	return invoiceNumberRe.MatchString(s)
}

// IsValidInvoicePrefix indica si s sirve como PREFIJO de los números generados.
func IsValidInvoicePrefix(s string) bool {
	return invoicePrefixRe.MatchString(s)
}

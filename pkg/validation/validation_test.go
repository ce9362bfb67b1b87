package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bilal2025D/Fatora/pkg/validation"
)

func TestIsValidEmail(t *testing.T) {
	cases := map[string]bool{
		"ahmed.benhadi@example.com": true,
		"a@b.co":                    true,
		"not-an-email":              false,
		"":                          false,
		"sin@dominio":               false,
		"con espacio@example.com":   false,
		"doble@@example.com":        false,
		"@example.com":              false,
		"tab\tdentro@example.com":   false,
	}
	for in, want := range cases {
		assert.Equal(t, want, validation.IsValidEmail(in), "email %q", in)
	}
}

func TestIsValidLocalPhone(t *testing.T) {
	cases := map[string]bool{
		"0555123456":    true,
		"0666789012":    true,
		"0777345678":    true,
		"12345":         false,
		"":              false,
		"0455123456":    false, // segundo dígito fuera de 5/6/7
		"055512345":     false, // 9 dígitos
		"05551234567":   false, // 11 dígitos
		"0555 123456":   false,
		"+213555123456": false,
	}
	for in, want := range cases {
		assert.Equal(t, want, validation.IsValidLocalPhone(in), "teléfono %q", in)
	}
}

func TestIsValidInvoiceNumber(t *testing.T) {
	assert.True(t, validation.IsValidInvoiceNumber("INV-2025-001"))
	assert.True(t, validation.IsValidInvoiceNumber("INV-202504-017"))
	assert.True(t, validation.IsValidInvoiceNumber("FAC-2025-1024"))
	assert.False(t, validation.IsValidInvoiceNumber("INV-25-001"))
	assert.False(t, validation.IsValidInvoiceNumber("inv-2025-001"))
	assert.False(t, validation.IsValidInvoiceNumber(""))
}

func TestIsValidEmail_EspaciosNoASCII(t *testing.T) {
	for _, in := range []string{
		"a\vb@c.de",
		"a\u00a0b@c.de",
		"ab@c\u2028.de",
		"ab@c.d\u3000e",
		"\ufeffab@c.de",
	} {
		assert.False(t, validation.IsValidEmail(in), "email %q", in)
	}
	assert.True(t, validation.IsValidEmail("mohamed.ali@exemple.dz"))
}

func TestIsValidInvoicePrefix(t *testing.T) {
	assert.True(t, validation.IsValidInvoicePrefix("INV"))
	assert.True(t, validation.IsValidInvoicePrefix("FAC2"))
	assert.False(t, validation.IsValidInvoicePrefix("Fac"))
	assert.False(t, validation.IsValidInvoicePrefix("FAC-DZ"))
	assert.False(t, validation.IsValidInvoicePrefix("2FAC"))
	assert.False(t, validation.IsValidInvoicePrefix(""))
}

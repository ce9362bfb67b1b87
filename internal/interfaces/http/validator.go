package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Bilal2025D/Fatora/internal/domain"
	"github.com/Bilal2025D/Fatora/pkg/validation"
)

// NewValidator devuelve un validador con las reglas propias de los formularios:
// email_basic, local_phone e invoice_number.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	rules := map[string]func(string) bool{
		"email_basic":    validation.IsValidEmail,
		"local_phone":    validation.IsValidLocalPhone,
		"invoice_number": validation.IsValidInvoiceNumber,
	}
	for tag, fn := range rules {
		fn := fn
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		}); err != nil {
			panic(fmt.Sprintf("registrar regla %s: %v", tag, err))
		}
	}
	return v
}

var (
	errInvalidBody   = errors.New("cuerpo inválido")
	errInvalidParams = errors.New("parámetros de consulta inválidos")
)

// bindJSON parsea el cuerpo en out y lo valida. Devuelve un error envuelto en
// domain.ErrValidation con el primer campo inválido, o errInvalidBody si el JSON no parsea.
func bindJSON(c *fiber.Ctx, v *validator.Validate, out any) error {
	if err := c.BodyParser(out); err != nil {
		return errInvalidBody
	}
	return validateStruct(v, out)
}

func validateStruct(v *validator.Validate, in any) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s", domain.ErrValidation, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " es obligatorio"
	case "email_basic":
		return field + ": correo electrónico inválido"
	case "local_phone":
		return field + ": el teléfono debe tener 10 dígitos y empezar por 05, 06 o 07"
	case "invoice_number":
		return field + ": número de factura inválido (ej. INV-2025-001)"
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s: mínimo %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s: máximo %s", field, fe.Param())
	}
	return field + " inválido"
}

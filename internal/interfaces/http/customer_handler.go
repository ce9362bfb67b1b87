package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Bilal2025D/Fatora/internal/application/billing"
	"github.com/Bilal2025D/Fatora/internal/application/dto"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc   *billing.CustomerUseCase
	docs *billing.DocumentUseCase
	v    *validator.Validate
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *billing.CustomerUseCase, docs *billing.DocumentUseCase, v *validator.Validate) *CustomerHandler {
	return &CustomerHandler{uc: uc, docs: docs, v: v}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCustomerRequest  true  "Cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := bindJSON(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	customer, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customer)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := bindJSON(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	customer, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customer)
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List GET /api/customers?q=texto
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Export GET /api/customers/export?format=xlsx|csv
func (h *CustomerHandler) Export(c *fiber.Ctx) error {
	format, err := billing.ParseExportFormat(c.Query("format", string(billing.ExportXLSX)))
	if err != nil {
		return writeError(c, err)
	}
	data, filename, err := h.docs.ExportCustomers(format)
	if err != nil {
		return writeError(c, err)
	}
	return sendDocument(c, data, filename, format.ContentType())
}

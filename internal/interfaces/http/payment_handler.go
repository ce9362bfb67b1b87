package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Bilal2025D/Fatora/internal/application/billing"
	"github.com/Bilal2025D/Fatora/internal/application/dto"
)

// PaymentHandler maneja las peticiones HTTP de pagos.
type PaymentHandler struct {
	uc   *billing.PaymentUseCase
	docs *billing.DocumentUseCase
	v    *validator.Validate
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *billing.PaymentUseCase, docs *billing.DocumentUseCase, v *validator.Validate) *PaymentHandler {
	return &PaymentHandler{uc: uc, docs: docs, v: v}
}

// Record godoc
// @Summary      Registrar pago
// @Description  Se permiten pagos parciales; no cambia el estado de la factura.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RecordPaymentRequest  true  "Pago"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if err := bindJSON(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	payment, err := h.uc.Record(in)
	if err != nil {
		return writeError(c, err)
	}
	requestLogger(c).Info().
		Str("payment", payment.ID).
		Str("invoice", payment.InvoiceNumber).
		Str("method", payment.Method).
		Msg("pago registrado")
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// GetByID GET /api/payments/:id
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	payment, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(payment)
}

// Delete DELETE /api/payments/:id
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List GET /api/payments?q=texto&method=ccp
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return writeError(c, errInvalidParams)
	}
	list, err := h.uc.List(q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Receipt GET /api/payments/:id/receipt
func (h *PaymentHandler) Receipt(c *fiber.Ctx) error {
	data, filename, err := h.docs.ReceiptPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendDocument(c, data, filename, mimePDF)
}

// Export GET /api/payments/export?format=xlsx|csv&q=...&method=...
func (h *PaymentHandler) Export(c *fiber.Ctx) error {
	format, err := billing.ParseExportFormat(c.Query("format", string(billing.ExportXLSX)))
	if err != nil {
		return writeError(c, err)
	}
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return writeError(c, errInvalidParams)
	}
	data, filename, err := h.docs.ExportPayments(format, q)
	if err != nil {
		return writeError(c, err)
	}
	return sendDocument(c, data, filename, format.ContentType())
}

// Methods GET /api/payment-methods
func (h *PaymentHandler) Methods(c *fiber.Ctx) error {
	list, err := h.uc.ListMethods()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

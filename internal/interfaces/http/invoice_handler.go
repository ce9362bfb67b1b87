package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Bilal2025D/Fatora/internal/application/billing"
	"github.com/Bilal2025D/Fatora/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturas y sus documentos.
type InvoiceHandler struct {
	uc       *billing.InvoiceUseCase
	payments *billing.PaymentUseCase
	docs     *billing.DocumentUseCase
	v        *validator.Validate
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(
	uc *billing.InvoiceUseCase,
	payments *billing.PaymentUseCase,
	docs *billing.DocumentUseCase,
	v *validator.Validate,
) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, payments: payments, docs: docs, v: v}
}

// Create godoc
// @Summary      Crear factura
// @Description  Los totales se calculan en el servidor a partir de las líneas.
// @Description  Sin número se asigna el siguiente PREFIJO-AAAA-NNN.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateInvoiceRequest  true  "Factura"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := bindJSON(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	invoice, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	requestLogger(c).Info().Str("invoice", invoice.Number).Str("total", invoice.Total.String()).Msg("factura creada")
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(invoice)
}

// Update PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := bindJSON(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	invoice, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(invoice)
}

// SetStatus PATCH /api/invoices/:id/status
func (h *InvoiceHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceStatusRequest
	if err := bindJSON(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	invoice, err := h.uc.SetStatus(c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(invoice)
}

// Delete DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar facturas
// @Tags         invoices
// @Produce      json
// @Param        q       query     string  false  "Texto a buscar en número o cliente"
// @Param        status  query     string  false  "draft, sent, paid, overdue, cancelled o all"
// @Success      200     {object}  dto.InvoiceListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
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

// NextNumber GET /api/invoices/next-number
func (h *InvoiceHandler) NextNumber(c *fiber.Ctx) error {
	number, err := h.uc.NextNumber()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NextNumberResponse{Number: number})
}

// PreviewTotals POST /api/invoices/totals
// Calcula los totales del formulario sin guardar nada.
func (h *InvoiceHandler) PreviewTotals(c *fiber.Ctx) error {
	var in dto.TotalsPreviewRequest
	if err := bindJSON(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	totals, err := h.uc.PreviewTotals(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(totals)
}

// Payments GET /api/invoices/:id/payments
func (h *InvoiceHandler) Payments(c *fiber.Ctx) error {
	list, err := h.payments.ListByInvoice(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// PDF GET /api/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.docs.InvoicePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendDocument(c, data, filename, mimePDF)
}

// Export GET /api/invoices/export?format=xlsx|csv
func (h *InvoiceHandler) Export(c *fiber.Ctx) error {
	format, err := billing.ParseExportFormat(c.Query("format", string(billing.ExportXLSX)))
	if err != nil {
		return writeError(c, err)
	}
	data, filename, err := h.docs.ExportInvoices(format)
	if err != nil {
		return writeError(c, err)
	}
	return sendDocument(c, data, filename, format.ContentType())
}

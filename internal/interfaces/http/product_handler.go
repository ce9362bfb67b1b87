package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Bilal2025D/Fatora/internal/application/dto"
	"github.com/Bilal2025D/Fatora/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP del catálogo.
type ProductHandler struct {
	uc *usecase.ProductUseCase
	v  *validator.Validate
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, v *validator.Validate) *ProductHandler {
	return &ProductHandler{uc: uc, v: v}
}

// Create POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := bindJSON(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	product, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// GetByID GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

// Update PUT /api/products/:id (solo precio y existencias)
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := bindJSON(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	product, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

// Delete DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List GET /api/products?q=texto
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

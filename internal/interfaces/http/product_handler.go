package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// ProductService operaciones de productos que usa el handler.
type ProductService interface {
	Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error)
	List(ctx context.Context, in dto.ProductListFilter) ([]*dto.ProductResponse, error)
	Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id int64) error
}

// ProductHandler CRUD de /api/products.
type ProductHandler struct {
	uc  ProductService
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc ProductService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

const productNotFound = "producto no encontrado"

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, productNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err, productNotFound)
	}
	return c.JSON(out)
}

// List GET /api/products?search=&category_id=&is_active=&limit=&offset=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), dto.ProductListFilter{
		PageRequest: pageFromQuery(c),
		Search:      c.Query("search"),
		CategoryID:  int64(c.QueryInt("category_id", 0)),
		IsActive:    queryBool(c, "is_active"),
	})
	if err != nil {
		return writeError(c, h.log, err, productNotFound)
	}
	return c.JSON(out)
}

// Update PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, h.log, err, productNotFound)
	}
	return c.JSON(out)
}

// Delete DELETE /api/products/:id. 409 PROTECTED si aparece en alguna compra.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, h.log, err, productNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

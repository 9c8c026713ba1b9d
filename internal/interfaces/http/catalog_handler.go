package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// DocumentTypeService operaciones de tipos de documento que usa el handler.
type DocumentTypeService interface {
	Create(ctx context.Context, in dto.DocumentTypeRequest) (*dto.DocumentTypeResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.DocumentTypeResponse, error)
	List(ctx context.Context, page dto.PageRequest) ([]*dto.DocumentTypeResponse, error)
	Update(ctx context.Context, id int64, in dto.DocumentTypeRequest) (*dto.DocumentTypeResponse, error)
	Delete(ctx context.Context, id int64) error
}

// DocumentTypeHandler CRUD de /api/document-types.
type DocumentTypeHandler struct {
	uc  DocumentTypeService
	log *logger.Logger
}

// NewDocumentTypeHandler construye el handler.
func NewDocumentTypeHandler(uc DocumentTypeService, log *logger.Logger) *DocumentTypeHandler {
	return &DocumentTypeHandler{uc: uc, log: log}
}

const documentTypeNotFound = "tipo de documento no encontrado"

// Create godoc
// @Summary      Crear tipo de documento
// @Tags         document-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DocumentTypeRequest  true  "Tipo de documento"
// @Success      201   {object}  dto.DocumentTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/document-types [post]
func (h *DocumentTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.DocumentTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, documentTypeNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/document-types/:id
func (h *DocumentTypeHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err, documentTypeNotFound)
	}
	return c.JSON(out)
}

// List GET /api/document-types?limit=20&offset=0
func (h *DocumentTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update PUT /api/document-types/:id
func (h *DocumentTypeHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.DocumentTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, h.log, err, documentTypeNotFound)
	}
	return c.JSON(out)
}

// Delete DELETE /api/document-types/:id. 409 PROTECTED si hay clientes con ese tipo.
func (h *DocumentTypeHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, h.log, err, documentTypeNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ProductCategoryService operaciones de categorías que usa el handler.
type ProductCategoryService interface {
	Create(ctx context.Context, in dto.ProductCategoryRequest) (*dto.ProductCategoryResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProductCategoryResponse, error)
	List(ctx context.Context, page dto.PageRequest) ([]*dto.ProductCategoryResponse, error)
	Update(ctx context.Context, id int64, in dto.ProductCategoryRequest) (*dto.ProductCategoryResponse, error)
	Delete(ctx context.Context, id int64) error
}

// ProductCategoryHandler CRUD de /api/product-categories.
type ProductCategoryHandler struct {
	uc  ProductCategoryService
	log *logger.Logger
}

// NewProductCategoryHandler construye el handler.
func NewProductCategoryHandler(uc ProductCategoryService, log *logger.Logger) *ProductCategoryHandler {
	return &ProductCategoryHandler{uc: uc, log: log}
}

const categoryNotFound = "categoría no encontrada"

// Create POST /api/product-categories
func (h *ProductCategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, categoryNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/product-categories/:id
func (h *ProductCategoryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err, categoryNotFound)
	}
	return c.JSON(out)
}

// List GET /api/product-categories
func (h *ProductCategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update PUT /api/product-categories/:id
func (h *ProductCategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.ProductCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, h.log, err, categoryNotFound)
	}
	return c.JSON(out)
}

// Delete DELETE /api/product-categories/:id
func (h *ProductCategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, h.log, err, categoryNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

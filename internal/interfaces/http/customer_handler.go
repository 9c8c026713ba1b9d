package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// CustomerService operaciones de clientes que usa el handler.
type CustomerService interface {
	Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error)
	List(ctx context.Context, in dto.CustomerListFilter) ([]*dto.CustomerResponse, error)
	Update(ctx context.Context, id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id int64) error
}

// CustomerHandler CRUD de /api/customers.
type CustomerHandler struct {
	uc  CustomerService
	log *logger.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc CustomerService, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

const customerNotFound = "cliente no encontrado"

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, customerNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err, customerNotFound)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        search            query  string  false  "Documento, nombre, apellido o email"
// @Param        document_type_id  query  int     false  "Tipo de documento"
// @Param        is_active         query  bool    false  "Activo"
// @Param        limit             query  int     false  "Límite"  default(20)
// @Param        offset            query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.CustomerResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), customerFilterFromQuery(c))
	if err != nil {
		return writeError(c, h.log, err, customerNotFound)
	}
	return c.JSON(out)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, h.log, err, customerNotFound)
	}
	return c.JSON(out)
}

// Delete DELETE /api/customers/:id. 409 PROTECTED si el cliente tiene compras.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, h.log, err, customerNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func customerFilterFromQuery(c *fiber.Ctx) dto.CustomerListFilter {
	return dto.CustomerListFilter{
		PageRequest:    pageFromQuery(c),
		Search:         c.Query("search"),
		DocumentTypeID: int64(c.QueryInt("document_type_id", 0)),
		IsActive:       queryBool(c, "is_active"),
	}
}

package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// PurchaseService operaciones de compras que usa el handler.
type PurchaseService interface {
	Create(ctx context.Context, in dto.PurchaseRequest) (*dto.PurchaseResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.PurchaseResponse, error)
	List(ctx context.Context, in dto.PurchaseListFilter) ([]*dto.PurchaseResponse, error)
	Update(ctx context.Context, id int64, in dto.PurchaseRequest) (*dto.PurchaseResponse, error)
	Delete(ctx context.Context, id int64) error
}

// PurchaseHandler CRUD de /api/purchases (cabecera y líneas en el mismo cuerpo).
type PurchaseHandler struct {
	uc  PurchaseService
	log *logger.Logger
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc PurchaseService, log *logger.Logger) *PurchaseHandler {
	return &PurchaseHandler{uc: uc, log: log}
}

const purchaseNotFound = "compra no encontrada"

// Create godoc
// @Summary      Registrar compra
// @Description  Subtotales y total se calculan en el servidor; unit_price vacío toma el precio vigente del producto.
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PurchaseRequest  true  "Compra con sus líneas"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.PurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, purchaseNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/purchases/:id
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err, purchaseNotFound)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar compras
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        search       query  string  false  "Documento o nombre del cliente"
// @Param        customer_id  query  int     false  "Cliente"
// @Param        from         query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to           query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Success      200  {array}  dto.PurchaseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), dto.PurchaseListFilter{
		PageRequest: pageFromQuery(c),
		Search:      c.Query("search"),
		CustomerID:  int64(c.QueryInt("customer_id", 0)),
		From:        c.Query("from"),
		To:          c.Query("to"),
	})
	if err != nil {
		return writeError(c, h.log, err, purchaseNotFound)
	}
	return c.JSON(out)
}

// Update PUT /api/purchases/:id. Reemplaza todas las líneas.
func (h *PurchaseHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.PurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, h.log, err, purchaseNotFound)
	}
	return c.JSON(out)
}

// Delete DELETE /api/purchases/:id. 409 PROTECTED mientras tenga líneas.
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, h.log, err, purchaseNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

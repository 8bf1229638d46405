package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-bom/internal/application/dto"
	"github.com/jhoicas/inventario-bom/internal/application/inventory"
	"github.com/jhoicas/inventario-bom/internal/domain/validation"
	"github.com/jhoicas/inventario-bom/internal/infrastructure/csvimport"
	"github.com/jhoicas/inventario-bom/pkg/logger"
)

// TransactionHandler movimientos de entrada/salida (protegido).
type TransactionHandler struct {
	uc  *inventory.TransactionUseCase
	log *logger.Logger
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *inventory.TransactionUseCase, log *logger.Logger) *TransactionHandler {
	return &TransactionHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Registrar movimiento
// @Description  Aplica el movimiento al stock y lo agrega al historial. Una salida sin stock suficiente no modifica nada.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterTransactionRequest  true  "inbound|outbound, ítem, cantidad"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterTransactionRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historial de movimientos
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        type     query  string  false  "inbound | outbound"
// @Param        item_id  query  int     false  "ID del ítem"
// @Param        from     query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to       query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        limit    query  int     false  "Límite"  default(100)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.TransactionListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var f dto.TransactionFilter
	if err := c.QueryParser(&f); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros de consulta inválidos")
	}
	if err := validation.Struct(f); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar movimiento
// @Description  Revierte el efecto en el stock. Si la reversión dejaría stock negativo se rechaza y el registro se conserva.
// @Tags         transactions
// @Security     Bearer
// @Param        id   path  int  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un entero positivo")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Carga masiva de movimientos (CSV)
// @Tags         transactions
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        file  formData  file  true  "CSV con cabecera (거래유형/transaction_type, 물품명/item_name, 수량/quantity, ...)"
// @Success      200   {object}  dto.ImportReport
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions/import [post]
func (h *TransactionHandler) Import(c *fiber.Ctx) error {
	data, ok := csvPayload(c)
	if !ok {
		return badRequest(c, "MISSING_FILE", "archivo CSV requerido")
	}
	rows, err := csvimport.TransactionRows(data)
	if err != nil {
		return writeError(c, h.log, err)
	}
	report, err := h.uc.Import(c.Context(), rows)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(report)
}

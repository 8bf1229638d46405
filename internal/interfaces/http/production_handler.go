package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-bom/internal/application/dto"
	"github.com/jhoicas/inventario-bom/internal/application/production"
	"github.com/jhoicas/inventario-bom/internal/domain"
	"github.com/jhoicas/inventario-bom/internal/domain/entity"
	"github.com/jhoicas/inventario-bom/pkg/logger"
)

// ProductionHandler plan y ejecución de producción.
type ProductionHandler struct {
	planner      *production.Planner
	orchestrator *production.Orchestrator
	pdf          production.PlanPDFGenerator
	log          *logger.Logger
}

// NewProductionHandler construye el handler. pdf puede ser nil (el endpoint PDF responde 501).
func NewProductionHandler(planner *production.Planner, orchestrator *production.Orchestrator, pdf production.PlanPDFGenerator, log *logger.Logger) *ProductionHandler {
	return &ProductionHandler{planner: planner, orchestrator: orchestrator, pdf: pdf, log: log}
}

// Plan godoc
// @Summary      Calcular plan de producción
// @Description  Requerimiento por material = cantidad por unidad x cantidad objetivo, contra el stock actual. No modifica nada.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlanRequest  true  "Producto y cantidad objetivo"
// @Success      200   {object}  inventory.ProductionPlan
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production/plan [post]
func (h *ProductionHandler) Plan(c *fiber.Ctx) error {
	var in dto.PlanRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	plan, err := h.planner.Plan(c.Context(), in.ProductID, in.Quantity)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(plan)
}

// PlanPDF godoc
// @Summary      Hoja de producción en PDF
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.PlanRequest  true  "Producto y cantidad objetivo"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production/plan.pdf [post]
func (h *ProductionHandler) PlanPDF(c *fiber.Ctx) error {
	if h.pdf == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_IMPLEMENTED", Message: "generador PDF no configurado"})
	}
	var in dto.PlanRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	plan, err := h.planner.Plan(c.Context(), in.ProductID, in.Quantity)
	if err != nil {
		return writeError(c, h.log, err)
	}
	doc, err := h.pdf.GeneratePlanPDF(c.Context(), plan)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="plan-%d-%d.pdf"`, plan.ProductID, plan.Quantity))
	return c.Send(doc)
}

// Execute godoc
// @Summary      Ejecutar producción
// @Description  Recalcula el plan y, si todos los materiales alcanzan, descuenta materiales y acredita el producto.
// @Description  Una falla a mitad de camino responde 409 con el resultado parcial (lo aplicado no se revierte).
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExecuteRequest  true  "Producto, cantidad, fecha (YYYY-MM-DD) y nota"
// @Success      200   {object}  production.ExecutionResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  production.ExecutionResult
// @Router       /api/production/execute [post]
func (h *ProductionHandler) Execute(c *fiber.Ctx) error {
	var in dto.ExecuteRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	var date entity.Date
	if in.ProductionDate != "" {
		d, err := entity.ParseDate(in.ProductionDate)
		if err != nil {
			return badRequest(c, "VALIDATION", "production_date debe tener formato YYYY-MM-DD")
		}
		date = d
	}
	plan, err := h.planner.Plan(c.Context(), in.ProductID, in.Quantity)
	if err != nil {
		return writeError(c, h.log, err)
	}
	result, err := h.orchestrator.Execute(c.Context(), production.ExecuteInput{
		ProductID:      plan.ProductID,
		TargetQuantity: plan.Quantity,
		Materials:      plan.Materials,
		ProductionDate: date,
		Note:           in.Note,
	})
	var pe *domain.ProductionError
	if errors.As(err, &pe) && result != nil {
		return c.Status(fiber.StatusConflict).JSON(result)
	}
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(result)
}

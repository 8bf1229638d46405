package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-bom/internal/application/dto"
	"github.com/jhoicas/inventario-bom/internal/application/production"
	"github.com/jhoicas/inventario-bom/internal/application/usecase"
	"github.com/jhoicas/inventario-bom/pkg/logger"
)

// BOMHandler maneja el BOM de un nivel por producto.
type BOMHandler struct {
	uc      *usecase.BOMUseCase
	planner *production.Planner
	log     *logger.Logger
}

// NewBOMHandler construye el handler.
func NewBOMHandler(uc *usecase.BOMUseCase, planner *production.Planner, log *logger.Logger) *BOMHandler {
	return &BOMHandler{uc: uc, planner: planner, log: log}
}

// ListProducts godoc
// @Summary      Productos con BOM definido
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductBOMSummary
// @Router       /api/bom [get]
func (h *BOMHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.planner.ProductsWithBOM(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      BOM de un producto
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Param        productId  path  int  true  "ID del producto"
// @Success      200  {object}  dto.BOMResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bom/{productId} [get]
func (h *BOMHandler) Get(c *fiber.Ctx) error {
	productID, ok := paramID(c, "productId")
	if !ok {
		return badRequest(c, "INVALID_ID", "productId debe ser un entero positivo")
	}
	out, err := h.uc.Get(c.Context(), productID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// AvailableMaterials godoc
// @Summary      Materiales que pueden agregarse al BOM
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Param        productId  path  int  true  "ID del producto"
// @Success      200  {array}  dto.MaterialOption
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bom/{productId}/available-materials [get]
func (h *BOMHandler) AvailableMaterials(c *fiber.Ctx) error {
	productID, ok := paramID(c, "productId")
	if !ok {
		return badRequest(c, "INVALID_ID", "productId debe ser un entero positivo")
	}
	out, err := h.uc.AvailableMaterials(c.Context(), productID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// AddMaterial godoc
// @Summary      Agregar material al BOM
// @Tags         bom
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  int  true  "ID del producto"
// @Param        body  body  dto.AddMaterialRequest  true  "Material y cantidad por unidad"
// @Success      201  {object}  dto.BOMResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/bom/{productId}/materials [post]
func (h *BOMHandler) AddMaterial(c *fiber.Ctx) error {
	productID, ok := paramID(c, "productId")
	if !ok {
		return badRequest(c, "INVALID_ID", "productId debe ser un entero positivo")
	}
	var in dto.AddMaterialRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.AddMaterial(c.Context(), productID, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateMaterial godoc
// @Summary      Modificar cantidad/nota de un material
// @Tags         bom
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId   path  int  true  "ID del producto"
// @Param        materialId  path  int  true  "ID del material"
// @Param        body  body  dto.UpdateMaterialRequest  true  "Nueva cantidad y nota"
// @Success      200  {object}  dto.BOMResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bom/{productId}/materials/{materialId} [put]
func (h *BOMHandler) UpdateMaterial(c *fiber.Ctx) error {
	productID, ok := paramID(c, "productId")
	if !ok {
		return badRequest(c, "INVALID_ID", "productId debe ser un entero positivo")
	}
	materialID, ok := paramID(c, "materialId")
	if !ok {
		return badRequest(c, "INVALID_ID", "materialId debe ser un entero positivo")
	}
	var in dto.UpdateMaterialRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.UpdateMaterial(c.Context(), productID, materialID, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// RemoveMaterial godoc
// @Summary      Quitar material del BOM
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Param        productId   path  int  true  "ID del producto"
// @Param        materialId  path  int  true  "ID del material"
// @Success      200  {object}  dto.BOMResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bom/{productId}/materials/{materialId} [delete]
func (h *BOMHandler) RemoveMaterial(c *fiber.Ctx) error {
	productID, ok := paramID(c, "productId")
	if !ok {
		return badRequest(c, "INVALID_ID", "productId debe ser un entero positivo")
	}
	materialID, ok := paramID(c, "materialId")
	if !ok {
		return badRequest(c, "INVALID_ID", "materialId debe ser un entero positivo")
	}
	out, err := h.uc.RemoveMaterial(c.Context(), productID, materialID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Copy godoc
// @Summary      Copiar BOM desde otro producto
// @Tags         bom
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  int  true  "ID del producto destino"
// @Param        body  body  dto.CopyBOMRequest  true  "Origen y modo (overwrite|append)"
// @Success      200  {object}  dto.BOMResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bom/{productId}/copy [post]
func (h *BOMHandler) Copy(c *fiber.Ctx) error {
	productID, ok := paramID(c, "productId")
	if !ok {
		return badRequest(c, "INVALID_ID", "productId debe ser un entero positivo")
	}
	var in dto.CopyBOMRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.Copy(c.Context(), productID, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

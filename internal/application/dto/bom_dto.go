package dto

import "github.com/shopspring/decimal"

// Modos de copia de BOM.
const (
	CopyModeOverwrite = "overwrite"
	CopyModeAppend    = "append"
)

// AddMaterialRequest body para POST /api/bom/:productId/materials.
type AddMaterialRequest struct {
	MaterialID int             `json:"material_id" validate:"required,gt=0"`
	Quantity   decimal.Decimal `json:"quantity"`
	Note       string          `json:"note"`
}

// UpdateMaterialRequest body para PUT /api/bom/:productId/materials/:materialId.
type UpdateMaterialRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Note     string          `json:"note"`
}

// CopyBOMRequest copia el BOM de SourceProductID sobre el producto de la ruta.
// overwrite reemplaza la lista; append agrega los materiales que aún no están.
type CopyBOMRequest struct {
	SourceProductID int    `json:"source_product_id" validate:"required,gt=0"`
	Mode            string `json:"mode" validate:"required,oneof=overwrite append"`
}

// BOMLineResponse componente del BOM con datos del material resueltos.
type BOMLineResponse struct {
	MaterialID   int             `json:"material_id"`
	MaterialName string          `json:"material_name"`
	ItemCode     string          `json:"item_code"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	Note         string          `json:"note"`
}

// BOMResponse BOM completo de un producto.
type BOMResponse struct {
	ProductID   int               `json:"product_id"`
	ProductName string            `json:"product_name"`
	Unit        string            `json:"unit"`
	Materials   []BOMLineResponse `json:"materials"`
}

// ProductBOMSummary producto con BOM definido (listado).
type ProductBOMSummary struct {
	ProductID     int    `json:"product_id"`
	ProductName   string `json:"product_name"`
	ItemCode      string `json:"item_code"`
	Unit          string `json:"unit"`
	MaterialCount int    `json:"material_count"`
}

// MaterialOption ítem que puede agregarse al BOM de un producto.
type MaterialOption struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	ItemCode string          `json:"item_code"`
	Unit     string          `json:"unit"`
	Stock    decimal.Decimal `json:"stock"`
}

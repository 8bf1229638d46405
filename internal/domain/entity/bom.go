package entity

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// BOMComponent una línea del BOM: cantidad de material por una unidad de producto.
type BOMComponent struct {
	MaterialID int             `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Note       string          `json:"note"`
}

// BOMTable BOM de un solo nivel: ID de producto (en texto) -> componentes en orden de inserción.
type BOMTable map[string][]BOMComponent

// BOMKey convierte el ID de producto a la clave usada en el documento.
func BOMKey(productID int) string {
	return strconv.Itoa(productID)
}

// Components devuelve los componentes del producto y si existe entrada.
func (b BOMTable) Components(productID int) ([]BOMComponent, bool) {
	c, ok := b[BOMKey(productID)]
	return c, ok
}

// Set reemplaza los componentes del producto. Una lista vacía elimina la entrada.
func (b BOMTable) Set(productID int, components []BOMComponent) {
	if len(components) == 0 {
		delete(b, BOMKey(productID))
		return
	}
	b[BOMKey(productID)] = components
}

// ProductIDs devuelve los IDs de producto con BOM (claves no numéricas se ignoran).
func (b BOMTable) ProductIDs() []int {
	ids := make([]int, 0, len(b))
	for k := range b {
		id, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// HasMaterial indica si materialID ya figura en el BOM del producto.
func (b BOMTable) HasMaterial(productID, materialID int) bool {
	components, _ := b.Components(productID)
	for _, c := range components {
		if c.MaterialID == materialID {
			return true
		}
	}
	return false
}

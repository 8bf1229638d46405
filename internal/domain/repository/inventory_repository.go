package repository

import (
	"context"

	"github.com/jhoicas/inventario-bom/internal/domain/entity"
)

// Cada repositorio persiste un documento completo por tipo de entidad.
// Load devuelve colección vacía si el documento no existe; Save sobrescribe el documento entero.

// SupplierRepository define el puerto de persistencia para proveedores (DIP).
type SupplierRepository interface {
	Load(ctx context.Context) ([]entity.Supplier, error)
	Save(ctx context.Context, suppliers []entity.Supplier) error
}

// ItemRepository define el puerto de persistencia para ítems.
type ItemRepository interface {
	Load(ctx context.Context) ([]entity.Item, error)
	Save(ctx context.Context, items []entity.Item) error
}

// BOMRepository define el puerto de persistencia para la tabla BOM.
type BOMRepository interface {
	Load(ctx context.Context) (entity.BOMTable, error)
	Save(ctx context.Context, bom entity.BOMTable) error
}

// TransactionRepository define el puerto de persistencia para el log de movimientos.
type TransactionRepository interface {
	Load(ctx context.Context) ([]entity.Transaction, error)
	Save(ctx context.Context, transactions []entity.Transaction) error
}

// Repositories agrupa los repositorios atados a una misma unidad de trabajo.
type Repositories struct {
	Suppliers    SupplierRepository
	Items        ItemRepository
	BOM          BOMRepository
	Transactions TransactionRepository
}

// Nombres lógicos de los documentos (archivo <nombre>.json o fila en inventory_documents).
const (
	DocSuppliers    = "suppliers"
	DocItems        = "items"
	DocBOM          = "bom"
	DocTransactions = "inventory_transactions"
)

package jsonstore

import (
	"context"

	"github.com/jhoicas/inventario-bom/internal/domain/entity"
	"github.com/jhoicas/inventario-bom/internal/domain/repository"
)

var (
	_ repository.SupplierRepository    = (*SupplierRepo)(nil)
	_ repository.ItemRepository        = (*ItemRepo)(nil)
	_ repository.BOMRepository         = (*BOMRepo)(nil)
	_ repository.TransactionRepository = (*TransactionRepo)(nil)
)

// SupplierRepo suppliers.json.
type SupplierRepo struct{ store *Store }

// NewSupplierRepository construye el adaptador de proveedores.
func NewSupplierRepository(s *Store) *SupplierRepo { return &SupplierRepo{store: s} }

func (r *SupplierRepo) Load(ctx context.Context) ([]entity.Supplier, error) {
	return loadList[entity.Supplier](ctx, r.store, repository.DocSuppliers)
}

func (r *SupplierRepo) Save(ctx context.Context, suppliers []entity.Supplier) error {
	return saveList(ctx, r.store, repository.DocSuppliers, suppliers)
}

// ItemRepo items.json.
type ItemRepo struct{ store *Store }

// NewItemRepository construye el adaptador de ítems.
func NewItemRepository(s *Store) *ItemRepo { return &ItemRepo{store: s} }

func (r *ItemRepo) Load(ctx context.Context) ([]entity.Item, error) {
	return loadList[entity.Item](ctx, r.store, repository.DocItems)
}

func (r *ItemRepo) Save(ctx context.Context, items []entity.Item) error {
	return saveList(ctx, r.store, repository.DocItems, items)
}

// BOMRepo bom.json.
type BOMRepo struct{ store *Store }

// NewBOMRepository construye el adaptador de la tabla BOM.
func NewBOMRepository(s *Store) *BOMRepo { return &BOMRepo{store: s} }

func (r *BOMRepo) Load(ctx context.Context) (entity.BOMTable, error) {
	bom := entity.BOMTable{}
	if _, err := r.store.read(ctx, repository.DocBOM, &bom); err != nil {
		return nil, err
	}
	if bom == nil {
		bom = entity.BOMTable{}
	}
	return bom, nil
}

func (r *BOMRepo) Save(ctx context.Context, bom entity.BOMTable) error {
	if bom == nil {
		bom = entity.BOMTable{}
	}
	return r.store.write(ctx, repository.DocBOM, bom)
}

// TransactionRepo inventory_transactions.json.
type TransactionRepo struct{ store *Store }

// NewTransactionRepository construye el adaptador del log de movimientos.
func NewTransactionRepository(s *Store) *TransactionRepo { return &TransactionRepo{store: s} }

func (r *TransactionRepo) Load(ctx context.Context) ([]entity.Transaction, error) {
	return loadList[entity.Transaction](ctx, r.store, repository.DocTransactions)
}

func (r *TransactionRepo) Save(ctx context.Context, transactions []entity.Transaction) error {
	return saveList(ctx, r.store, repository.DocTransactions, transactions)
}

// Repositories devuelve el conjunto de repositorios sobre este directorio.
func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		Suppliers:    NewSupplierRepository(s),
		Items:        NewItemRepository(s),
		BOM:          NewBOMRepository(s),
		Transactions: NewTransactionRepository(s),
	}
}

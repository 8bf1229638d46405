// Package memory implementa los repositorios en memoria (pruebas y modo efímero).
// Los documentos se guardan serializados para que cada Load devuelva una copia independiente.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/inventario-bom/internal/domain/entity"
	"github.com/jhoicas/inventario-bom/internal/domain/repository"
)

var (
	_ repository.SupplierRepository    = (*SupplierRepo)(nil)
	_ repository.ItemRepository        = (*ItemRepo)(nil)
	_ repository.BOMRepository         = (*BOMRepo)(nil)
	_ repository.TransactionRepository = (*TransactionRepo)(nil)
)

// Store documentos en memoria indexados por nombre.
type Store struct {
	mu    sync.RWMutex
	docs  map[string][]byte
	saves map[string]int
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{docs: map[string][]byte{}, saves: map[string]int{}}
}

// SaveCount cuántas veces se guardó el documento (útil en pruebas).
func (s *Store) SaveCount(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves[name]
}

func (s *Store) read(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	data, ok := s.docs[name]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decodificar %s: %w", name, err)
	}
	return nil
}

func (s *Store) write(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", name, err)
	}
	s.mu.Lock()
	s.docs[name] = data
	s.saves[name]++
	s.mu.Unlock()
	return nil
}

// SupplierRepo proveedores en memoria.
type SupplierRepo struct{ store *Store }

func (r *SupplierRepo) Load(ctx context.Context) ([]entity.Supplier, error) {
	list := []entity.Supplier{}
	if err := r.store.read(ctx, repository.DocSuppliers, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *SupplierRepo) Save(ctx context.Context, suppliers []entity.Supplier) error {
	return r.store.write(ctx, repository.DocSuppliers, suppliers)
}

// ItemRepo ítems en memoria.
type ItemRepo struct{ store *Store }

func (r *ItemRepo) Load(ctx context.Context) ([]entity.Item, error) {
	list := []entity.Item{}
	if err := r.store.read(ctx, repository.DocItems, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ItemRepo) Save(ctx context.Context, items []entity.Item) error {
	return r.store.write(ctx, repository.DocItems, items)
}

// BOMRepo tabla BOM en memoria.
type BOMRepo struct{ store *Store }

func (r *BOMRepo) Load(ctx context.Context) (entity.BOMTable, error) {
	bom := entity.BOMTable{}
	if err := r.store.read(ctx, repository.DocBOM, &bom); err != nil {
		return nil, err
	}
	if bom == nil {
		bom = entity.BOMTable{}
	}
	return bom, nil
}

func (r *BOMRepo) Save(ctx context.Context, bom entity.BOMTable) error {
	return r.store.write(ctx, repository.DocBOM, bom)
}

// TransactionRepo log de movimientos en memoria.
type TransactionRepo struct{ store *Store }

func (r *TransactionRepo) Load(ctx context.Context) ([]entity.Transaction, error) {
	list := []entity.Transaction{}
	if err := r.store.read(ctx, repository.DocTransactions, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *TransactionRepo) Save(ctx context.Context, transactions []entity.Transaction) error {
	return r.store.write(ctx, repository.DocTransactions, transactions)
}

// Repositories devuelve los repositorios sobre este store.
func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		Suppliers:    &SupplierRepo{store: s},
		Items:        &ItemRepo{store: s},
		BOM:          &BOMRepo{store: s},
		Transactions: &TransactionRepo{store: s},
	}
}

// TxRunner serializa las unidades de trabajo con un mutex.
type TxRunner struct {
	mu    sync.Mutex
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.store.Repositories())
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-bom/internal/domain/entity"
	"github.com/jhoicas/inventario-bom/internal/domain/repository"
)

var (
	_ repository.SupplierRepository    = (*SupplierRepo)(nil)
	_ repository.ItemRepository        = (*ItemRepo)(nil)
	_ repository.BOMRepository         = (*BOMRepo)(nil)
	_ repository.TransactionRepository = (*TransactionRepo)(nil)
)

// readDocument decodifica el body JSONB del documento en v. found=false si no hay fila.
func readDocument(ctx context.Context, q Querier, name string, v any) (bool, error) {
	var body []byte
	err := q.QueryRow(ctx, `SELECT body FROM inventory_documents WHERE name = $1`, name).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUndefinedTable(err) {
			return false, nil
		}
		return false, fmt.Errorf("leer documento %s: %w", name, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return false, fmt.Errorf("decodificar documento %s: %w", name, err)
	}
	return true, nil
}

// writeDocument reemplaza el documento completo con un único upsert.
func writeDocument(ctx context.Context, q Querier, name string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("codificar documento %s: %w", name, err)
	}
	query := `
		INSERT INTO inventory_documents (name, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`
	if _, err := q.Exec(ctx, query, name, body); err != nil {
		return fmt.Errorf("guardar documento %s: %w", name, err)
	}
	return nil
}

// SupplierRepo documento "suppliers" (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func (r *SupplierRepo) Load(ctx context.Context) ([]entity.Supplier, error) {
	list := []entity.Supplier{}
	if _, err := readDocument(ctx, r.q, repository.DocSuppliers, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []entity.Supplier{}
	}
	return list, nil
}

func (r *SupplierRepo) Save(ctx context.Context, suppliers []entity.Supplier) error {
	if suppliers == nil {
		suppliers = []entity.Supplier{}
	}
	return writeDocument(ctx, r.q, repository.DocSuppliers, suppliers)
}

// ItemRepo documento "items".
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de ítems.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

func (r *ItemRepo) Load(ctx context.Context) ([]entity.Item, error) {
	list := []entity.Item{}
	if _, err := readDocument(ctx, r.q, repository.DocItems, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []entity.Item{}
	}
	return list, nil
}

func (r *ItemRepo) Save(ctx context.Context, items []entity.Item) error {
	if items == nil {
		items = []entity.Item{}
	}
	return writeDocument(ctx, r.q, repository.DocItems, items)
}

// BOMRepo documento "bom".
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador de la tabla BOM.
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

func (r *BOMRepo) Load(ctx context.Context) (entity.BOMTable, error) {
	bom := entity.BOMTable{}
	if _, err := readDocument(ctx, r.q, repository.DocBOM, &bom); err != nil {
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
	return writeDocument(ctx, r.q, repository.DocBOM, bom)
}

// TransactionRepo documento "inventory_transactions".
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador del log de movimientos.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

func (r *TransactionRepo) Load(ctx context.Context) ([]entity.Transaction, error) {
	list := []entity.Transaction{}
	if _, err := readDocument(ctx, r.q, repository.DocTransactions, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []entity.Transaction{}
	}
	return list, nil
}

func (r *TransactionRepo) Save(ctx context.Context, transactions []entity.Transaction) error {
	if transactions == nil {
		transactions = []entity.Transaction{}
	}
	return writeDocument(ctx, r.q, repository.DocTransactions, transactions)
}

// NewRepositories agrupa los repositorios sobre el mismo Querier.
func NewRepositories(q Querier) repository.Repositories {
	return repository.Repositories{
		Suppliers:    NewSupplierRepository(q),
		Items:        NewItemRepository(q),
		BOM:          NewBOMRepository(q),
		Transactions: NewTransactionRepository(q),
	}
}

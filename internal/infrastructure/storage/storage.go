// Package storage selecciona el backend de documentos según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-bom/internal/application/inventory"
	"github.com/jhoicas/inventario-bom/internal/infrastructure/jsonstore"
	"github.com/jhoicas/inventario-bom/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-bom/pkg/config"
)

// Open abre el backend configurado y devuelve la unidad de trabajo y la función de cierre.
func Open(ctx context.Context, cfg *config.Config) (inventory.TxRunner, func(), error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("storage: esquema: %w", err)
		}
		return postgres.NewTxRunner(pool), pool.Close, nil
	case config.StorageFile:
		store, err := jsonstore.New(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return jsonstore.NewTxRunner(store), func() {}, nil
	}
	return nil, nil, fmt.Errorf("storage: driver no soportado %q", cfg.Storage.Driver)
}

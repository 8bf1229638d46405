package postgres

import (
	"context"
	"fmt"
)

const createDocumentsTable = `
	CREATE TABLE IF NOT EXISTS inventory_documents (
		name       TEXT PRIMARY KEY,
		body       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// EnsureSchema crea la tabla de documentos si no existe. Idempotente.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, createDocumentsTable); err != nil {
		return fmt.Errorf("crear inventory_documents: %w", err)
	}
	return nil
}

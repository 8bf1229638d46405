package inventory

import (
	"context"

	"github.com/jhoicas/inventario-bom/internal/domain/repository"
)

// TxRunner ejecuta una función como unidad de trabajo, pasando repositorios atados a ella.
// Serializa los ciclos cargar -> modificar -> guardar; si fn devuelve error no se confirma
// (en backends transaccionales) y el error se propaga.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repositories) error) error
}

package inventory

import "github.com/jhoicas/inventario-bom/internal/domain/entity"

// NextID devuelve max(ids)+1, o 1 si la colección está vacía. Los IDs no se reutilizan
// mientras el máximo siga presente.
func NextID[T entity.Identifiable](records []T) int {
	maxID := 0
	for _, r := range records {
		if id := r.GetID(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

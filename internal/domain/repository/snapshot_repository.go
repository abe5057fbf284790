package repository

import "github.com/jhoicas/warehouse-state/internal/domain/entity"

// SnapshotRepository define el puerto de persistencia del estado completo del almacén (DIP).
// Load devuelve siempre un estado nuevo; Save serializa el snapshot recibido sin retener la referencia.
type SnapshotRepository interface {
	Load() (*entity.Warehouse, error)
	Save(warehouse *entity.Warehouse) error
}

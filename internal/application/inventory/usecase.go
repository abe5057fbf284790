package inventory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/warehouse-state/internal/domain"
	"github.com/jhoicas/warehouse-state/internal/domain/entity"
	"github.com/jhoicas/warehouse-state/internal/domain/repository"
	"github.com/jhoicas/warehouse-state/pkg/logger"
)

// WarehouseManager es la autoridad en memoria sobre ubicaciones e inventario.
// Carga el snapshot una sola vez al construirse y persiste el snapshot completo tras cada mutación exitosa.
// No recarga desde disco antes de operar: el lock sólo protege cada escritura del archivo.
type WarehouseManager struct {
	mu    sync.Mutex
	repo  repository.SnapshotRepository
	state *entity.Warehouse
	log   *logger.Logger
}

// NewWarehouseManager carga el estado desde repo y construye el manager.
func NewWarehouseManager(repo repository.SnapshotRepository, log *logger.Logger) (*WarehouseManager, error) {
	if log == nil {
		log = logger.Nop()
	}
	state, err := repo.Load()
	if err != nil {
		return nil, err
	}
	log.Info().Int("locations", len(state.Locations)).Msg("estado del almacén cargado")
	return &WarehouseManager{repo: repo, state: state, log: log}, nil
}

// RegisterLocation registra una ubicación vacía.
func (m *WarehouseManager) RegisterLocation(locationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	loc, err := entity.NewLocation(locationID)
	if err != nil {
		return err
	}
	if m.state.Location(locationID) != nil {
		return domain.NewLocationAlreadyExists(locationID)
	}

	next := m.state.Clone()
	next.Locations[locationID] = loc
	return m.commit("register_location", next, locationID)
}

// UnregisterLocation elimina una ubicación sin inventario.
func (m *WarehouseManager) UnregisterLocation(locationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	loc := m.state.Location(locationID)
	if loc == nil {
		return domain.NewLocationNotFound(locationID)
	}
	if loc.HasInventory() {
		return domain.NewLocationHasInventory(locationID)
	}

	next := m.state.Clone()
	delete(next.Locations, locationID)
	return m.commit("unregister_location", next, locationID)
}

// IncrementInventory suma quantity del ítem en la ubicación (lo crea si no existe).
func (m *WarehouseManager) IncrementInventory(locationID, itemID string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Location(locationID) == nil {
		return domain.NewLocationNotFound(locationID)
	}
	if err := entity.ValidateQuantity(quantity); err != nil {
		return err
	}

	next := m.state.Clone()
	if err := next.Location(locationID).AddItem(itemID, quantity); err != nil {
		return err
	}
	return m.commit("increment_inventory", next, locationID)
}

// DecrementInventory resta quantity del ítem; al llegar a cero el registro desaparece.
func (m *WarehouseManager) DecrementInventory(locationID, itemID string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Location(locationID) == nil {
		return domain.NewLocationNotFound(locationID)
	}
	if err := entity.ValidateQuantity(quantity); err != nil {
		return err
	}

	next := m.state.Clone()
	if err := next.Location(locationID).RemoveItem(itemID, quantity); err != nil {
		return err
	}
	return m.commit("decrement_inventory", next, locationID)
}

// TransferInventory mueve quantity del ítem de src a dst.
// Ambos lados se escriben en un único snapshot: en disco nunca se observa una transferencia parcial.
func (m *WarehouseManager) TransferInventory(srcLocationID, dstLocationID, itemID string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Location(srcLocationID) == nil {
		return domain.NewLocationNotFound(srcLocationID)
	}
	if m.state.Location(dstLocationID) == nil {
		return domain.NewLocationNotFound(dstLocationID)
	}
	if err := entity.ValidateQuantity(quantity); err != nil {
		return err
	}

	next := m.state.Clone()
	if err := next.Location(srcLocationID).RemoveItem(itemID, quantity); err != nil {
		return err
	}
	if err := next.Location(dstLocationID).AddItem(itemID, quantity); err != nil {
		return err
	}
	return m.commit("transfer_inventory", next, srcLocationID, dstLocationID)
}

// ObserveInventory devuelve los ítems de la ubicación ordenados por item_id.
func (m *WarehouseManager) ObserveInventory(locationID string) ([]entity.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	loc := m.state.Location(locationID)
	if loc == nil {
		return nil, domain.NewLocationNotFound(locationID)
	}
	return loc.SortedItems(), nil
}

// Locations ids de las ubicaciones registradas, ordenados.
func (m *WarehouseManager) Locations() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.LocationIDs()
}

// Snapshot copia del estado actual en memoria.
func (m *WarehouseManager) Snapshot() *entity.Warehouse {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

// commit persiste next y sólo entonces lo adopta como estado; si Save falla la memoria no cambia.
func (m *WarehouseManager) commit(op string, next *entity.Warehouse, locationIDs ...string) error {
	txID := uuid.New().String()
	if err := m.repo.Save(next); err != nil {
		m.log.Warn().Err(err).
			Str("tx_id", txID).
			Str("op", op).
			Strs("locations", locationIDs).
			Msg("no se pudo persistir; estado sin cambios")
		return err
	}
	m.state = next
	m.log.Debug().
		Str("tx_id", txID).
		Str("op", op).
		Strs("locations", locationIDs).
		Msg("snapshot persistido")
	return nil
}

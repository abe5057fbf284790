package entity

import (
	"sort"

	"github.com/jhoicas/warehouse-state/internal/domain"
)

// Warehouse estado completo del almacén: todas las ubicaciones por location_id.
// Es el snapshot que se persiste y se carga de forma íntegra.
type Warehouse struct {
	Locations map[string]*Location
}

// NewWarehouse construye un estado vacío.
func NewWarehouse() *Warehouse {
	return &Warehouse{Locations: make(map[string]*Location)}
}

// Location devuelve la ubicación o nil si no está registrada.
func (w *Warehouse) Location(locationID string) *Location {
	return w.Locations[locationID]
}

// Validate verifica cada ubicación y que la clave coincida con LocationID.
func (w *Warehouse) Validate() error {
	for key, loc := range w.Locations {
		if loc == nil {
			return domain.NewInvalidArgument("locations", "entry '"+key+"' is null")
		}
		if key != loc.LocationID {
			return domain.NewInvalidArgument("locations", "key '"+key+"' does not match location_id '"+loc.LocationID+"'")
		}
		if err := loc.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// LocationIDs ids registrados en orden ascendente.
func (w *Warehouse) LocationIDs() []string {
	ids := make([]string, 0, len(w.Locations))
	for id := range w.Locations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone copia profunda del estado.
func (w *Warehouse) Clone() *Warehouse {
	out := &Warehouse{Locations: make(map[string]*Location, len(w.Locations))}
	for id, loc := range w.Locations {
		out.Locations[id] = loc.Clone()
	}
	return out
}

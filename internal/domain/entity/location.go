package entity

import (
	"math"
	"sort"

	"github.com/jhoicas/warehouse-state/internal/domain"
)

// Location ubicación del almacén con su inventario por item_id.
type Location struct {
	LocationID string
	Inventory  map[string]InventoryItem
}

// NewLocation construye una ubicación vacía con id validado.
func NewLocation(locationID string) (*Location, error) {
	if err := ValidateIdentifier("location_id", locationID); err != nil {
		return nil, err
	}
	return &Location{LocationID: locationID, Inventory: make(map[string]InventoryItem)}, nil
}

// Validate verifica el id, cada ítem y que las claves del mapa coincidan con ItemID.
func (l *Location) Validate() error {
	if err := ValidateIdentifier("location_id", l.LocationID); err != nil {
		return err
	}
	for key, item := range l.Inventory {
		if key != item.ItemID {
			return domain.NewInvalidArgument("inventory", "key '"+key+"' does not match item_id '"+item.ItemID+"'")
		}
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// HasInventory indica si la ubicación tiene al menos un ítem.
func (l *Location) HasInventory() bool {
	return len(l.Inventory) > 0
}

// ItemQuantity devuelve la cantidad del ítem, 0 si no existe.
func (l *Location) ItemQuantity(itemID string) int {
	return l.Inventory[itemID].Quantity
}

// AddItem crea el ítem o suma quantity a la cantidad existente.
func (l *Location) AddItem(itemID string, quantity int) error {
	if err := ValidateIdentifier("item_id", itemID); err != nil {
		return err
	}
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	current := l.Inventory[itemID].Quantity
	if current > math.MaxInt-quantity {
		return domain.NewInvalidArgument("quantity", "overflows the stored quantity")
	}
	if l.Inventory == nil {
		l.Inventory = make(map[string]InventoryItem)
	}
	l.Inventory[itemID] = InventoryItem{ItemID: itemID, Quantity: current + quantity}
	return nil
}

// RemoveItem resta quantity del ítem; si llega a cero elimina el registro.
func (l *Location) RemoveItem(itemID string, quantity int) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	item, ok := l.Inventory[itemID]
	if !ok {
		return &domain.ItemNotFoundError{ItemID: itemID, LocationID: l.LocationID}
	}
	if quantity > item.Quantity {
		return &domain.InsufficientQuantityError{
			ItemID:     itemID,
			LocationID: l.LocationID,
			Requested:  quantity,
			Available:  item.Quantity,
		}
	}
	if quantity == item.Quantity {
		delete(l.Inventory, itemID)
		return nil
	}
	item.Quantity -= quantity
	l.Inventory[itemID] = item
	return nil
}

// SortedItems devuelve los ítems ordenados por item_id ascendente.
func (l *Location) SortedItems() []InventoryItem {
	items := make([]InventoryItem, 0, len(l.Inventory))
	for _, item := range l.Inventory {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })
	return items
}

// Clone copia profunda; el inventario no se comparte con el original.
func (l *Location) Clone() *Location {
	inv := make(map[string]InventoryItem, len(l.Inventory))
	for k, v := range l.Inventory {
		inv[k] = v
	}
	return &Location{LocationID: l.LocationID, Inventory: inv}
}

package entity

import (
	"regexp"

	"github.com/jhoicas/warehouse-state/internal/domain"
)

// identifierPattern formato de location_id e item_id: alfanumérico con guion bajo.
var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidateIdentifier verifica que id sea no vacío y cumpla [A-Za-z0-9_]+.
func ValidateIdentifier(field, id string) error {
	if id == "" {
		return domain.NewInvalidArgument(field, "cannot be empty")
	}
	if !identifierPattern.MatchString(id) {
		return domain.NewInvalidArgument(field, "must be alphanumeric (underscores allowed)")
	}
	return nil
}

// ValidateQuantity verifica que la cantidad sea un entero positivo.
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return domain.NewInvalidArgument("", "Quantity must be a positive integer")
	}
	return nil
}

// InventoryItem cantidad de un ítem dentro de una ubicación.
// Nunca existe con Quantity <= 0: al llegar a cero el registro se elimina.
type InventoryItem struct {
	ItemID   string
	Quantity int
}

// NewInventoryItem construye un ítem validado.
func NewInventoryItem(itemID string, quantity int) (InventoryItem, error) {
	item := InventoryItem{ItemID: itemID, Quantity: quantity}
	if err := item.Validate(); err != nil {
		return InventoryItem{}, err
	}
	return item, nil
}

// Validate aplica las invariantes del ítem.
func (i InventoryItem) Validate() error {
	if err := ValidateIdentifier("item_id", i.ItemID); err != nil {
		return err
	}
	return ValidateQuantity(i.Quantity)
}

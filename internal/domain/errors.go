package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// Los errores con detalle (ver tipos abajo) hacen match con su sentinel vía errors.Is.
var (
	ErrLocationAlreadyExists = errors.New("location already exists")
	ErrLocationNotFound      = errors.New("location does not exist")
	ErrLocationHasInventory  = errors.New("location has inventories")
	ErrItemNotFound          = errors.New("item not found")
	ErrInsufficientQuantity  = errors.New("insufficient quantity")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrStorage               = errors.New("storage error")
)

// LocationError error asociado a una ubicación concreta.
// Kind es uno de ErrLocationAlreadyExists, ErrLocationNotFound o ErrLocationHasInventory.
type LocationError struct {
	Kind       error
	LocationID string
}

func (e *LocationError) Error() string {
	switch e.Kind {
	case ErrLocationAlreadyExists:
		return fmt.Sprintf("Location '%s' already exists", e.LocationID)
	case ErrLocationNotFound:
		return fmt.Sprintf("Location '%s' does not exist", e.LocationID)
	case ErrLocationHasInventory:
		return fmt.Sprintf("Location '%s' has inventories", e.LocationID)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.LocationID)
}

func (e *LocationError) Unwrap() error { return e.Kind }

// NewLocationAlreadyExists, NewLocationNotFound y NewLocationHasInventory construyen LocationError.
func NewLocationAlreadyExists(locationID string) error {
	return &LocationError{Kind: ErrLocationAlreadyExists, LocationID: locationID}
}

func NewLocationNotFound(locationID string) error {
	return &LocationError{Kind: ErrLocationNotFound, LocationID: locationID}
}

func NewLocationHasInventory(locationID string) error {
	return &LocationError{Kind: ErrLocationHasInventory, LocationID: locationID}
}

// ItemNotFoundError el ítem no existe en la ubicación.
type ItemNotFoundError struct {
	ItemID     string
	LocationID string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("Item '%s' not found in location '%s'", e.ItemID, e.LocationID)
}

func (e *ItemNotFoundError) Unwrap() error { return ErrItemNotFound }

// InsufficientQuantityError se pidió más cantidad de la disponible.
type InsufficientQuantityError struct {
	ItemID     string
	LocationID string
	Requested  int
	Available  int
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("Insufficient quantity of item %s in location %s (has %d)",
		e.ItemID, e.LocationID, e.Available)
}

func (e *InsufficientQuantityError) Unwrap() error { return ErrInsufficientQuantity }

// InvalidArgumentError argumento inválido (cantidad no positiva, identificador mal formado).
type InvalidArgumentError struct {
	Field   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// NewInvalidArgument construye un InvalidArgumentError.
func NewInvalidArgument(field, message string) error {
	return &InvalidArgumentError{Field: field, Message: message}
}

// StorageError fallo de persistencia: timeout del lock, datos corruptos o I/O.
// Err conserva la causa para errors.Is/As (p. ej. os.ErrPermission).
type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return "Storage error: " + e.Message
	}
	return fmt.Sprintf("Storage error: %s: %v", e.Message, e.Err)
}

func (e *StorageError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrStorage}
	}
	return []error{ErrStorage, e.Err}
}

// NewStorageError envuelve err como StorageError.
func NewStorageError(message string, err error) error {
	return &StorageError{Message: message, Err: err}
}

package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/warehouse-state/internal/domain/entity"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Respuestas fijas del protocolo.
const (
	MsgOK     = "OK"
	MsgEmpty  = "EMPTY"
	ErrPrefix = "ERR"
)

// ErrInvalidCommand la línea no respeta la sintaxis del protocolo.
var ErrInvalidCommand = errors.New("invalid command")

// InvalidCommandError detalle de una línea mal formada.
type InvalidCommandError struct {
	Detail string
}

func (e *InvalidCommandError) Error() string { return "Invalid command: " + e.Detail }

func (e *InvalidCommandError) Unwrap() error { return ErrInvalidCommand }

func invalidCommand(format string, args ...any) error {
	return &InvalidCommandError{Detail: fmt.Sprintf(format, args...)}
}

// WarehouseService operaciones del manager que consume el adaptador.
type WarehouseService interface {
	RegisterLocation(locationID string) error
	UnregisterLocation(locationID string) error
	IncrementInventory(locationID, itemID string, quantity int) error
	DecrementInventory(locationID, itemID string, quantity int) error
	TransferInventory(srcLocationID, dstLocationID, itemID string, quantity int) error
	ObserveInventory(locationID string) ([]entity.InventoryItem, error)
}

// Controller traduce líneas de texto a operaciones y formatea la respuesta
// como "OK", "EMPTY", líneas "ITEM <id> <qty>" o "ERR: <mensaje>".
type Controller struct {
	svc   WarehouseService
	upper cases.Caser
}

// NewController construye el adaptador.
func NewController(svc WarehouseService) *Controller {
	return &Controller{svc: svc, upper: cases.Upper(language.Und)}
}

// Execute procesa una línea. Una línea vacía devuelve "" (no se imprime nada).
func (c *Controller) Execute(line string) string {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return ""
	}
	reply, err := c.dispatch(tokens)
	if err != nil {
		return FormatError(err)
	}
	return reply
}

// FormatError aplica el prefijo ERR del protocolo.
func FormatError(err error) string {
	return ErrPrefix + ": " + err.Error()
}

func (c *Controller) dispatch(tokens []string) (string, error) {
	if len(tokens) < 2 {
		return "", invalidCommand("Command must have at least 2 tokens")
	}
	domainName := c.upper.String(tokens[0])
	operation := c.upper.String(tokens[1])
	args := tokens[2:]

	switch domainName {
	case "LOCATION":
		return c.location(operation, args)
	case "INVENTORY":
		return c.inventory(operation, args)
	}
	return "", invalidCommand("Unknown domain: %s", domainName)
}

func (c *Controller) location(operation string, args []string) (string, error) {
	switch operation {
	case "REGISTER", "UNREGISTER":
		if len(args) != 1 {
			return "", invalidCommand("LOCATION %s requires 1 argument, got %d", operation, len(args))
		}
		if err := validateIdentifier(args[0], "location_id"); err != nil {
			return "", err
		}
		var err error
		if operation == "REGISTER" {
			err = c.svc.RegisterLocation(args[0])
		} else {
			err = c.svc.UnregisterLocation(args[0])
		}
		if err != nil {
			return "", err
		}
		return MsgOK, nil
	}
	return "", invalidCommand("Unknown LOCATION operation: %s", operation)
}

func (c *Controller) inventory(operation string, args []string) (string, error) {
	switch operation {
	case "INCREMENT", "DECREMENT":
		if len(args) != 3 {
			return "", invalidCommand("INVENTORY %s requires 3 arguments, got %d", operation, len(args))
		}
		locationID, itemID := args[0], args[1]
		if err := validateIdentifiers(locationID, "location_id", itemID, "item_id"); err != nil {
			return "", err
		}
		qty, err := parseQuantity(args[2])
		if err != nil {
			return "", err
		}
		if operation == "INCREMENT" {
			err = c.svc.IncrementInventory(locationID, itemID, qty)
		} else {
			err = c.svc.DecrementInventory(locationID, itemID, qty)
		}
		if err != nil {
			return "", err
		}
		return MsgOK, nil

	case "TRANSFER":
		if len(args) != 4 {
			return "", invalidCommand("INVENTORY TRANSFER requires 4 arguments, got %d", len(args))
		}
		src, dst, itemID := args[0], args[1], args[2]
		if err := validateIdentifiers(src, "source_location_id", dst, "destination_location_id", itemID, "item_id"); err != nil {
			return "", err
		}
		qty, err := parseQuantity(args[3])
		if err != nil {
			return "", err
		}
		if err := c.svc.TransferInventory(src, dst, itemID, qty); err != nil {
			return "", err
		}
		return MsgOK, nil

	case "OBSERVE":
		if len(args) != 1 {
			return "", invalidCommand("INVENTORY OBSERVE requires 1 argument, got %d", len(args))
		}
		if err := validateIdentifier(args[0], "location_id"); err != nil {
			return "", err
		}
		items, err := c.svc.ObserveInventory(args[0])
		if err != nil {
			return "", err
		}
		return formatItems(items), nil
	}
	return "", invalidCommand("Unknown INVENTORY operation: %s", operation)
}

// validateIdentifiers recibe pares (valor, nombre del parámetro).
func validateIdentifiers(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := validateIdentifier(pairs[i], pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func validateIdentifier(id, param string) error {
	if err := entity.ValidateIdentifier(param, id); err != nil {
		return invalidCommand("%s", err.Error())
	}
	return nil
}

func parseQuantity(s string) (int, error) {
	qty, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalidCommand("Invalid quantity: '%s' is not an integer", s)
	}
	if qty <= 0 {
		return 0, invalidCommand("Quantity must be a positive integer")
	}
	return qty, nil
}

// formatItems una línea "ITEM <id> <qty>" por ítem; se asume el orden por item_id del manager.
func formatItems(items []entity.InventoryItem) string {
	if len(items) == 0 {
		return MsgEmpty
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("ITEM %s %d", item.ItemID, item.Quantity))
	}
	return strings.Join(lines, "\n")
}

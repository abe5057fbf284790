package command_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/warehouse-state/internal/application/inventory"
	"github.com/jhoicas/warehouse-state/internal/domain"
	"github.com/jhoicas/warehouse-state/internal/domain/entity"
	"github.com/jhoicas/warehouse-state/internal/infrastructure/filestore"
	"github.com/jhoicas/warehouse-state/internal/interfaces/command"
	"github.com/jhoicas/warehouse-state/pkg/logger"
)

func newController(t *testing.T) *command.Controller {
	t.Helper()
	repo := filestore.NewSnapshotRepository(filepath.Join(t.TempDir(), "warehouse_state.json"))
	m, err := inventory.NewWarehouseManager(repo, logger.Nop())
	require.NoError(t, err)
	return command.NewController(m)
}

// run ejecuta cada línea y devuelve las respuestas en orden.
func run(c *command.Controller, lines ...string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, c.Execute(l))
	}
	return out
}

// ── Flujo completo ────────────────────────────────────────────────────────────

func TestController_FlujoBasico(t *testing.T) {
	c := newController(t)

	replies := run(c,
		"LOCATION REGISTER L1",
		"INVENTORY INCREMENT L1 IB 1",
		"INVENTORY INCREMENT L1 IA 2",
		"INVENTORY OBSERVE L1",
	)
	assert.Equal(t, []string{"OK", "OK", "OK", "ITEM IA 2\nITEM IB 1"}, replies)
}

func TestController_ObserveVacio(t *testing.T) {
	c := newController(t)
	assert.Equal(t, []string{"OK", "EMPTY"}, run(c, "LOCATION REGISTER L1", "INVENTORY OBSERVE L1"))
}

func TestController_PalabrasClaveSinDistinguirMayusculas(t *testing.T) {
	c := newController(t)
	assert.Equal(t, []string{"OK", "OK"}, run(c, "location register L1", "Inventory Increment L1 IA 3"))
}

func TestController_LineaVaciaNoResponde(t *testing.T) {
	c := newController(t)
	assert.Equal(t, "", c.Execute("   "))
}

// ── Errores de negocio ────────────────────────────────────────────────────────

func TestController_ErroresDeNegocio(t *testing.T) {
	c := newController(t)
	run(c, "LOCATION REGISTER L1", "LOCATION REGISTER L2", "INVENTORY INCREMENT L1 IA 2")

	cases := map[string]string{
		"LOCATION REGISTER L1":            "ERR: Location 'L1' already exists",
		"LOCATION UNREGISTER NOPE":        "ERR: Location 'NOPE' does not exist",
		"LOCATION UNREGISTER L1":          "ERR: Location 'L1' has inventories",
		"INVENTORY DECREMENT L1 IB 1":     "ERR: Item 'IB' not found in location 'L1'",
		"INVENTORY DECREMENT L1 IA 3":     "ERR: Insufficient quantity of item IA in location L1 (has 2)",
		"INVENTORY TRANSFER L1 L2 IA 5":   "ERR: Insufficient quantity of item IA in location L1 (has 2)",
		"INVENTORY TRANSFER L1 NOPE IA 1": "ERR: Location 'NOPE' does not exist",
		"INVENTORY OBSERVE NOPE":          "ERR: Location 'NOPE' does not exist",
	}
	for line, want := range cases {
		assert.Equal(t, want, c.Execute(line), line)
	}
	assert.Equal(t, "ITEM IA 2", c.Execute("INVENTORY OBSERVE L1"), "los errores no deben alterar el estado")
}

func TestController_Transferencia(t *testing.T) {
	c := newController(t)
	replies := run(c,
		"LOCATION REGISTER SRC",
		"LOCATION REGISTER DST",
		"INVENTORY INCREMENT SRC IA 2",
		"INVENTORY TRANSFER SRC DST IA 2",
		"INVENTORY OBSERVE SRC",
		"INVENTORY OBSERVE DST",
	)
	assert.Equal(t, []string{"OK", "OK", "OK", "OK", "EMPTY", "ITEM IA 2"}, replies)
}

// ── Errores de sintaxis ───────────────────────────────────────────────────────

func TestController_ErroresDeSintaxis(t *testing.T) {
	c := newController(t)

	cases := map[string]string{
		"LOCATION":                      "ERR: Invalid command: Command must have at least 2 tokens",
		"WAREHOUSE LIST":                "ERR: Invalid command: Unknown domain: WAREHOUSE",
		"LOCATION MOVE L1":              "ERR: Invalid command: Unknown LOCATION operation: MOVE",
		"INVENTORY COUNT L1":            "ERR: Invalid command: Unknown INVENTORY operation: COUNT",
		"LOCATION REGISTER":             "ERR: Invalid command: LOCATION REGISTER requires 1 argument, got 0",
		"LOCATION REGISTER L-1":         "ERR: Invalid command: location_id must be alphanumeric (underscores allowed)",
		"INVENTORY INCREMENT L1 IA":     "ERR: Invalid command: INVENTORY INCREMENT requires 3 arguments, got 2",
		"INVENTORY INCREMENT L1 IA x":   "ERR: Invalid command: Invalid quantity: 'x' is not an integer",
		"INVENTORY DECREMENT L1 IA 0":   "ERR: Invalid command: Quantity must be a positive integer",
		"INVENTORY TRANSFER L1 L2 IA":   "ERR: Invalid command: INVENTORY TRANSFER requires 4 arguments, got 3",
		"INVENTORY TRANSFER L1 L$ IA 1": "ERR: Invalid command: destination_location_id must be alphanumeric (underscores allowed)",
		"INVENTORY OBSERVE L1 L2":       "ERR: Invalid command: INVENTORY OBSERVE requires 1 argument, got 2",
		"INVENTORY INCREMENT L1 I.A 1":  "ERR: Invalid command: item_id must be alphanumeric (underscores allowed)",
	}
	for line, want := range cases {
		assert.Equal(t, want, c.Execute(line), line)
	}
}

// ── Session ───────────────────────────────────────────────────────────────────

func TestSession_ProcesaEntradaCompleta(t *testing.T) {
	c := newController(t)
	s := command.NewSession(c, logger.Nop())

	input := strings.Join([]string{
		"LOCATION REGISTER L1",
		"",
		"INVENTORY INCREMENT L1 IA 2",
		"INVENTORY DECREMENT L1 IA 3",
		"INVENTORY OBSERVE L1",
	}, "\n")
	var out bytes.Buffer

	require.NoError(t, s.Run(strings.NewReader(input), &out))
	assert.Equal(t,
		"OK\nOK\nERR: Insufficient quantity of item IA in location L1 (has 2)\nITEM IA 2\n",
		out.String())
}

// ── Fallo de almacenamiento ───────────────────────────────────────────────────

type storageDown struct{ err error }

func (s storageDown) RegisterLocation(string) error                           { return s.err }
func (s storageDown) UnregisterLocation(string) error                         { return s.err }
func (s storageDown) IncrementInventory(string, string, int) error            { return s.err }
func (s storageDown) DecrementInventory(string, string, int) error            { return s.err }
func (s storageDown) TransferInventory(string, string, string, int) error     { return s.err }
func (s storageDown) ObserveInventory(string) ([]entity.InventoryItem, error) { return nil, s.err }

func TestController_ErrorDeAlmacenamiento(t *testing.T) {
	c := command.NewController(storageDown{
		err: domain.NewStorageError("failed to acquire file lock within 10s", context.DeadlineExceeded),
	})

	want := "ERR: Storage error: failed to acquire file lock within 10s: context deadline exceeded"
	assert.Equal(t, want, c.Execute("LOCATION REGISTER L1"))
	assert.Equal(t, want, c.Execute("INVENTORY OBSERVE L1"))
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/warehouse-state/internal/application/dto"
)

// InventoryHandler maneja las peticiones HTTP de inventario por ubicación.
type InventoryHandler struct {
	svc WarehouseService
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(svc WarehouseService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// Observe godoc
// @Summary      Inventario de una ubicación (ordenado por item_id)
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "location_id"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/inventory [get]
func (h *InventoryHandler) Observe(c *fiber.Ctx) error {
	return h.respondInventory(c, c.Params("id"), fiber.StatusOK)
}

// Increment godoc
// @Summary      Sumar cantidad de un ítem
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "location_id"
// @Param        body  body  dto.InventoryChangeRequest  true  "item_id, quantity"
// @Success      200   {object}  dto.InventoryResponse
// @Router       /api/locations/{id}/inventory/increment [post]
func (h *InventoryHandler) Increment(c *fiber.Ctx) error {
	var in dto.InventoryChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	locationID := c.Params("id")
	if err := h.svc.IncrementInventory(locationID, in.ItemID, in.Quantity); err != nil {
		return writeError(c, err)
	}
	return h.respondInventory(c, locationID, fiber.StatusOK)
}

// Decrement godoc
// @Summary      Restar cantidad de un ítem
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "location_id"
// @Param        body  body  dto.InventoryChangeRequest  true  "item_id, quantity"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      409   {object}  dto.InsufficientQuantityResponse
// @Router       /api/locations/{id}/inventory/decrement [post]
func (h *InventoryHandler) Decrement(c *fiber.Ctx) error {
	var in dto.InventoryChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	locationID := c.Params("id")
	if err := h.svc.DecrementInventory(locationID, in.ItemID, in.Quantity); err != nil {
		return writeError(c, err)
	}
	return h.respondInventory(c, locationID, fiber.StatusOK)
}

// Transfer godoc
// @Summary      Transferir un ítem entre ubicaciones (atómico)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "origen, destino, item_id, quantity"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.InsufficientQuantityResponse
// @Router       /api/inventory/transfers [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	err := h.svc.TransferInventory(in.SourceLocationID, in.DestinationLocationID, in.ItemID, in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "transferencia registrada"})
}

func (h *InventoryHandler) respondInventory(c *fiber.Ctx, locationID string, status int) error {
	items, err := h.svc.ObserveInventory(locationID)
	if err != nil {
		return writeError(c, err)
	}
	out := dto.InventoryResponse{LocationID: locationID, Items: make([]dto.InventoryItemResponse, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, dto.InventoryItemResponse{ItemID: item.ItemID, Quantity: item.Quantity})
	}
	return c.Status(status).JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/warehouse-state/internal/application/dto"
	"github.com/jhoicas/warehouse-state/internal/domain/entity"
)

// WarehouseService operaciones del manager expuestas por HTTP.
type WarehouseService interface {
	RegisterLocation(locationID string) error
	UnregisterLocation(locationID string) error
	IncrementInventory(locationID, itemID string, quantity int) error
	DecrementInventory(locationID, itemID string, quantity int) error
	TransferInventory(srcLocationID, dstLocationID, itemID string, quantity int) error
	ObserveInventory(locationID string) ([]entity.InventoryItem, error)
	Locations() []string
}

// LocationHandler maneja registro, baja y listado de ubicaciones.
type LocationHandler struct {
	svc WarehouseService
}

// NewLocationHandler construye el handler.
func NewLocationHandler(svc WarehouseService) *LocationHandler {
	return &LocationHandler{svc: svc}
}

// List godoc
// @Summary      Listar ubicaciones
// @Tags         locations
// @Produce      json
// @Success      200  {object}  dto.LocationListResponse
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	ids := h.svc.Locations()
	return c.JSON(dto.LocationListResponse{Items: ids, Total: len(ids)})
}

// Register godoc
// @Summary      Registrar ubicación
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterLocationRequest  true  "location_id"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *LocationHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.svc.RegisterLocation(in.LocationID); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"location_id": in.LocationID})
}

// Unregister godoc
// @Summary      Dar de baja una ubicación sin inventario
// @Tags         locations
// @Param        id   path  string  true  "location_id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [delete]
func (h *LocationHandler) Unregister(c *fiber.Ctx) error {
	if err := h.svc.UnregisterLocation(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

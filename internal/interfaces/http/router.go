package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/warehouse-state/pkg/jwt"
)

// RouterDeps dependencias para el router.
// JWTSecret vacío deja el API sin autenticación.
type RouterDeps struct {
	Warehouse WarehouseService
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	var readers, writers []fiber.Handler
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
		readers = []fiber.Handler{RequireRole(jwt.RoleAdmin, jwt.RoleOperator, jwt.RoleViewer)}
		writers = []fiber.Handler{RequireRole(jwt.RoleAdmin, jwt.RoleOperator)}
	}

	locationHandler := NewLocationHandler(deps.Warehouse)
	inventoryHandler := NewInventoryHandler(deps.Warehouse)

	// Locations
	locations := api.Group("/locations")
	locations.Get("/", with(readers, locationHandler.List)...)
	locations.Post("/", with(writers, locationHandler.Register)...)
	locations.Delete("/:id", with(writers, locationHandler.Unregister)...)

	// Inventory por ubicación
	locations.Get("/:id/inventory", with(readers, inventoryHandler.Observe)...)
	locations.Post("/:id/inventory/increment", with(writers, inventoryHandler.Increment)...)
	locations.Post("/:id/inventory/decrement", with(writers, inventoryHandler.Decrement)...)

	// Transferencias
	api.Post("/inventory/transfers", with(writers, inventoryHandler.Transfer)...)
}

// with antepone los middlewares al handler sin compartir el slice subyacente.
func with(middlewares []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(middlewares)+1)
	out = append(out, middlewares...)
	return append(out, h)
}

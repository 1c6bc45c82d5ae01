package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-tracker/internal/application/auditlog"
	"github.com/jhoicas/inventory-tracker/internal/application/auth"
	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/application/movement"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Inventory *inventory.MutationService
	Labels    *inventory.LabelUseCase
	Movements *movement.Service
	AuditLog  *auditlog.Service
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token con rol conocido)
	requireAuth := []fiber.Handler{
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin, entity.RoleStaff),
	}
	protected := func(prefix string) fiber.Router {
		handlers := append([]fiber.Handler{}, requireAuth...)
		return api.Group(prefix, handlers...)
	}

	inventoryHandler := NewInventoryHandler(deps.Inventory, deps.Labels)
	historyHandler := NewHistoryHandler(deps.Movements, deps.AuditLog)

	// Inventories: las rutas fijas van antes de /:id
	inv := protected("/inventories")
	inv.Post("/", inventoryHandler.Create)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/low-stock", inventoryHandler.LowStock)
	inv.Get("/low-stock/:threshold", inventoryHandler.LowStock)
	inv.Get("/scan/:token", inventoryHandler.Scan)
	inv.Get("/:id", inventoryHandler.GetByID)
	inv.Get("/:id/history", historyHandler.ItemHistory)
	inv.Get("/:id/qr", inventoryHandler.QR)
	inv.Get("/:id/share-qr", inventoryHandler.ShareQR)
	inv.Get("/:id/label", inventoryHandler.Label)
	inv.Put("/:id", inventoryHandler.Update)
	inv.Patch("/:id/quantity", inventoryHandler.SetQuantity)
	inv.Delete("/:id", inventoryHandler.Delete)

	// Libro de movimientos
	movements := protected("/movements")
	movements.Get("/:productId", historyHandler.Movements)

	// Historial (papelera de solo lectura)
	logs := protected("/products/logs")
	logs.Get("/history/:productId", historyHandler.Logs)
	logs.Get("/deleted", historyHandler.Deleted)
}

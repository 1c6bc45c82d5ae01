package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-tracker/internal/application/auditlog"
	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/movement"
)

// HistoryHandler expone el libro de movimientos y el historial (solo lectura).
type HistoryHandler struct {
	movements *movement.Service
	audit     *auditlog.Service
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(movements *movement.Service, audit *auditlog.Service) *HistoryHandler {
	return &HistoryHandler{movements: movements, audit: audit}
}

// Movements godoc
// @Summary      Movimientos de un item
// @Description  Más recientes primero. Un ID desconocido devuelve una lista vacía.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del item"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements/{productId} [get]
func (h *HistoryHandler) Movements(c *fiber.Ctx) error {
	list, err := h.movements.ListByItem(c.UserContext(), c.Params("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewMovementListResponse(list))
}

// Logs godoc
// @Summary      Historial de acciones de un item
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del item"
// @Success      200  {array}  dto.AuditLogResponse
// @Router       /api/products/logs/history/{productId} [get]
func (h *HistoryHandler) Logs(c *fiber.Ctx) error {
	return h.listByItem(c, c.Params("productId"))
}

// Deleted godoc
// @Summary      Items eliminados
// @Description  Entradas "deleted" con el snapshot de cada item. No hay restauración.
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AuditLogResponse
// @Router       /api/products/logs/deleted [get]
func (h *HistoryHandler) Deleted(c *fiber.Ctx) error {
	list, err := h.audit.ListDeleted(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewAuditLogListResponse(list))
}

// ItemHistory godoc
// @Summary      Historial del item
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del item"
// @Success      200  {array}   dto.AuditLogResponse
// @Router       /api/inventories/{id}/history [get]
func (h *HistoryHandler) ItemHistory(c *fiber.Ctx) error {
	return h.listByItem(c, c.Params("id"))
}

func (h *HistoryHandler) listByItem(c *fiber.Ctx, itemID string) error {
	list, err := h.audit.ListByItem(c.UserContext(), itemID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewAuditLogListResponse(list))
}

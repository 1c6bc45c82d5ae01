package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// InventoryHandler maneja el CRUD de items y sus consultas (protegido).
type InventoryHandler struct {
	svc    *inventory.MutationService
	labels *inventory.LabelUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(svc *inventory.MutationService, labels *inventory.LabelUseCase) *InventoryHandler {
	return &InventoryHandler{svc: svc, labels: labels}
}

// Create godoc
// @Summary      Crear item
// @Description  Crea el item, genera su QR y registra el historial y el movimiento de entrada inicial.
// @Tags         inventories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del item"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventories [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	item, err := h.svc.Create(c.UserContext(), in.ToInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewItemResponse(item))
}

// List godoc
// @Summary      Listar items
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ItemResponse
// @Router       /api/inventories [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.svc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewItemListResponse(items))
}

// LowStock godoc
// @Summary      Items con poco stock
// @Description  Items con cantidad menor o igual al umbral (5 si no se indica), de menor a mayor cantidad.
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        threshold  path  int  false  "Umbral"
// @Success      200  {array}   dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventories/low-stock/{threshold} [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	threshold := inventory.DefaultLowStockThreshold
	if raw := c.Params("threshold"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return writeError(c, domain.NewValidationError(domain.FieldError{Field: "threshold", Message: "debe ser un entero"}))
		}
		threshold = n
	}
	items, err := h.svc.LowStock(c.UserContext(), threshold)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewItemListResponse(items))
}

// Scan godoc
// @Summary      Buscar item por token escaneado
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        token  path  string  true  "Token prod:<id>"
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventories/scan/{token} [get]
func (h *InventoryHandler) Scan(c *fiber.Ctx) error {
	item, err := h.svc.FindByScanToken(c.UserContext(), c.Params("token"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewItemResponse(item))
}

// GetByID godoc
// @Summary      Obtener item por ID
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del item"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.svc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewItemResponse(item))
}

// Update godoc
// @Summary      Actualizar item
// @Description  Actualización parcial; un cambio de cantidad registra el movimiento correspondiente.
// @Tags         inventories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del item"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventories/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	item, err := h.svc.Update(c.UserContext(), c.Params("id"), in.ToChanges())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewItemResponse(item))
}

// SetQuantity godoc
// @Summary      Fijar cantidad
// @Description  Fija la cantidad; la dirección del movimiento sale del delta real.
// @Tags         inventories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del item"
// @Param        body  body  dto.SetQuantityRequest  true  "Nueva cantidad"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventories/{id}/quantity [patch]
func (h *InventoryHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetQuantityRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	item, err := h.svc.SetQuantity(c.UserContext(), c.Params("id"), *in.Quantity, entity.MovementDirection(in.Type))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewItemResponse(item))
}

// Delete godoc
// @Summary      Eliminar item
// @Description  Borrado físico; el snapshot queda en el historial de eliminados.
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del item"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "item eliminado"})
}

// QR godoc
// @Summary      Imagen QR de escaneo
// @Tags         inventories
// @Security     Bearer
// @Produce      png
// @Param        id   path  string  true  "ID del item"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id}/qr [get]
func (h *InventoryHandler) QR(c *fiber.Ctx) error {
	img, err := h.labels.ScanQR(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Type("png")
	return c.Send(img)
}

// ShareQR godoc
// @Summary      Imagen QR para compartir (payload guardado)
// @Tags         inventories
// @Security     Bearer
// @Produce      png
// @Param        id   path  string  true  "ID del item"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id}/share-qr [get]
func (h *InventoryHandler) ShareQR(c *fiber.Ctx) error {
	img, err := h.labels.ShareQR(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Type("png")
	return c.Send(img)
}

// Label godoc
// @Summary      Etiqueta PDF del item
// @Tags         inventories
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del item"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id}/label [get]
func (h *InventoryHandler) Label(c *fiber.Ctx) error {
	id := c.Params("id")
	doc, err := h.labels.Label(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Type("pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="label-`+id+`.pdf"`)
	return c.Send(doc)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockboard/internal/application/dto"
	"github.com/jhoicas/stockboard/internal/application/usecase"
	"github.com/jhoicas/stockboard/pkg/logger"
)

// ItemHandler maneja las peticiones HTTP del inventario.
type ItemHandler struct {
	uc  *usecase.InventoryUseCase
	log *logger.Logger
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.InventoryUseCase, log *logger.Logger) *ItemHandler {
	return &ItemHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Agregar artículo
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ItemRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	out, err := h.uc.AddItem(in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info().Str("item_id", out.ID).Msg("artículo agregado")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar artículo
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.ItemRequest  true  "Datos completos del artículo"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	out, err := h.uc.EditItem(c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         items
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetItem(c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "artículo no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar artículos
// @Description  Filtra por nombre o categoría; los totales cubren todo el inventario.
// @Tags         items
// @Produce      json
// @Param        q    query  string  false  "Texto a buscar"
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListItems(c.Query("q"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Totales del inventario
// @Tags         items
// @Produce      json
// @Success      200  {object}  dto.ItemTotalsResponse
// @Router       /api/items/summary [get]
func (h *ItemHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Replenishment godoc
// @Summary      Lista de reposición
// @Tags         items
// @Produce      json
// @Success      200  {array}  dto.ReplenishmentSuggestionDTO
// @Router       /api/items/replenishment [get]
func (h *ItemHandler) Replenishment(c *fiber.Ctx) error {
	out, err := h.uc.Replenishment()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Categorías de artículo
// @Tags         items
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/categories [get]
func (h *ItemHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(usecase.Categories())
}

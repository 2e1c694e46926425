package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockboard/internal/application/dto"
	"github.com/jhoicas/stockboard/internal/application/usecase"
	"github.com/jhoicas/stockboard/pkg/logger"
)

// PurchaseHandler maneja las peticiones HTTP de compras.
type PurchaseHandler struct {
	uc  *usecase.PurchaseUseCase
	log *logger.Logger
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *usecase.PurchaseUseCase, log *logger.Logger) *PurchaseHandler {
	return &PurchaseHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar compra
// @Description  El total se calcula a partir de las líneas; las líneas sin nombre se descartan.
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PurchaseRequest  true  "Datos de la compra"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.PurchaseRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	out, err := h.uc.AddPurchase(in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info().Str("purchase_id", out.ID).Str("total", out.Total.StringFixed(2)).Msg("compra registrada")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener compra por ID
// @Tags         purchases
// @Produce      json
// @Param        id   path  string  true  "ID de la compra"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetPurchase(c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "compra no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar compras
// @Description  Filtra por cliente o nombre de artículo; los totales cubren todas las compras.
// @Tags         purchases
// @Produce      json
// @Param        q    query  string  false  "Texto a buscar"
// @Success      200  {object}  dto.PurchaseListResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListPurchases(c.Query("q"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Totales de compras
// @Tags         purchases
// @Produce      json
// @Success      200  {object}  dto.PurchaseTotalsResponse
// @Router       /api/purchases/summary [get]
func (h *PurchaseHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

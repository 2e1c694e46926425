package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockboard/internal/application/usecase"
	"github.com/jhoicas/stockboard/pkg/logger"
)

// ReportHandler descarga de documentos PDF.
type ReportHandler struct {
	uc  *usecase.ReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// PurchaseReceipt godoc
// @Summary      Recibo PDF de una compra
// @Tags         purchases
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la compra"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id}/receipt.pdf [get]
func (h *ReportHandler) PurchaseReceipt(c *fiber.Ctx) error {
	doc, filename, err := h.uc.PurchaseReceipt(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return sendPDF(c, doc, filename)
}

// StockReport godoc
// @Summary      Informe PDF del inventario
// @Tags         items
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/items/report.pdf [get]
func (h *ReportHandler) StockReport(c *fiber.Ctx) error {
	doc, filename, err := h.uc.StockReport(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return sendPDF(c, doc, filename)
}

func sendPDF(c *fiber.Ctx, doc []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(doc)
}

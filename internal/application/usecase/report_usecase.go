package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockboard/internal/domain/inventory"
)

// ReportUseCase genera el recibo PDF de una compra y el informe PDF del stock.
type ReportUseCase struct {
	inventory *InventoryUseCase
	purchases *PurchaseUseCase
	generator DocumentGenerator
	opts      Options
}

// NewReportUseCase construye el caso de uso inyectando el generador de documentos.
func NewReportUseCase(inv *InventoryUseCase, purchases *PurchaseUseCase, generator DocumentGenerator, opts Options) *ReportUseCase {
	return &ReportUseCase{inventory: inv, purchases: purchases, generator: generator, opts: opts.withDefaults()}
}

// PurchaseReceipt devuelve (pdfBytes, filename, err). domain.NotFoundError si la compra no existe.
func (uc *ReportUseCase) PurchaseReceipt(ctx context.Context, id string) ([]byte, string, error) {
	p, err := uc.purchases.Purchase(id)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.generator.PurchaseReceipt(ctx, p)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: recibo: %w", err)
	}
	return doc, fmt.Sprintf("recu_%s.pdf", p.ID), nil
}

// StockReport informe del inventario completo con sus totales, fechado con el reloj inyectado.
func (uc *ReportUseCase) StockReport(ctx context.Context) ([]byte, string, error) {
	items, err := uc.inventory.Items()
	if err != nil {
		return nil, "", fmt.Errorf("listar artículos: %w", err)
	}
	now := uc.opts.Clock()
	doc, err := uc.generator.StockReport(ctx, items, inventory.ComputeTotals(items), now)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: informe de stock: %w", err)
	}
	return doc, fmt.Sprintf("stock_%s.pdf", now.UTC().Format("20060102")), nil
}

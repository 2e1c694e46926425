package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockboard/internal/application/dto"
	"github.com/jhoicas/stockboard/internal/domain/entity"
	"github.com/jhoicas/stockboard/internal/domain/inventory"
	"github.com/jhoicas/stockboard/internal/domain/sales"
)

func stockStatusView(s entity.StockStatus) dto.StatusView {
	return dto.StatusView{Code: string(s), Label: s.Label(), Badge: string(s.Badge())}
}

func clientStatusView(s entity.ClientStatus) dto.StatusView {
	return dto.StatusView{Code: string(s), Label: s.Label(), Badge: string(s.Badge())}
}

func purchaseStatusView(s entity.PurchaseStatus) dto.StatusView {
	return dto.StatusView{Code: string(s), Label: s.Label(), Badge: string(s.Badge())}
}

func toItemResponse(it entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Category:    string(it.Category),
		Quantity:    it.Quantity,
		Price:       dto.Money(it.Price),
		MinStock:    it.MinStock,
		Supplier:    it.Supplier,
		StockValue:  dto.Money(inventory.ItemValue(it)),
		StockStatus: stockStatusView(inventory.StatusOf(it)),
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func toItemTotals(t inventory.Totals) dto.ItemTotalsResponse {
	return dto.ItemTotalsResponse{
		Count:         t.Count,
		TotalQuantity: t.TotalQuantity,
		TotalValue:    dto.Money(t.TotalValue),
		OutOfStock:    t.OutOfStock,
		LowStock:      t.LowStock,
		InStock:       t.InStock,
	}
}

func toClientResponse(c entity.Client, ledger sales.ClientLedger) dto.ClientResponse {
	standing := ledger.Standing(c)
	return dto.ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Company:        c.Company,
		Address:        c.Address,
		TotalPurchases: dto.Money(standing.TotalPurchases),
		LastPurchase:   dto.Date(standing.LastPurchase),
		Status:         clientStatusView(c.Status),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toClientTotals(t sales.ClientTotals) dto.ClientTotalsResponse {
	return dto.ClientTotalsResponse{Count: t.Count, Active: t.Active, TotalRevenue: dto.Money(t.TotalRevenue)}
}

func toPurchaseResponse(p entity.Purchase) dto.PurchaseResponse {
	lines := make([]dto.PurchaseLineResponse, 0, len(p.Lines))
	for _, l := range p.Lines {
		lines = append(lines, dto.PurchaseLineResponse{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: dto.Money(l.UnitPrice),
			Subtotal:  dto.Money(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))),
		})
	}
	return dto.PurchaseResponse{
		ID:         p.ID,
		ClientName: p.ClientName,
		ClientID:   p.ClientID,
		Lines:      lines,
		Total:      dto.Money(p.Total),
		Date:       dto.Date(p.Date),
		Status:     purchaseStatusView(p.Status),
		CreatedAt:  p.CreatedAt,
	}
}

func toPurchaseTotals(t sales.PurchaseTotals) dto.PurchaseTotalsResponse {
	return dto.PurchaseTotalsResponse{
		Count:     t.Count,
		Completed: t.Completed,
		Pending:   t.Pending,
		Cancelled: t.Cancelled,
		Revenue:   dto.Money(t.Revenue),
	}
}

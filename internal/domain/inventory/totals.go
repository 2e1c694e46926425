package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockboard/internal/domain/entity"
)

// Totals agregados de la colección de artículos.
// TotalValue se mantiene con precisión completa; el redondeo a 2 decimales es de presentación.
type Totals struct {
	Count         int
	TotalQuantity int
	TotalValue    decimal.Decimal
	OutOfStock    int
	LowStock      int
	InStock       int
}

// ItemValue valor del stock de un artículo (cantidad × precio).
func ItemValue(item entity.Item) decimal.Decimal {
	return item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// ComputeTotals recorre los artículos una sola vez.
func ComputeTotals(items []entity.Item) Totals {
	t := Totals{Count: len(items), TotalValue: decimal.Zero}
	for _, it := range items {
		t.TotalQuantity += it.Quantity
		t.TotalValue = t.TotalValue.Add(ItemValue(it))
		switch StatusOf(it) {
		case entity.StockOut:
			t.OutOfStock++
		case entity.StockLow:
			t.LowStock++
		case entity.StockIn:
			t.InStock++
		}
	}
	return t
}

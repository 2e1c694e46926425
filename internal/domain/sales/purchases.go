// Package sales contiene las reglas derivadas de clientes y compras: total de línea,
// totales por estado, ingresos (solo compras terminadas) y el libro por cliente.
package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockboard/internal/domain/entity"
)

// LineTotal suma cantidad × precio unitario de cada línea. Es la única fuente del total de una compra.
func LineTotal(lines []entity.PurchaseLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// PurchaseTotals agregados de la colección de compras.
type PurchaseTotals struct {
	Count     int
	Completed int
	Pending   int
	Cancelled int
	Revenue   decimal.Decimal // suma de Total de las compras terminadas
}

// ComputePurchaseTotals ignora pendientes y anuladas para el ingreso.
func ComputePurchaseTotals(purchases []entity.Purchase) PurchaseTotals {
	t := PurchaseTotals{Count: len(purchases), Revenue: decimal.Zero}
	for _, p := range purchases {
		switch p.Status {
		case entity.PurchaseCompleted:
			t.Completed++
			t.Revenue = t.Revenue.Add(p.Total)
		case entity.PurchasePending:
			t.Pending++
		case entity.PurchaseCancelled:
			t.Cancelled++
		}
	}
	return t
}

package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockboard/internal/domain/entity"
)

// DefaultTargetFactor multiplicador del stock mínimo para el stock objetivo.
var DefaultTargetFactor = decimal.NewFromFloat(1.5)

// Suggestion sugerencia de reposición para un artículo bajo el umbral.
type Suggestion struct {
	Item          entity.Item
	Status        entity.StockStatus
	TargetStock   int
	SuggestedQty  int
	EstimatedCost decimal.Decimal // SuggestedQty × precio unitario
	Priority      int             // 1 = más urgente
}

// Replenishment devuelve los artículos en rupture o stock bajo con la cantidad sugerida.
// Objetivo = max(ceil(MinStock × factor), 1). Orden: rupturas primero, luego mayor déficit;
// a igualdad se conserva el orden de la colección.
func Replenishment(items []entity.Item, factor decimal.Decimal) []Suggestion {
	if !factor.IsPositive() {
		factor = DefaultTargetFactor
	}
	out := make([]Suggestion, 0)
	for _, it := range items {
		status := StatusOf(it)
		if status == entity.StockIn {
			continue
		}
		target := int(decimal.NewFromInt(int64(it.MinStock)).Mul(factor).Ceil().IntPart())
		if target < 1 {
			target = 1
		}
		qty := target - it.Quantity
		if qty < 0 {
			qty = 0
		}
		out = append(out, Suggestion{
			Item:          it,
			Status:        status,
			TargetStock:   target,
			SuggestedQty:  qty,
			EstimatedCost: it.Price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.Status == entity.StockOut) != (b.Status == entity.StockOut) {
			return a.Status == entity.StockOut
		}
		return a.Item.MinStock-a.Item.Quantity > b.Item.MinStock-b.Item.Quantity
	})
	for i := range out {
		out[i].Priority = i + 1
	}
	return out
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxQuantity tope de Quantity y MinStock; mantiene las sumas de la colección dentro de int.
const MaxQuantity = 1_000_000_000

// Item representa un artículo del inventario.
// Quantity y MinStock nunca son negativos; el estado de stock se deriva, no se guarda.
type Item struct {
	ID        string
	Name      string
	Category  Category
	Quantity  int
	Price     decimal.Decimal // precio unitario
	MinStock  int             // umbral de stock mínimo
	Supplier  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SameFields compara los campos editables (ignora ID y timestamps).
func (i Item) SameFields(o Item) bool {
	return i.Name == o.Name &&
		i.Category == o.Category &&
		i.Quantity == o.Quantity &&
		i.Price.Equal(o.Price) &&
		i.MinStock == o.MinStock &&
		i.Supplier == o.Supplier
}

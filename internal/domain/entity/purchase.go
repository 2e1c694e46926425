package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseLine es una copia del artículo vendido al momento de la compra (no referencia a Item).
type PurchaseLine struct {
	Name      string
	Quantity  int // >= 1
	UnitPrice decimal.Decimal
}

// Purchase representa una compra de un cliente.
// ClientName es una copia desnormalizada; ClientID es una referencia débil no verificada.
type Purchase struct {
	ID         string
	ClientName string
	ClientID   string
	Lines      []PurchaseLine
	Total      decimal.Decimal // siempre calculado por sales.LineTotal
	Date       time.Time       // día calendario (00:00 UTC)
	Status     PurchaseStatus
	CreatedAt  time.Time
}

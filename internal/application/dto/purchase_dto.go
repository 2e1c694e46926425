package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseLineRequest línea de una compra (copia del artículo, no referencia).
// Las líneas sin nombre se descartan en el caso de uso, así que aquí no se validan.
type PurchaseLineRequest struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// PurchaseRequest entrada para registrar una compra. El total no se acepta: se calcula.
// Date vacío = hoy; Status vacío = completed.
type PurchaseRequest struct {
	ClientName string                `json:"client_name" validate:"max=200"`
	ClientID   string                `json:"client_id"`
	Lines      []PurchaseLineRequest `json:"lines" validate:"dive"`
	Date       string                `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status     string                `json:"status" validate:"omitempty,oneof=completed pending cancelled"`
}

// PurchaseLineResponse línea con su subtotal.
type PurchaseLineResponse struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	ID         string                 `json:"id"`
	ClientName string                 `json:"client_name"`
	ClientID   string                 `json:"client_id"`
	Lines      []PurchaseLineResponse `json:"lines"`
	Total      decimal.Decimal        `json:"total"`
	Date       string                 `json:"date"`
	Status     StatusView             `json:"status"`
	CreatedAt  time.Time              `json:"created_at"`
}

// PurchaseTotalsResponse agregados de la colección de compras. Revenue solo cuenta las terminadas.
type PurchaseTotalsResponse struct {
	Count     int             `json:"count"`
	Completed int             `json:"completed"`
	Pending   int             `json:"pending"`
	Cancelled int             `json:"cancelled"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// PurchaseListResponse compras filtradas más los totales de la colección completa.
type PurchaseListResponse struct {
	Purchases []PurchaseResponse     `json:"purchases"`
	Totals    PurchaseTotalsResponse `json:"totals"`
}

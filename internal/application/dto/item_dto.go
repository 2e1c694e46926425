package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemRequest entrada para crear o reemplazar un artículo.
// Quantity, Price y MinStock valen 0 si se omiten.
type ItemRequest struct {
	Name     string           `json:"name" validate:"max=200"`
	Category string           `json:"category"`
	Quantity *int             `json:"quantity" validate:"omitempty,gte=0,lte=1000000000"`
	Price    *decimal.Decimal `json:"price"`
	MinStock *int             `json:"min_stock" validate:"omitempty,gte=0,lte=1000000000"`
	Supplier string           `json:"supplier" validate:"max=200"`
}

// ItemResponse salida de un artículo con sus valores derivados.
type ItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	MinStock    int             `json:"min_stock"`
	Supplier    string          `json:"supplier"`
	StockValue  decimal.Decimal `json:"stock_value"`
	StockStatus StatusView      `json:"stock_status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ItemTotalsResponse agregados de la colección de artículos.
type ItemTotalsResponse struct {
	Count         int             `json:"count"`
	TotalQuantity int             `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
	OutOfStock    int             `json:"out_of_stock"`
	LowStock      int             `json:"low_stock"`
	InStock       int             `json:"in_stock"`
}

// ItemListResponse artículos filtrados más los totales de la colección completa.
type ItemListResponse struct {
	Items  []ItemResponse     `json:"items"`
	Totals ItemTotalsResponse `json:"totals"`
}

// ReplenishmentSuggestionDTO fila de la lista de reposición.
type ReplenishmentSuggestionDTO struct {
	ItemID        string          `json:"item_id"`
	Name          string          `json:"name"`
	Supplier      string          `json:"supplier"`
	Quantity      int             `json:"quantity"`
	MinStock      int             `json:"min_stock"`
	StockStatus   StatusView      `json:"stock_status"`
	TargetStock   int             `json:"target_stock"`
	SuggestedQty  int             `json:"suggested_qty"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Priority      int             `json:"priority"`
}

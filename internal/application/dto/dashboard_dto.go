package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardOverviewDTO respuesta de GET /api/dashboard/overview.
type DashboardOverviewDTO struct {
	UnitsInStock       int             `json:"units_in_stock"`
	ActiveClients      int             `json:"active_clients"`
	PurchasesThisMonth int             `json:"purchases_this_month"`
	StockValue         decimal.Decimal `json:"stock_value"`
	LowStockItems      int             `json:"low_stock_items"`
	OutOfStockItems    int             `json:"out_of_stock_items"`
	MonthLabel         string          `json:"month_label"` // ej: "janvier 2024"
}

// MonthlySalesDTO ventas terminadas de un mes.
type MonthlySalesDTO struct {
	Month   string          `json:"month"` // YYYY-MM
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// ProductShareDTO participación de un producto en el ingreso.
type ProductShareDTO struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
	Share    decimal.Decimal `json:"share"` // porcentaje
}

// ClientActivityDTO altas y clientes activos de un mes.
type ClientActivityDTO struct {
	Month  string `json:"month"` // YYYY-MM
	New    int    `json:"new"`
	Active int    `json:"active"`
}

// AnalyticsDTO respuesta de GET /api/dashboard/analytics.
type AnalyticsDTO struct {
	Revenue          decimal.Decimal     `json:"revenue"`
	Orders           int                 `json:"orders"`
	AverageBasket    decimal.Decimal     `json:"average_basket"`
	RevenueThisMonth decimal.Decimal     `json:"revenue_this_month"`
	GrowthRate       decimal.Decimal     `json:"growth_rate"` // porcentaje frente al mes anterior
	Monthly          []MonthlySalesDTO   `json:"monthly"`
	TopProducts      []ProductShareDTO   `json:"top_products"`
	ClientActivity   []ClientActivityDTO `json:"client_activity"`
}

// ActivityDTO evento del historial reciente.
type ActivityDTO struct {
	Kind     string    `json:"kind"`
	Label    string    `json:"label"`
	EntityID string    `json:"entity_id"`
	Summary  string    `json:"summary"`
	At       time.Time `json:"at"`
}

package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/stockboard/internal/application/dto"
	"github.com/jhoicas/stockboard/internal/domain/entity"
	"github.com/jhoicas/stockboard/internal/domain/inventory"
	"github.com/jhoicas/stockboard/internal/domain/repository"
	"github.com/jhoicas/stockboard/internal/domain/sales"
)

const (
	defaultTopProducts = 3 // el resto se agrupa en "Autres"
	maxTopProducts     = 20
	defaultActivity    = 10
)

// DashboardUseCase vista general, analítica y actividad reciente.
// Todo se deriva de las colecciones actuales en cada llamada; nada se cachea.
type DashboardUseCase struct {
	items     repository.ItemRepository
	clients   repository.ClientRepository
	purchases repository.PurchaseRepository
	activity  repository.ActivityRepository
	opts      Options
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	items repository.ItemRepository,
	clients repository.ClientRepository,
	purchases repository.PurchaseRepository,
	activity repository.ActivityRepository,
	opts Options,
) *DashboardUseCase {
	return &DashboardUseCase{items: items, clients: clients, purchases: purchases, activity: activity, opts: opts.withDefaults()}
}

// Overview tarjetas de la vista general.
func (uc *DashboardUseCase) Overview() (*dto.DashboardOverviewDTO, error) {
	items, err := uc.items.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: artículos: %w", err)
	}
	clients, err := uc.clients.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", err)
	}
	purchases, err := uc.purchases.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: compras: %w", err)
	}

	now := uc.opts.Clock()
	stock := inventory.ComputeTotals(items)
	clientTotals := sales.ComputeClientTotals(clients, sales.BuildLedger(purchases))

	return &dto.DashboardOverviewDTO{
		UnitsInStock:       stock.TotalQuantity,
		ActiveClients:      clientTotals.Active,
		PurchasesThisMonth: sales.CountInMonth(purchases, now),
		StockValue:         dto.Money(stock.TotalValue),
		LowStockItems:      stock.LowStock,
		OutOfStockItems:    stock.OutOfStock,
		MonthLabel:         monthLabel(now),
	}, nil
}

// Analytics ventas mensuales, top de productos, cesta media, crecimiento y actividad de clientes.
// top <= 0 usa el valor por defecto.
func (uc *DashboardUseCase) Analytics(top int) (*dto.AnalyticsDTO, error) {
	if top <= 0 {
		top = defaultTopProducts
	}
	if top > maxTopProducts {
		top = maxTopProducts
	}
	purchases, err := uc.purchases.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: compras: %w", err)
	}
	clients, err := uc.clients.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", err)
	}

	now := uc.opts.Clock()
	totals := sales.ComputePurchaseTotals(purchases)
	out := &dto.AnalyticsDTO{
		Revenue:          dto.Money(totals.Revenue),
		Orders:           totals.Completed,
		AverageBasket:    dto.Money(sales.AverageBasket(totals)),
		RevenueThisMonth: dto.Money(sales.RevenueInMonth(purchases, now)),
		GrowthRate:       sales.GrowthRate(purchases, now).Round(1),
		Monthly:          []dto.MonthlySalesDTO{},
		TopProducts:      []dto.ProductShareDTO{},
		ClientActivity:   []dto.ClientActivityDTO{},
	}
	for _, m := range sales.SalesByMonth(purchases) {
		out.Monthly = append(out.Monthly, dto.MonthlySalesDTO{Month: m.Month, Revenue: dto.Money(m.Revenue), Orders: m.Orders})
	}
	for _, p := range sales.TopProducts(purchases, top) {
		out.TopProducts = append(out.TopProducts, dto.ProductShareDTO{
			Name:     p.Name,
			Quantity: p.Quantity,
			Revenue:  dto.Money(p.Revenue),
			Share:    p.Share.Round(1),
		})
	}
	for _, a := range sales.ClientActivityByMonth(clients, purchases) {
		out.ClientActivity = append(out.ClientActivity, dto.ClientActivityDTO{Month: a.Month, New: a.New, Active: a.Active})
	}
	return out, nil
}

// RecentActivity últimos eventos, el más reciente primero.
func (uc *DashboardUseCase) RecentActivity(limit int) ([]dto.ActivityDTO, error) {
	if limit <= 0 {
		limit = defaultActivity
	}
	events, err := uc.activity.Recent(limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard: actividad: %w", err)
	}
	out := make([]dto.ActivityDTO, 0, len(events))
	for _, e := range events {
		out = append(out, dto.ActivityDTO{
			Kind:     e.Kind,
			Label:    activityLabel(e.Kind),
			EntityID: e.EntityID,
			Summary:  e.Summary,
			At:       e.At,
		})
	}
	return out, nil
}

func activityLabel(kind string) string {
	switch kind {
	case entity.ActivityItemAdded:
		return "Nouvel article ajouté"
	case entity.ActivityItemUpdated:
		return "Article mis à jour"
	case entity.ActivityClientAdded:
		return "Nouveau client ajouté"
	case entity.ActivityClientUpdated:
		return "Client mis à jour"
	case entity.ActivityPurchaseAdded:
		return "Achat enregistré"
	default:
		return kind
	}
}

// monthLabel devuelve una etiqueta legible del mes en UTC, ej: "janvier 2024".
func monthLabel(t time.Time) string {
	months := [...]string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	}
	y, m, _ := t.UTC().Date()
	return fmt.Sprintf("%s %d", months[m-1], y)
}

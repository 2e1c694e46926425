package sales

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockboard/internal/domain/entity"
)

// OtherProductsLabel agrupa los productos fuera del top.
const OtherProductsLabel = "Autres"

// MonthlySales ingresos y número de pedidos terminados de un mes.
type MonthlySales struct {
	Month   string // YYYY-MM
	Revenue decimal.Decimal
	Orders  int
}

// ProductShare participación de un producto en el ingreso de las compras terminadas.
type ProductShare struct {
	Name     string
	Quantity int
	Revenue  decimal.Decimal
	Share    decimal.Decimal // porcentaje 0–100, precisión completa
}

// SalesByMonth agrupa las compras terminadas por mes, en orden cronológico.
func SalesByMonth(purchases []entity.Purchase) []MonthlySales {
	byMonth := make(map[string]*MonthlySales)
	for _, p := range purchases {
		if p.Status != entity.PurchaseCompleted {
			continue
		}
		key := monthKey(p.Date)
		m, ok := byMonth[key]
		if !ok {
			m = &MonthlySales{Month: key, Revenue: decimal.Zero}
			byMonth[key] = m
		}
		m.Revenue = m.Revenue.Add(p.Total)
		m.Orders++
	}
	out := make([]MonthlySales, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// TopProducts los n productos con mayor ingreso en compras terminadas; el resto se agrupa
// bajo OtherProductsLabel. Empates: primero el nombre visto antes.
func TopProducts(purchases []entity.Purchase, n int) []ProductShare {
	var order []string
	byName := make(map[string]*ProductShare)
	total := decimal.Zero
	for _, p := range purchases {
		if p.Status != entity.PurchaseCompleted {
			continue
		}
		for _, l := range p.Lines {
			rev := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
			s, ok := byName[l.Name]
			if !ok {
				s = &ProductShare{Name: l.Name, Revenue: decimal.Zero}
				byName[l.Name] = s
				order = append(order, l.Name)
			}
			s.Quantity += l.Quantity
			s.Revenue = s.Revenue.Add(rev)
			total = total.Add(rev)
		}
	}
	shares := make([]ProductShare, 0, len(order))
	for _, name := range order {
		shares = append(shares, *byName[name])
	}
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].Revenue.GreaterThan(shares[j].Revenue) })

	if n > 0 && len(shares) > n {
		rest := ProductShare{Name: OtherProductsLabel, Revenue: decimal.Zero}
		for _, s := range shares[n:] {
			rest.Quantity += s.Quantity
			rest.Revenue = rest.Revenue.Add(s.Revenue)
		}
		shares = append(shares[:n:n], rest)
	}
	if total.IsPositive() {
		hundred := decimal.NewFromInt(100)
		for i := range shares {
			shares[i].Share = shares[i].Revenue.Div(total).Mul(hundred)
		}
	}
	return shares
}

// AverageBasket ingreso medio por compra terminada; cero si no hay ninguna.
func AverageBasket(t PurchaseTotals) decimal.Decimal {
	if t.Completed == 0 {
		return decimal.Zero
	}
	return t.Revenue.Div(decimal.NewFromInt(int64(t.Completed)))
}

// CountInMonth número de compras (cualquier estado salvo anuladas) del mes de ref.
func CountInMonth(purchases []entity.Purchase, ref time.Time) int {
	y, m, _ := ref.UTC().Date()
	n := 0
	for _, p := range purchases {
		if p.Status == entity.PurchaseCancelled {
			continue
		}
		py, pm, _ := p.Date.UTC().Date()
		if py == y && pm == m {
			n++
		}
	}
	return n
}

// ClientActivity clientes nuevos y clientes con compras en un mes.
type ClientActivity struct {
	Month  string // YYYY-MM
	New    int    // clientes dados de alta en el mes
	Active int    // clientes distintos con al menos una compra no anulada en el mes
}

func monthKey(t time.Time) string { return t.UTC().Format("2006-01") }

// RevenueInMonth ingreso de las compras terminadas del mes de ref (UTC).
func RevenueInMonth(purchases []entity.Purchase, ref time.Time) decimal.Decimal {
	key := monthKey(ref)
	total := decimal.Zero
	for _, p := range purchases {
		if p.Status == entity.PurchaseCompleted && monthKey(p.Date) == key {
			total = total.Add(p.Total)
		}
	}
	return total
}

// GrowthRate variación porcentual del ingreso del mes de ref respecto al mes anterior.
// Cero si el mes anterior no tuvo ingresos.
func GrowthRate(purchases []entity.Purchase, ref time.Time) decimal.Decimal {
	y, m, _ := ref.UTC().Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	prev := RevenueInMonth(purchases, first.AddDate(0, -1, 0))
	if !prev.IsPositive() {
		return decimal.Zero
	}
	cur := RevenueInMonth(purchases, first)
	return cur.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100))
}

// ClientActivityByMonth serie mensual de altas y clientes activos, en orden cronológico.
// Solo aparecen los meses con alguna alta o alguna compra no anulada.
func ClientActivityByMonth(clients []entity.Client, purchases []entity.Purchase) []ClientActivity {
	byMonth := make(map[string]*ClientActivity)
	get := func(key string) *ClientActivity {
		a, ok := byMonth[key]
		if !ok {
			a = &ClientActivity{Month: key}
			byMonth[key] = a
		}
		return a
	}
	for _, c := range clients {
		get(monthKey(c.CreatedAt)).New++
	}
	seen := make(map[string]map[string]struct{})
	for _, p := range purchases {
		if p.Status == entity.PurchaseCancelled || p.ClientID == "" {
			continue
		}
		key := monthKey(p.Date)
		ids, ok := seen[key]
		if !ok {
			ids = make(map[string]struct{})
			seen[key] = ids
		}
		if _, dup := ids[p.ClientID]; dup {
			continue
		}
		ids[p.ClientID] = struct{}{}
		get(key).Active++
	}
	out := make([]ClientActivity, 0, len(byMonth))
	for _, a := range byMonth {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

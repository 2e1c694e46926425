package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockboard/internal/domain/entity"
)

// ClientStanding valores derivados de un cliente a partir de las compras.
type ClientStanding struct {
	TotalPurchases decimal.Decimal
	LastPurchase   time.Time
}

// ClientLedger agrupa las compras por ClientID.
// TotalPurchases suma solo compras terminadas; LastPurchase considera todo salvo las anuladas.
// Las compras cuyo ClientID no coincide con ningún cliente simplemente no se atribuyen.
type ClientLedger map[string]ClientStanding

// BuildLedger construye el libro a partir de la colección de compras.
func BuildLedger(purchases []entity.Purchase) ClientLedger {
	ledger := make(ClientLedger)
	for _, p := range purchases {
		if p.ClientID == "" || p.Status == entity.PurchaseCancelled {
			continue
		}
		s, ok := ledger[p.ClientID]
		if !ok {
			s.TotalPurchases = decimal.Zero
		}
		if p.Status == entity.PurchaseCompleted {
			s.TotalPurchases = s.TotalPurchases.Add(p.Total)
		}
		if p.Date.After(s.LastPurchase) {
			s.LastPurchase = p.Date
		}
		ledger[p.ClientID] = s
	}
	return ledger
}

// Standing devuelve los valores derivados del cliente. Sin compras, LastPurchase es el día de alta.
func (l ClientLedger) Standing(c entity.Client) ClientStanding {
	s, ok := l[c.ID]
	if !ok {
		s.TotalPurchases = decimal.Zero
	}
	if s.LastPurchase.IsZero() {
		s.LastPurchase = Day(c.CreatedAt)
	}
	return s
}

// ClientTotals agregados de la colección de clientes.
type ClientTotals struct {
	Count        int
	Active       int
	TotalRevenue decimal.Decimal // suma de TotalPurchases de todos los clientes
}

// ComputeClientTotals usa el libro derivado de las compras para TotalRevenue.
func ComputeClientTotals(clients []entity.Client, ledger ClientLedger) ClientTotals {
	t := ClientTotals{Count: len(clients), TotalRevenue: decimal.Zero}
	for _, c := range clients {
		if c.Status == entity.ClientActive {
			t.Active++
		}
		t.TotalRevenue = t.TotalRevenue.Add(ledger.Standing(c).TotalPurchases)
	}
	return t
}

// Day trunca t al día calendario en UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

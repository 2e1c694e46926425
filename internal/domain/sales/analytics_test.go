package sales_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockboard/internal/domain/entity"
	"github.com/jhoicas/stockboard/internal/domain/sales"
)

func TestSalesByMonth(t *testing.T) {
	ps := append(demoPurchases(), entity.Purchase{Total: d("100"), Date: day(2023, 12, 20), Status: entity.PurchaseCompleted})
	got := sales.SalesByMonth(ps)
	require.Len(t, got, 2)
	assert.Equal(t, "2023-12", got[0].Month)
	assert.Equal(t, 1, got[0].Orders)
	assert.Equal(t, "2024-01", got[1].Month)
	assert.Equal(t, 2, got[1].Orders)
	assert.True(t, got[1].Revenue.Equal(d("3699.93")))
}

func TestTopProducts(t *testing.T) {
	got := sales.TopProducts(demoPurchases(), 1)
	require.Len(t, got, 2)

	assert.Equal(t, "Laptop Dell XPS 13", got[0].Name)
	assert.Equal(t, 2, got[0].Quantity, "la compra pendiente no cuenta")
	assert.True(t, got[0].Revenue.Equal(d("2599.98")))

	assert.Equal(t, sales.OtherProductsLabel, got[1].Name)
	assert.Equal(t, 5, got[1].Quantity)
	assert.True(t, got[1].Revenue.Equal(d("1099.95")))

	sum := got[0].Share.Add(got[1].Share)
	assert.True(t, sum.Round(6).Equal(d("100")), "participaciones: %s", sum)
}

func TestTopProducts_SinVentas(t *testing.T) {
	assert.Empty(t, sales.TopProducts(nil, 3))
}

func TestAverageBasket(t *testing.T) {
	avg := sales.AverageBasket(sales.ComputePurchaseTotals(demoPurchases()))
	assert.Equal(t, "1849.97", avg.StringFixed(2))
	assert.True(t, sales.AverageBasket(sales.PurchaseTotals{}).IsZero())
}

func TestCountInMonth(t *testing.T) {
	assert.Equal(t, 3, sales.CountInMonth(demoPurchases(), day(2024, 1, 31)))
	assert.Equal(t, 0, sales.CountInMonth(demoPurchases(), day(2024, 2, 1)))
}

func TestRevenueInMonth(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want string
	}{
		{"mes con ventas", day(2024, 1, 31), "3699.93"},
		{"mes sin ventas", day(2024, 2, 1), "0"},
		{"referencia fuera de UTC", time.Date(2024, 2, 1, 0, 30, 0, 0, time.FixedZone("EET", 2*3600)), "3699.93"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sales.RevenueInMonth(demoPurchases(), tt.ref)
			assert.True(t, got.Equal(d(tt.want)), "ingreso: %s", got)
		})
	}
}

func TestGrowthRate(t *testing.T) {
	dec := entity.Purchase{Total: d("1000"), Date: day(2023, 12, 5), Status: entity.PurchaseCompleted}
	decCancelled := entity.Purchase{Total: d("1000"), Date: day(2023, 12, 5), Status: entity.PurchaseCancelled}
	feb := entity.Purchase{Total: d("500"), Date: day(2024, 2, 3), Status: entity.PurchaseCompleted}

	tests := []struct {
		name      string
		purchases []entity.Purchase
		ref       time.Time
		want      string
	}{
		{"sin mes anterior", demoPurchases(), day(2024, 1, 20), "0.00"},
		{"anterior solo anulada", append(demoPurchases(), decCancelled), day(2024, 1, 20), "0.00"},
		{"crecimiento", append(demoPurchases(), dec), day(2024, 1, 20), "269.99"},
		{"caída", append(demoPurchases(), feb), day(2024, 2, 10), "-86.49"},
		{"mes actual vacío", demoPurchases(), day(2024, 2, 10), "-100.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sales.GrowthRate(tt.purchases, tt.ref)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestClientActivityByMonth(t *testing.T) {
	clients := []entity.Client{
		{ID: "c1", CreatedAt: time.Date(2023, 12, 2, 9, 0, 0, 0, time.UTC)},
		{ID: "c2", CreatedAt: time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)},
		{ID: "c3", CreatedAt: time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC)},
	}
	ps := append(demoPurchases(),
		entity.Purchase{ClientID: "c1", Total: d("10"), Date: day(2024, 1, 25), Status: entity.PurchaseCompleted},
		entity.Purchase{ClientID: "c2", Total: d("10"), Date: day(2024, 2, 2), Status: entity.PurchaseCancelled},
		entity.Purchase{ClientID: "", Total: d("10"), Date: day(2024, 2, 3), Status: entity.PurchaseCompleted},
	)

	got := sales.ClientActivityByMonth(clients, ps)
	assert.Equal(t, []sales.ClientActivity{
		{Month: "2023-12", New: 1, Active: 0},
		{Month: "2024-01", New: 2, Active: 3},
	}, got)
}

func TestClientActivityByMonth_Vacio(t *testing.T) {
	assert.Empty(t, sales.ClientActivityByMonth(nil, nil))
}

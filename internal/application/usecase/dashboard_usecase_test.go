package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverview_Demo(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	got, err := f.dashboard.Overview()
	require.NoError(t, err)
	assert.Equal(t, 26, got.UnitsInStock)
	assert.Equal(t, 2, got.ActiveClients)
	assert.Equal(t, 3, got.PurchasesThisMonth)
	assert.Equal(t, "22199.74", got.StockValue.StringFixed(2))
	assert.Equal(t, 1, got.LowStockItems)
	assert.Equal(t, "janvier 2024", got.MonthLabel)
}

func TestAnalytics_Demo(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	got, err := f.dashboard.Analytics(0)
	require.NoError(t, err)
	assert.Equal(t, "3699.93", got.Revenue.StringFixed(2))
	assert.Equal(t, 2, got.Orders)
	assert.Equal(t, "1849.97", got.AverageBasket.StringFixed(2))

	require.Len(t, got.Monthly, 1)
	assert.Equal(t, "2024-01", got.Monthly[0].Month)

	require.Len(t, got.TopProducts, 3)
	assert.Equal(t, "Laptop Dell XPS 13", got.TopProducts[0].Name)
	assert.Equal(t, "70.3", got.TopProducts[0].Share.StringFixed(1))

	assert.Equal(t, "3699.93", got.RevenueThisMonth.StringFixed(2))
	assert.True(t, got.GrowthRate.IsZero(), "sin ventas en diciembre no hay crecimiento")
	require.Len(t, got.ClientActivity, 1)
	assert.Equal(t, "2024-01", got.ClientActivity[0].Month)
	assert.Equal(t, 3, got.ClientActivity[0].New)
	assert.Equal(t, 3, got.ClientActivity[0].Active, "la compra pendiente también cuenta")
}

func TestAnalytics_MesSiguiente(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	*f.now = time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)

	got, err := f.dashboard.Analytics(0)
	require.NoError(t, err)
	assert.True(t, got.RevenueThisMonth.IsZero())
	assert.Equal(t, "-100.0", got.GrowthRate.StringFixed(1))
	assert.Equal(t, "3699.93", got.Revenue.StringFixed(2))
}

func TestOverview_RelojFueraDeUTC(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	// 2024-02-01 00:30 en UTC+2 sigue siendo enero en UTC.
	*f.now = time.Date(2024, 2, 1, 0, 30, 0, 0, time.FixedZone("EET", 2*3600))

	got, err := f.dashboard.Overview()
	require.NoError(t, err)
	assert.Equal(t, "janvier 2024", got.MonthLabel)
	assert.Equal(t, 3, got.PurchasesThisMonth)
}

func TestRecentActivity(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	got, err := f.dashboard.RecentActivity(4)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "purchase_added", got[0].Kind)
	assert.Equal(t, "Achat enregistré", got[0].Label)
	assert.Equal(t, "Pierre Durand", got[0].Summary)
	assert.Equal(t, "client_added", got[3].Kind)

	all, _ := f.dashboard.RecentActivity(0)
	assert.Len(t, all, 9)
}

package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockboard/internal/domain/entity"
	"github.com/jhoicas/stockboard/internal/domain/inventory"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "2599.98 EUR", money(decimal.RequireFromString("2599.98")))
	assert.Equal(t, "1849.97 EUR", money(decimal.RequireFromString("1849.965")))
	assert.Equal(t, "0.00 EUR", money(decimal.Zero))
}

func TestPurchaseReceipt_GeneraPDF(t *testing.T) {
	p := &entity.Purchase{
		ID:         "0190f5a2-0000-7000-8000-000000000001",
		ClientName: "Jean Dupont",
		Lines: []entity.PurchaseLine{
			{Name: "Laptop Dell XPS 13", Quantity: 2, UnitPrice: decimal.RequireFromString("1299.99")},
		},
		Total:  decimal.RequireFromString("2599.98"),
		Date:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status: entity.PurchaseCompleted,
	}
	doc, err := NewMarotoGenerator("").PurchaseReceipt(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestStockReport_GeneraPDF(t *testing.T) {
	items := []entity.Item{
		{Name: "Laptop Dell XPS 13", Category: entity.CategoryElectronics, Quantity: 15, Price: decimal.RequireFromString("1299.99"), MinStock: 5},
		{Name: "Souris Logitech MX Master", Category: entity.CategoryAccessories, Quantity: 3, Price: decimal.RequireFromString("99.99"), MinStock: 10},
	}
	doc, err := NewMarotoGenerator("Boutique").StockReport(context.Background(), items, inventory.ComputeTotals(items), time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockboard/internal/domain/entity"
	"github.com/jhoicas/stockboard/internal/domain/inventory"
)

func TestReplenishment(t *testing.T) {
	items := []entity.Item{
		{ID: "ok", Quantity: 15, MinStock: 5, Price: decimal.NewFromInt(10)},
		{ID: "bajo", Quantity: 3, MinStock: 10, Price: decimal.RequireFromString("99.99")},
		{ID: "ruptura", Quantity: 0, MinStock: 2, Price: decimal.NewFromInt(5)},
		{ID: "ruptura-sin-minimo", Quantity: 0, MinStock: 0, Price: decimal.NewFromInt(1)},
	}

	got := inventory.Replenishment(items, decimal.Zero)
	require.Len(t, got, 3)

	// Rupturas primero (mayor déficit antes), luego stock bajo.
	assert.Equal(t, "ruptura", got[0].Item.ID)
	assert.Equal(t, 3, got[0].TargetStock)
	assert.Equal(t, 3, got[0].SuggestedQty)
	assert.Equal(t, 1, got[0].Priority)

	assert.Equal(t, "ruptura-sin-minimo", got[1].Item.ID)
	assert.Equal(t, 1, got[1].TargetStock)
	assert.Equal(t, 1, got[1].SuggestedQty)

	assert.Equal(t, "bajo", got[2].Item.ID)
	assert.Equal(t, entity.StockLow, got[2].Status)
	assert.Equal(t, 15, got[2].TargetStock)
	assert.Equal(t, 12, got[2].SuggestedQty)
	assert.True(t, got[2].EstimatedCost.Equal(decimal.RequireFromString("1199.88")))
	assert.Equal(t, 3, got[2].Priority)
}

func TestReplenishment_SinPendientes(t *testing.T) {
	got := inventory.Replenishment([]entity.Item{{Quantity: 9, MinStock: 1}}, decimal.NewFromInt(2))
	assert.Empty(t, got)
}

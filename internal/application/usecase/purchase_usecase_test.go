package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockboard/internal/application/dto"
	"github.com/jhoicas/stockboard/internal/domain"
)

func TestAddPurchase_TotalCalculado(t *testing.T) {
	f := newFixture(t)
	out, err := f.purchases.AddPurchase(dto.PurchaseRequest{
		ClientName: "Jean Dupont",
		Lines: []dto.PurchaseLineRequest{
			{Name: "Laptop Dell XPS 13", Quantity: 2, UnitPrice: dec("1299.99")},
			{Name: "", Quantity: 1, UnitPrice: dec("1000")},
			{Name: "Souris Logitech MX Master", Quantity: 2, UnitPrice: dec("99.99")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "2799.96", out.Total.StringFixed(2))
	assert.Len(t, out.Lines, 2, "las líneas sin nombre se descartan")
	assert.Equal(t, "2599.98", out.Lines[0].Subtotal.StringFixed(2))
	assert.Equal(t, "2024-01-20", out.Date, "fecha por defecto: hoy")
	assert.Equal(t, "completed", out.Status.Code)
	assert.Equal(t, "Terminé", out.Status.Label)
}

func TestAddPurchase_Validacion(t *testing.T) {
	cases := []struct {
		name   string
		in     dto.PurchaseRequest
		fields []string
	}{
		{
			name:   "sin cliente ni líneas",
			in:     dto.PurchaseRequest{Lines: []dto.PurchaseLineRequest{{Name: " "}}},
			fields: []string{"client_name", "lines"},
		},
		{
			name: "cantidad y precio inválidos",
			in: dto.PurchaseRequest{ClientName: "x", Lines: []dto.PurchaseLineRequest{
				{Name: "a", Quantity: 0, UnitPrice: dec("1")},
				{Name: "b", Quantity: 1, UnitPrice: dec("-1")},
			}},
			fields: []string{"lines[0].quantity", "lines[1].unit_price"},
		},
		{
			name: "fecha y estado inválidos",
			in: dto.PurchaseRequest{ClientName: "x", Date: "15/01/2024", Status: "refunded",
				Lines: []dto.PurchaseLineRequest{{Name: "a", Quantity: 1}}},
			fields: []string{"date", "status"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.purchases.AddPurchase(tc.in)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.fields, ve.Fields)

			list, _ := f.purchases.ListPurchases("")
			assert.Empty(t, list.Purchases)
		})
	}
}

func TestListPurchases_TotalesDemo(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	list, err := f.purchases.ListPurchases("")
	require.NoError(t, err)
	assert.Equal(t, 3, list.Totals.Count)
	assert.Equal(t, 2, list.Totals.Completed)
	assert.Equal(t, 1, list.Totals.Pending)
	assert.Equal(t, "3699.93", list.Totals.Revenue.StringFixed(2))

	byItem, _ := f.purchases.ListPurchases("laptop")
	assert.Len(t, byItem.Purchases, 2)
}

func TestPurchase_NoEncontrada(t *testing.T) {
	f := newFixture(t)
	_, err := f.purchases.Purchase("nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	got, err := f.purchases.GetPurchase("nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

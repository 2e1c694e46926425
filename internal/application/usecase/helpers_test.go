package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockboard/internal/application/dto"
	"github.com/jhoicas/stockboard/internal/application/usecase"
	"github.com/jhoicas/stockboard/internal/infrastructure/memory"
)

// fixedNow 2024-01-20 10:00 UTC, mismo mes que las compras de demostración.
var fixedNow = time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)

type recorder struct {
	applied  []string
	rejected []string
}

func (r *recorder) MutationApplied(entity, op string) { r.applied = append(r.applied, entity+":"+op) }
func (r *recorder) MutationRejected(entity, op, reason string) {
	r.rejected = append(r.rejected, entity+":"+op+":"+reason)
}

type fixture struct {
	store     *memory.Store
	obs       *recorder
	now       *time.Time
	inventory *usecase.InventoryUseCase
	clients   *usecase.ClientUseCase
	purchases *usecase.PurchaseUseCase
	dashboard *usecase.DashboardUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	now := fixedNow
	obs := &recorder{}
	opts := usecase.Options{Clock: func() time.Time { return now }, Observer: obs}
	store := memory.NewStore(memory.StoreOptions{ActivityCapacity: 20})
	return &fixture{
		store:     store,
		obs:       obs,
		now:       &now,
		inventory: usecase.NewInventoryUseCase(store.Items, store.Activity, decimal.Zero, opts),
		clients:   usecase.NewClientUseCase(store.Clients, store.Purchases, store.Activity, opts),
		purchases: usecase.NewPurchaseUseCase(store.Purchases, store.Activity, opts),
		dashboard: usecase.NewDashboardUseCase(store.Items, store.Clients, store.Purchases, store.Activity, opts),
	}
}

func (f *fixture) seed(t *testing.T) {
	t.Helper()
	if err := usecase.SeedDemo(f.inventory, f.clients, f.purchases); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func intPtr(v int) *int { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func laptop() dto.ItemRequest {
	return dto.ItemRequest{
		Name: "Laptop Dell XPS 13", Category: "Électronique", Supplier: "Dell France",
		Quantity: intPtr(15), Price: decPtr("1299.99"), MinStock: intPtr(5),
	}
}

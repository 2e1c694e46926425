package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/stockboard/internal/domain/entity"
	"github.com/jhoicas/stockboard/internal/domain/inventory"
	"github.com/jhoicas/stockboard/internal/domain/repository"
)

// Nombres de entidad usados en errores, actividad y métricas.
const (
	entityItem     = "item"
	entityClient   = "client"
	entityPurchase = "purchase"
)

// MutationObserver recibe el resultado de cada mutación (p. ej. métricas Prometheus).
type MutationObserver interface {
	MutationApplied(entity, op string)
	MutationRejected(entity, op, reason string)
}

type nopObserver struct{}

func (nopObserver) MutationApplied(string, string)          {}
func (nopObserver) MutationRejected(string, string, string) {}

// Clock fuente de tiempo inyectable (tests deterministas).
type Clock func() time.Time

// Options dependencias opcionales compartidas por los casos de uso.
type Options struct {
	Clock    Clock
	Observer MutationObserver
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Observer == nil {
		o.Observer = nopObserver{}
	}
	return o
}

// record agrega un evento al historial. La mutación ya fue aplicada; un fallo del historial no la revierte.
func record(repo repository.ActivityRepository, kind, id, summary string, at time.Time) {
	if repo == nil {
		return
	}
	_ = repo.Append(entity.Activity{Kind: kind, EntityID: id, Summary: summary, At: at})
}

// DocumentGenerator genera los documentos PDF (implementado con Maroto en infrastructure/pdf).
type DocumentGenerator interface {
	PurchaseReceipt(ctx context.Context, p *entity.Purchase) ([]byte, error)
	StockReport(ctx context.Context, items []entity.Item, totals inventory.Totals, at time.Time) ([]byte, error)
}

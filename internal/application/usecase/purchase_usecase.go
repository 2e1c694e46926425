package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/stockboard/internal/application/dto"
	"github.com/jhoicas/stockboard/internal/domain"
	"github.com/jhoicas/stockboard/internal/domain/entity"
	"github.com/jhoicas/stockboard/internal/domain/repository"
	"github.com/jhoicas/stockboard/internal/domain/sales"
	"github.com/jhoicas/stockboard/internal/domain/search"
)

// PurchaseUseCase registro y consulta de compras. El total siempre lo calcula sales.LineTotal.
type PurchaseUseCase struct {
	repo     repository.PurchaseRepository
	activity repository.ActivityRepository
	opts     Options
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	repo repository.PurchaseRepository,
	activity repository.ActivityRepository,
	opts Options,
) *PurchaseUseCase {
	return &PurchaseUseCase{repo: repo, activity: activity, opts: opts.withDefaults()}
}

// purchaseFromRequest descarta las líneas sin nombre y exige al menos una con nombre.
func purchaseFromRequest(in dto.PurchaseRequest, now time.Time) (entity.Purchase, error) {
	p := entity.Purchase{
		ClientName: strings.TrimSpace(in.ClientName),
		ClientID:   strings.TrimSpace(in.ClientID),
		Status:     entity.PurchaseStatus(strings.TrimSpace(in.Status)),
		Date:       sales.Day(now),
	}
	if p.Status == "" {
		p.Status = entity.PurchaseCompleted
	}

	var fe domain.FieldErrors
	fe.Require("client_name", p.ClientName)

	for i, l := range in.Lines {
		name := strings.TrimSpace(l.Name)
		if name == "" {
			continue
		}
		fe.Check(fmt.Sprintf("lines[%d].quantity", i), l.Quantity >= 1 && l.Quantity <= entity.MaxQuantity)
		fe.Check(fmt.Sprintf("lines[%d].unit_price", i), !l.UnitPrice.IsNegative())
		p.Lines = append(p.Lines, entity.PurchaseLine{Name: name, Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}
	fe.Check("lines", len(p.Lines) > 0)

	if d := strings.TrimSpace(in.Date); d != "" {
		parsed, err := time.Parse(dto.DateLayout, d)
		fe.Check("date", err == nil)
		if err == nil {
			p.Date = parsed
		}
	}
	fe.Check("status", p.Status.Valid())

	p.Total = sales.LineTotal(p.Lines)
	return p, fe.Err(entityPurchase)
}

// AddPurchase valida, calcula el total y registra la compra.
func (uc *PurchaseUseCase) AddPurchase(in dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	now := uc.opts.Clock()
	p, err := purchaseFromRequest(in, now)
	if err != nil {
		uc.opts.Observer.MutationRejected(entityPurchase, "add", "validation")
		return nil, err
	}
	p.CreatedAt = now
	if _, err := uc.repo.Insert(&p); err != nil {
		return nil, fmt.Errorf("insertar compra: %w", err)
	}
	uc.opts.Observer.MutationApplied(entityPurchase, "add")
	record(uc.activity, entity.ActivityPurchaseAdded, p.ID, p.ClientName, now)
	out := toPurchaseResponse(p)
	return &out, nil
}

// GetPurchase devuelve nil, nil si la compra no existe.
func (uc *PurchaseUseCase) GetPurchase(id string) (*dto.PurchaseResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	out := toPurchaseResponse(*p)
	return &out, nil
}

// Purchase entidad completa (para el recibo PDF). domain.NotFoundError si no existe.
func (uc *PurchaseUseCase) Purchase(id string) (*entity.Purchase, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener compra: %w", err)
	}
	if p == nil {
		return nil, &domain.NotFoundError{Entity: entityPurchase, ID: id}
	}
	return p, nil
}

// ListPurchases filtra por term (cliente o nombre de línea).
func (uc *PurchaseUseCase) ListPurchases(term string) (*dto.PurchaseListResponse, error) {
	purchases, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar compras: %w", err)
	}
	out := &dto.PurchaseListResponse{
		Purchases: []dto.PurchaseResponse{},
		Totals:    toPurchaseTotals(sales.ComputePurchaseTotals(purchases)),
	}
	for p := range search.Purchases(purchases, term) {
		out.Purchases = append(out.Purchases, toPurchaseResponse(p))
	}
	return out, nil
}

// Summary totales de la colección de compras.
func (uc *PurchaseUseCase) Summary() (*dto.PurchaseTotalsResponse, error) {
	purchases, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar compras: %w", err)
	}
	out := toPurchaseTotals(sales.ComputePurchaseTotals(purchases))
	return &out, nil
}

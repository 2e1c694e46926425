package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockboard/internal/application/dto"
	"github.com/jhoicas/stockboard/internal/domain"
	"github.com/jhoicas/stockboard/internal/domain/entity"
	"github.com/jhoicas/stockboard/internal/domain/inventory"
	"github.com/jhoicas/stockboard/internal/domain/repository"
	"github.com/jhoicas/stockboard/internal/domain/search"
)

// InventoryUseCase alta, edición y consulta de artículos. Los agregados se recalculan en cada lectura.
type InventoryUseCase struct {
	repo         repository.ItemRepository
	activity     repository.ActivityRepository
	targetFactor decimal.Decimal
	opts         Options
}

// NewInventoryUseCase construye el caso de uso. targetFactor <= 0 usa inventory.DefaultTargetFactor.
func NewInventoryUseCase(
	repo repository.ItemRepository,
	activity repository.ActivityRepository,
	targetFactor decimal.Decimal,
	opts Options,
) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, activity: activity, targetFactor: targetFactor, opts: opts.withDefaults()}
}

// itemFromRequest valida la entrada y construye el artículo sin ID ni timestamps.
func itemFromRequest(in dto.ItemRequest) (entity.Item, error) {
	item := entity.Item{
		Name:     strings.TrimSpace(in.Name),
		Category: entity.Category(strings.TrimSpace(in.Category)),
		Supplier: strings.TrimSpace(in.Supplier),
		Price:    decimal.Zero,
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.MinStock != nil {
		item.MinStock = *in.MinStock
	}
	if in.Price != nil {
		item.Price = *in.Price
	}

	var fe domain.FieldErrors
	fe.Require("name", item.Name)
	if item.Category == "" {
		fe = append(fe, "category")
	} else {
		fe.Check("category", item.Category.Valid())
	}
	fe.Require("supplier", item.Supplier)
	fe.Check("quantity", item.Quantity >= 0 && item.Quantity <= entity.MaxQuantity)
	fe.Check("price", !item.Price.IsNegative())
	fe.Check("min_stock", item.MinStock >= 0 && item.MinStock <= entity.MaxQuantity)
	return item, fe.Err(entityItem)
}

// AddItem valida, asigna ID y timestamps y agrega el artículo al final de la colección.
func (uc *InventoryUseCase) AddItem(in dto.ItemRequest) (*dto.ItemResponse, error) {
	item, err := itemFromRequest(in)
	if err != nil {
		uc.opts.Observer.MutationRejected(entityItem, "add", "validation")
		return nil, err
	}
	now := uc.opts.Clock()
	item.CreatedAt, item.UpdatedAt = now, now
	if _, err := uc.repo.Insert(&item); err != nil {
		return nil, fmt.Errorf("insertar artículo: %w", err)
	}
	uc.opts.Observer.MutationApplied(entityItem, "add")
	record(uc.activity, entity.ActivityItemAdded, item.ID, item.Name, now)
	out := toItemResponse(item)
	return &out, nil
}

// EditItem reemplaza todos los campos editables del artículo id.
// Si los campos no cambian, UpdatedAt se conserva (edición idempotente).
func (uc *InventoryUseCase) EditItem(id string, in dto.ItemRequest) (*dto.ItemResponse, error) {
	item, err := itemFromRequest(in)
	if err != nil {
		uc.opts.Observer.MutationRejected(entityItem, "edit", "validation")
		return nil, err
	}
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener artículo: %w", err)
	}
	if current == nil {
		uc.opts.Observer.MutationRejected(entityItem, "edit", "not_found")
		return nil, &domain.NotFoundError{Entity: entityItem, ID: id}
	}
	if current.SameFields(item) {
		out := toItemResponse(*current)
		return &out, nil
	}

	item.ID = id
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = uc.opts.Clock()
	if err := uc.repo.Replace(id, &item); err != nil {
		return nil, err
	}
	uc.opts.Observer.MutationApplied(entityItem, "edit")
	record(uc.activity, entity.ActivityItemUpdated, id, item.Name, item.UpdatedAt)
	out := toItemResponse(item)
	return &out, nil
}

// GetItem devuelve nil, nil si el artículo no existe.
func (uc *InventoryUseCase) GetItem(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil || item == nil {
		return nil, err
	}
	out := toItemResponse(*item)
	return &out, nil
}

// ListItems filtra por term (nombre o categoría). Los totales son siempre de la colección completa.
func (uc *InventoryUseCase) ListItems(term string) (*dto.ItemListResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar artículos: %w", err)
	}
	out := &dto.ItemListResponse{
		Items:  []dto.ItemResponse{},
		Totals: toItemTotals(inventory.ComputeTotals(items)),
	}
	for it := range search.Items(items, term) {
		out.Items = append(out.Items, toItemResponse(it))
	}
	return out, nil
}

// Summary totales de la colección de artículos.
func (uc *InventoryUseCase) Summary() (*dto.ItemTotalsResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar artículos: %w", err)
	}
	out := toItemTotals(inventory.ComputeTotals(items))
	return &out, nil
}

// Replenishment lista de reposición priorizada (rupturas primero).
func (uc *InventoryUseCase) Replenishment() ([]dto.ReplenishmentSuggestionDTO, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar artículos: %w", err)
	}
	suggestions := inventory.Replenishment(items, uc.targetFactor)
	out := make([]dto.ReplenishmentSuggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, dto.ReplenishmentSuggestionDTO{
			ItemID:        s.Item.ID,
			Name:          s.Item.Name,
			Supplier:      s.Item.Supplier,
			Quantity:      s.Item.Quantity,
			MinStock:      s.Item.MinStock,
			StockStatus:   stockStatusView(s.Status),
			TargetStock:   s.TargetStock,
			SuggestedQty:  s.SuggestedQty,
			EstimatedCost: dto.Money(s.EstimatedCost),
			Priority:      s.Priority,
		})
	}
	return out, nil
}

// Items instantánea de la colección (para reportes).
func (uc *InventoryUseCase) Items() ([]entity.Item, error) {
	return uc.repo.List()
}

// Categories conjunto cerrado de categorías, en orden de presentación.
func Categories() []string {
	all := entity.AllCategories()
	out := make([]string, 0, len(all))
	for _, c := range all {
		out = append(out, string(c))
	}
	return out
}

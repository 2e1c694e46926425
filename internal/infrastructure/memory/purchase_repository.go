package memory

import (
	"slices"

	"github.com/jhoicas/stockboard/internal/domain/entity"
	"github.com/jhoicas/stockboard/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación en memoria del puerto PurchaseRepository.
// Las líneas se copian para que el llamador no pueda alterar lo almacenado.
type PurchaseRepo struct {
	c *collection[entity.Purchase]
}

// NewPurchaseRepository construye el repositorio; newID nil usa UUIDv7.
func NewPurchaseRepository(newID IDGenerator) *PurchaseRepo {
	return &PurchaseRepo{c: newCollection("purchase", newID,
		func(p *entity.Purchase) *string { return &p.ID },
		func(p entity.Purchase) entity.Purchase {
			p.Lines = slices.Clone(p.Lines)
			return p
		},
	)}
}

func (r *PurchaseRepo) Insert(purchase *entity.Purchase) (string, error) { return r.c.insert(purchase) }
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error)      { return r.c.get(id) }
func (r *PurchaseRepo) List() ([]entity.Purchase, error)                 { return r.c.list() }
func (r *PurchaseRepo) Delete(id string) error                           { return r.c.remove(id) }

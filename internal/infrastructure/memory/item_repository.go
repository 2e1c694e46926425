package memory

import (
	"github.com/jhoicas/stockboard/internal/domain/entity"
	"github.com/jhoicas/stockboard/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación en memoria del puerto ItemRepository.
type ItemRepo struct {
	c *collection[entity.Item]
}

// NewItemRepository construye el repositorio; newID nil usa UUIDv7.
func NewItemRepository(newID IDGenerator) *ItemRepo {
	return &ItemRepo{c: newCollection("item", newID, func(i *entity.Item) *string { return &i.ID }, nil)}
}

func (r *ItemRepo) Insert(item *entity.Item) (string, error)   { return r.c.insert(item) }
func (r *ItemRepo) Replace(id string, item *entity.Item) error { return r.c.replace(id, item) }
func (r *ItemRepo) GetByID(id string) (*entity.Item, error)    { return r.c.get(id) }
func (r *ItemRepo) List() ([]entity.Item, error)               { return r.c.list() }
func (r *ItemRepo) Delete(id string) error                     { return r.c.remove(id) }

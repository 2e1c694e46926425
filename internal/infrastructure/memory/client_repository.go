package memory

import (
	"github.com/jhoicas/stockboard/internal/domain/entity"
	"github.com/jhoicas/stockboard/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación en memoria del puerto ClientRepository.
type ClientRepo struct {
	c *collection[entity.Client]
}

// NewClientRepository construye el repositorio; newID nil usa UUIDv7.
func NewClientRepository(newID IDGenerator) *ClientRepo {
	return &ClientRepo{c: newCollection("client", newID, func(c *entity.Client) *string { return &c.ID }, nil)}
}

func (r *ClientRepo) Insert(client *entity.Client) (string, error)   { return r.c.insert(client) }
func (r *ClientRepo) Replace(id string, client *entity.Client) error { return r.c.replace(id, client) }
func (r *ClientRepo) GetByID(id string) (*entity.Client, error)      { return r.c.get(id) }
func (r *ClientRepo) List() ([]entity.Client, error)                 { return r.c.list() }
func (r *ClientRepo) Delete(id string) error                         { return r.c.remove(id) }

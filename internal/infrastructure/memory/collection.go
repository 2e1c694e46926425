// Package memory implementa los puertos de repositorio sobre colecciones en memoria del proceso.
// Cada colección conserva el orden de inserción y se protege con un RWMutex.
package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/stockboard/internal/domain"
)

// IDGenerator produce identificadores únicos durante la vida del proceso.
type IDGenerator func() (string, error)

// UUIDv7 genera IDs derivados del instante de creación y estrictamente crecientes:
// uuid.NewV7 agrega un contador cuando dos llamadas caen en el mismo milisegundo.
func UUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generar id: %w", err)
	}
	return id.String(), nil
}

// collection lista ordenada de T con índice por ID.
type collection[T any] struct {
	mu     sync.RWMutex
	entity string
	items  []T
	index  map[string]int
	newID  IDGenerator
	idOf   func(*T) *string
	clone  func(T) T
}

func newCollection[T any](entity string, newID IDGenerator, idOf func(*T) *string, clone func(T) T) *collection[T] {
	if newID == nil {
		newID = UUIDv7
	}
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{
		entity: entity,
		index:  make(map[string]int),
		newID:  newID,
		idOf:   idOf,
		clone:  clone,
	}
}

// insert asigna un ID nuevo a v (lo escribe en v) y agrega una copia al final.
func (c *collection[T]) insert(v *T) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, err := c.newID()
	if err != nil {
		return "", err
	}
	if _, exists := c.index[id]; exists {
		return "", fmt.Errorf("%s: id %q duplicado", c.entity, id)
	}
	*c.idOf(v) = id
	c.index[id] = len(c.items)
	c.items = append(c.items, c.clone(*v))
	return id, nil
}

// replace sustituye en la misma posición; nunca agrega.
func (c *collection[T]) replace(id string, v *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return &domain.NotFoundError{Entity: c.entity, ID: id}
	}
	*c.idOf(v) = id
	c.items[pos] = c.clone(*v)
	return nil
}

func (c *collection[T]) get(id string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos, ok := c.index[id]
	if !ok {
		return nil, nil
	}
	v := c.clone(c.items[pos])
	return &v, nil
}

func (c *collection[T]) list() ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	for i, v := range c.items {
		out[i] = c.clone(v)
	}
	return out, nil
}

// remove elimina y reindexa las posiciones siguientes.
func (c *collection[T]) remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return &domain.NotFoundError{Entity: c.entity, ID: id}
	}
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	delete(c.index, id)
	for i := pos; i < len(c.items); i++ {
		c.index[*c.idOf(&c.items[i])] = i
	}
	return nil
}

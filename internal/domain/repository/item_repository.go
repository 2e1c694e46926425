package repository

import "github.com/jhoicas/stockboard/internal/domain/entity"

// ItemRepository define el puerto de almacenamiento para Item (DIP).
type ItemRepository interface {
	// Insert asigna ID al artículo, lo agrega al final de la colección y devuelve el ID.
	Insert(item *entity.Item) (string, error)
	// Replace sustituye el artículo con ese ID conservando su posición; domain.ErrNotFound si no existe.
	Replace(id string, item *entity.Item) error
	// GetByID devuelve nil, nil si el ID no existe.
	GetByID(id string) (*entity.Item, error)
	// List devuelve una copia de la colección en orden de inserción.
	List() ([]entity.Item, error)
	Delete(id string) error
}

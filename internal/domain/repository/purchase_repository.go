package repository

import "github.com/jhoicas/stockboard/internal/domain/entity"

// PurchaseRepository define el puerto de almacenamiento para Purchase (DIP).
// Las compras no se editan una vez registradas.
type PurchaseRepository interface {
	Insert(purchase *entity.Purchase) (string, error)
	GetByID(id string) (*entity.Purchase, error)
	List() ([]entity.Purchase, error)
	Delete(id string) error
}

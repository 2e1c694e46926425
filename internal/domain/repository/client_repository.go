package repository

import "github.com/jhoicas/stockboard/internal/domain/entity"

// ClientRepository define el puerto de almacenamiento para Client (DIP).
type ClientRepository interface {
	Insert(client *entity.Client) (string, error)
	Replace(id string, client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List() ([]entity.Client, error)
	Delete(id string) error
}

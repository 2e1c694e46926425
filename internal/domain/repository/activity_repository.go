package repository

import "github.com/jhoicas/stockboard/internal/domain/entity"

// ActivityRepository historial acotado de mutaciones recientes.
type ActivityRepository interface {
	Append(activity entity.Activity) error
	// Recent devuelve como máximo limit eventos, el más reciente primero.
	Recent(limit int) ([]entity.Activity, error)
}

// Package inventory contiene las reglas derivadas del inventario: estado de stock,
// totales de la colección y lista de reposición. Funciones puras, sin estado.
package inventory

import "github.com/jhoicas/stockboard/internal/domain/entity"

// StockStatusOf clasifica el stock de un artículo.
// quantity == minStock cuenta como stock bajo (límite inclusivo).
func StockStatusOf(quantity, minStock int) entity.StockStatus {
	switch {
	case quantity == 0:
		return entity.StockOut
	case quantity <= minStock:
		return entity.StockLow
	default:
		return entity.StockIn
	}
}

// StatusOf atajo para un artículo.
func StatusOf(item entity.Item) entity.StockStatus {
	return StockStatusOf(item.Quantity, item.MinStock)
}

package entity

import "time"

// Tipos de actividad registrados tras cada mutación exitosa.
const (
	ActivityItemAdded     = "item_added"
	ActivityItemUpdated   = "item_updated"
	ActivityClientAdded   = "client_added"
	ActivityClientUpdated = "client_updated"
	ActivityPurchaseAdded = "purchase_added"
)

// Activity representa un evento del historial reciente del tablero.
type Activity struct {
	Kind     string
	EntityID string
	Summary  string // nombre del artículo/cliente o cliente de la compra
	At       time.Time
}

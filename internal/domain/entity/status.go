package entity

// Badge variante visual asociada a un estado.
type Badge string

// Variantes de badge.
const (
	BadgeDefault     Badge = "default"
	BadgeSecondary   Badge = "secondary"
	BadgeDestructive Badge = "destructive"
)

// StockStatus estado derivado del stock de un artículo.
type StockStatus string

// Estados de stock.
const (
	StockOut StockStatus = "out_of_stock"
	StockLow StockStatus = "low_stock"
	StockIn  StockStatus = "in_stock"
)

// AllStockStatuses devuelve todos los estados de stock.
func AllStockStatuses() []StockStatus { return []StockStatus{StockOut, StockLow, StockIn} }

// Label etiqueta para mostrar.
func (s StockStatus) Label() string {
	switch s {
	case StockOut:
		return "Rupture"
	case StockLow:
		return "Stock faible"
	case StockIn:
		return "En stock"
	}
	panic("entity: estado de stock desconocido: " + string(s))
}

// Badge variante visual.
func (s StockStatus) Badge() Badge {
	switch s {
	case StockOut:
		return BadgeDestructive
	case StockLow:
		return BadgeSecondary
	case StockIn:
		return BadgeDefault
	}
	panic("entity: estado de stock desconocido: " + string(s))
}

// ClientStatus estado de un cliente.
type ClientStatus string

// Estados de cliente.
const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

// AllClientStatuses devuelve todos los estados de cliente.
func AllClientStatuses() []ClientStatus { return []ClientStatus{ClientActive, ClientInactive} }

// Valid indica si s pertenece al conjunto cerrado.
func (s ClientStatus) Valid() bool { return s == ClientActive || s == ClientInactive }

// Label etiqueta para mostrar.
func (s ClientStatus) Label() string {
	switch s {
	case ClientActive:
		return "Actif"
	case ClientInactive:
		return "Inactif"
	}
	panic("entity: estado de cliente desconocido: " + string(s))
}

// Badge variante visual.
func (s ClientStatus) Badge() Badge {
	switch s {
	case ClientActive:
		return BadgeDefault
	case ClientInactive:
		return BadgeSecondary
	}
	panic("entity: estado de cliente desconocido: " + string(s))
}

// PurchaseStatus estado de una compra.
type PurchaseStatus string

// Estados de compra.
const (
	PurchaseCompleted PurchaseStatus = "completed"
	PurchasePending   PurchaseStatus = "pending"
	PurchaseCancelled PurchaseStatus = "cancelled"
)

// AllPurchaseStatuses devuelve todos los estados de compra.
func AllPurchaseStatuses() []PurchaseStatus {
	return []PurchaseStatus{PurchaseCompleted, PurchasePending, PurchaseCancelled}
}

// Valid indica si s pertenece al conjunto cerrado.
func (s PurchaseStatus) Valid() bool {
	switch s {
	case PurchaseCompleted, PurchasePending, PurchaseCancelled:
		return true
	}
	return false
}

// Label etiqueta para mostrar.
func (s PurchaseStatus) Label() string {
	switch s {
	case PurchaseCompleted:
		return "Terminé"
	case PurchasePending:
		return "En attente"
	case PurchaseCancelled:
		return "Annulé"
	}
	panic("entity: estado de compra desconocido: " + string(s))
}

// Badge variante visual.
func (s PurchaseStatus) Badge() Badge {
	switch s {
	case PurchaseCompleted:
		return BadgeDefault
	case PurchasePending:
		return BadgeSecondary
	case PurchaseCancelled:
		return BadgeDestructive
	}
	panic("entity: estado de compra desconocido: " + string(s))
}

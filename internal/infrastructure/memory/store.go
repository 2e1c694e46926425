package memory

// Store agrupa las tres colecciones y el historial de actividad de un único tenant.
type Store struct {
	Items     *ItemRepo
	Clients   *ClientRepo
	Purchases *PurchaseRepo
	Activity  *ActivityRepo
}

// StoreOptions parámetros opcionales del store.
type StoreOptions struct {
	NewID            IDGenerator // nil usa UUIDv7
	ActivityCapacity int
}

// NewStore construye un store vacío.
func NewStore(opts StoreOptions) *Store {
	return &Store{
		Items:     NewItemRepository(opts.NewID),
		Clients:   NewClientRepository(opts.NewID),
		Purchases: NewPurchaseRepository(opts.NewID),
		Activity:  NewActivityRepository(opts.ActivityCapacity),
	}
}

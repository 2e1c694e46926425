package entity

import "time"

// Client representa un cliente. El total comprado y la última compra se derivan
// de las compras (ver sales.ClientLedger); no se almacenan aquí.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Company   string
	Address   string
	Status    ClientStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SameFields compara los campos editables (ignora ID y timestamps).
func (c Client) SameFields(o Client) bool {
	return c.Name == o.Name &&
		c.Email == o.Email &&
		c.Phone == o.Phone &&
		c.Company == o.Company &&
		c.Address == o.Address &&
		c.Status == o.Status
}

package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ClientRequest entrada para crear o reemplazar un cliente. Status vacío = active.
type ClientRequest struct {
	Name    string `json:"name" validate:"max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"max=50"`
	Company string `json:"company" validate:"max=200"`
	Address string `json:"address" validate:"max=300"`
	Status  string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Normalize recorta los espacios de todos los campos antes de validar.
func (r *ClientRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Company = strings.TrimSpace(r.Company)
	r.Address = strings.TrimSpace(r.Address)
	r.Status = strings.TrimSpace(r.Status)
}

// ClientResponse salida de un cliente; TotalPurchases y LastPurchase se derivan de las compras.
type ClientResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Company        string          `json:"company"`
	Address        string          `json:"address"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	LastPurchase   string          `json:"last_purchase"`
	Status         StatusView      `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ClientTotalsResponse agregados de la colección de clientes.
type ClientTotalsResponse struct {
	Count        int             `json:"count"`
	Active       int             `json:"active"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// ClientListResponse clientes filtrados más los totales de la colección completa.
type ClientListResponse struct {
	Clients []ClientResponse     `json:"clients"`
	Totals  ClientTotalsResponse `json:"totals"`
}

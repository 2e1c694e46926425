package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/stockboard/internal/application/dto"
	"github.com/jhoicas/stockboard/internal/domain"
	"github.com/jhoicas/stockboard/internal/domain/entity"
	"github.com/jhoicas/stockboard/internal/domain/repository"
	"github.com/jhoicas/stockboard/internal/domain/sales"
	"github.com/jhoicas/stockboard/internal/domain/search"
)

// ClientUseCase alta, edición y consulta de clientes.
// El total comprado y la última compra se derivan de las compras en cada lectura.
type ClientUseCase struct {
	repo      repository.ClientRepository
	purchases repository.PurchaseRepository
	activity  repository.ActivityRepository
	opts      Options
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(
	repo repository.ClientRepository,
	purchases repository.PurchaseRepository,
	activity repository.ActivityRepository,
	opts Options,
) *ClientUseCase {
	return &ClientUseCase{repo: repo, purchases: purchases, activity: activity, opts: opts.withDefaults()}
}

func clientFromRequest(in dto.ClientRequest) (entity.Client, error) {
	c := entity.Client{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Company: strings.TrimSpace(in.Company),
		Address: strings.TrimSpace(in.Address),
		Status:  entity.ClientStatus(strings.TrimSpace(in.Status)),
	}
	if c.Status == "" {
		c.Status = entity.ClientActive
	}
	var fe domain.FieldErrors
	fe.Require("name", c.Name)
	fe.Require("email", c.Email)
	fe.Check("status", c.Status.Valid())
	return c, fe.Err(entityClient)
}

func (uc *ClientUseCase) ledger() (sales.ClientLedger, error) {
	purchases, err := uc.purchases.List()
	if err != nil {
		return nil, fmt.Errorf("listar compras: %w", err)
	}
	return sales.BuildLedger(purchases), nil
}

func (uc *ClientUseCase) respond(c entity.Client) (*dto.ClientResponse, error) {
	ledger, err := uc.ledger()
	if err != nil {
		return nil, err
	}
	out := toClientResponse(c, ledger)
	return &out, nil
}

// AddClient valida nombre y email, asigna ID y timestamps y agrega el cliente.
func (uc *ClientUseCase) AddClient(in dto.ClientRequest) (*dto.ClientResponse, error) {
	c, err := clientFromRequest(in)
	if err != nil {
		uc.opts.Observer.MutationRejected(entityClient, "add", "validation")
		return nil, err
	}
	now := uc.opts.Clock()
	c.CreatedAt, c.UpdatedAt = now, now
	if _, err := uc.repo.Insert(&c); err != nil {
		return nil, fmt.Errorf("insertar cliente: %w", err)
	}
	uc.opts.Observer.MutationApplied(entityClient, "add")
	record(uc.activity, entity.ActivityClientAdded, c.ID, c.Name, now)
	return uc.respond(c)
}

// EditClient reemplaza los campos editables del cliente id.
func (uc *ClientUseCase) EditClient(id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	c, err := clientFromRequest(in)
	if err != nil {
		uc.opts.Observer.MutationRejected(entityClient, "edit", "validation")
		return nil, err
	}
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if current == nil {
		uc.opts.Observer.MutationRejected(entityClient, "edit", "not_found")
		return nil, &domain.NotFoundError{Entity: entityClient, ID: id}
	}
	if current.SameFields(c) {
		return uc.respond(*current)
	}

	c.ID = id
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = uc.opts.Clock()
	if err := uc.repo.Replace(id, &c); err != nil {
		return nil, err
	}
	uc.opts.Observer.MutationApplied(entityClient, "edit")
	record(uc.activity, entity.ActivityClientUpdated, id, c.Name, c.UpdatedAt)
	return uc.respond(c)
}

// GetClient devuelve nil, nil si el cliente no existe.
func (uc *ClientUseCase) GetClient(id string) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil || c == nil {
		return nil, err
	}
	return uc.respond(*c)
}

// ListClients filtra por term (nombre, email o empresa).
func (uc *ClientUseCase) ListClients(term string) (*dto.ClientListResponse, error) {
	clients, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	ledger, err := uc.ledger()
	if err != nil {
		return nil, err
	}
	out := &dto.ClientListResponse{
		Clients: []dto.ClientResponse{},
		Totals:  toClientTotals(sales.ComputeClientTotals(clients, ledger)),
	}
	for c := range search.Clients(clients, term) {
		out.Clients = append(out.Clients, toClientResponse(c, ledger))
	}
	return out, nil
}

// Summary totales de la colección de clientes.
func (uc *ClientUseCase) Summary() (*dto.ClientTotalsResponse, error) {
	clients, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	ledger, err := uc.ledger()
	if err != nil {
		return nil, err
	}
	out := toClientTotals(sales.ComputeClientTotals(clients, ledger))
	return &out, nil
}

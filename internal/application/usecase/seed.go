package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockboard/internal/application/dto"
)

func intPtr(v int) *int { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// SeedDemo carga el catálogo de demostración (3 artículos, 3 clientes, 3 compras)
// a través de los mismos casos de uso, de modo que se validan y se registran en la actividad.
func SeedDemo(inv *InventoryUseCase, clients *ClientUseCase, purchases *PurchaseUseCase) error {
	items := []dto.ItemRequest{
		{Name: "Laptop Dell XPS 13", Category: "Électronique", Quantity: intPtr(15), Price: decPtr("1299.99"), MinStock: intPtr(5), Supplier: "Dell France"},
		{Name: "Souris Logitech MX Master", Category: "Accessoires", Quantity: intPtr(3), Price: decPtr("99.99"), MinStock: intPtr(10), Supplier: "Logitech"},
		{Name: "Écran Samsung 27\"", Category: "Électronique", Quantity: intPtr(8), Price: decPtr("299.99"), MinStock: intPtr(3), Supplier: "Samsung"},
	}
	for _, in := range items {
		if _, err := inv.AddItem(in); err != nil {
			return fmt.Errorf("seed: artículo %q: %w", in.Name, err)
		}
	}

	seedClients := []dto.ClientRequest{
		{Name: "Jean Dupont", Email: "jean.dupont@email.com", Phone: "01 23 45 67 89", Company: "Tech Solutions", Address: "123 Rue de la Paix, Paris", Status: "active"},
		{Name: "Marie Martin", Email: "marie.martin@email.com", Phone: "01 98 76 54 32", Company: "Digital Corp", Address: "456 Avenue des Champs, Lyon", Status: "active"},
		{Name: "Pierre Durand", Email: "pierre.durand@email.com", Phone: "01 11 22 33 44", Company: "Innovation Ltd", Address: "789 Boulevard Saint-Germain, Marseille", Status: "inactive"},
	}
	clientIDs := make([]string, 0, len(seedClients))
	for _, in := range seedClients {
		c, err := clients.AddClient(in)
		if err != nil {
			return fmt.Errorf("seed: cliente %q: %w", in.Name, err)
		}
		clientIDs = append(clientIDs, c.ID)
	}

	seedPurchases := []dto.PurchaseRequest{
		{
			ClientName: "Jean Dupont", ClientID: clientIDs[0], Date: "2024-01-15", Status: "completed",
			Lines: []dto.PurchaseLineRequest{
				{Name: "Laptop Dell XPS 13", Quantity: 2, UnitPrice: *decPtr("1299.99")},
				{Name: "Souris Logitech MX Master", Quantity: 2, UnitPrice: *decPtr("99.99")},
			},
		},
		{
			ClientName: "Marie Martin", ClientID: clientIDs[1], Date: "2024-01-10", Status: "completed",
			Lines: []dto.PurchaseLineRequest{{Name: "Écran Samsung 27\"", Quantity: 3, UnitPrice: *decPtr("299.99")}},
		},
		{
			ClientName: "Pierre Durand", ClientID: clientIDs[2], Date: "2024-01-08", Status: "pending",
			Lines: []dto.PurchaseLineRequest{{Name: "Laptop Dell XPS 13", Quantity: 1, UnitPrice: *decPtr("1299.99")}},
		},
	}
	for _, in := range seedPurchases {
		if _, err := purchases.AddPurchase(in); err != nil {
			return fmt.Errorf("seed: compra de %q: %w", in.ClientName, err)
		}
	}
	return nil
}

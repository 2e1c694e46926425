package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockboard/internal/domain/entity"
)

// Cada valor de los conjuntos cerrados debe tener etiqueta y badge.
func TestStatus_MapeoExhaustivo(t *testing.T) {
	for _, s := range entity.AllStockStatuses() {
		assert.NotPanics(t, func() { _ = s.Label(); _ = s.Badge() }, string(s))
	}
	for _, s := range entity.AllClientStatuses() {
		assert.True(t, s.Valid())
		assert.NotPanics(t, func() { _ = s.Label(); _ = s.Badge() }, string(s))
	}
	for _, s := range entity.AllPurchaseStatuses() {
		assert.True(t, s.Valid())
		assert.NotPanics(t, func() { _ = s.Label(); _ = s.Badge() }, string(s))
	}
}

func TestStatus_Etiquetas(t *testing.T) {
	assert.Equal(t, "Rupture", entity.StockOut.Label())
	assert.Equal(t, entity.BadgeDestructive, entity.StockOut.Badge())
	assert.Equal(t, "Stock faible", entity.StockLow.Label())
	assert.Equal(t, "Inactif", entity.ClientInactive.Label())
	assert.Equal(t, "En attente", entity.PurchasePending.Label())
	assert.Equal(t, entity.BadgeDestructive, entity.PurchaseCancelled.Badge())
}

func TestStatus_Desconocido(t *testing.T) {
	assert.False(t, entity.PurchaseStatus("refunded").Valid())
	assert.Panics(t, func() { _ = entity.PurchaseStatus("refunded").Label() })
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range entity.AllCategories() {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, entity.Category("Jardin").Valid())
	assert.False(t, entity.Category("électronique").Valid(), "la comparación es exacta")
}

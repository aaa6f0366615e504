package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/supply-manager/supply-admin/internal/domain/entity"
)

func TestStatus_LabelsExhaustivos(t *testing.T) {
	assert.Equal(t, "Activo", entity.StatusActive.Label())
	assert.Equal(t, "Inactivo", entity.StatusInactive.Label())
	assert.Equal(t, "PAUSED", entity.Status("PAUSED").Label(),
		"un valor fuera de la enumeración se muestra crudo")

	assert.True(t, entity.StatusActive.Valid())
	assert.False(t, entity.Status("PAUSED").Valid())
}

func TestRole_LabelsExhaustivos(t *testing.T) {
	assert.Equal(t, "Administrador", entity.RoleAdmin.Label())
	assert.Equal(t, "Gerente", entity.RoleManager.Label())
	assert.Equal(t, "Usuario", entity.RoleUser.Label())
	assert.False(t, entity.Role("ROOT").Valid())
}

// Umbrales inclusivos: ≤10 bajo, 11..50 medio, >50 alto.
func TestProduct_TierPorUmbrales(t *testing.T) {
	cases := []struct {
		stock int
		want  entity.StockTier
	}{
		{0, entity.StockLow},
		{10, entity.StockLow},
		{11, entity.StockMedium},
		{50, entity.StockMedium},
		{51, entity.StockHigh},
		{200, entity.StockHigh},
	}
	for _, tc := range cases {
		p := entity.Product{Stock: tc.stock}
		assert.Equal(t, tc.want, p.Tier(), "stock %d", tc.stock)
	}

	assert.Equal(t, "Bajo", entity.StockLow.Label())
	assert.Equal(t, "Medio", entity.StockMedium.Label())
	assert.Equal(t, "Alto", entity.StockHigh.Label())
}

func TestUser_SoloAdminEstaProtegido(t *testing.T) {
	assert.True(t, entity.User{Username: "admin"}.Protected())
	assert.False(t, entity.User{Username: "mgarcia"}.Protected())
	assert.False(t, entity.User{Username: "Admin"}.Protected(),
		"la protección es por el username exacto reservado")
}

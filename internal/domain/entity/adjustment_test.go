package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-cliente/internal/domain/entity"
)

func TestComputeAmount_SiempreValorAbsoluto(t *testing.T) {
	price := decimal.NewFromFloat(12.50)

	entrada := entity.ComputeAmount(4, price)
	salida := entity.ComputeAmount(-4, price)

	assert.True(t, decimal.NewFromFloat(50).Equal(entrada), "4 · 12.50 = 50")
	assert.True(t, entrada.Equal(salida),
		"el importe no lleva signo: entrada y salida de la misma cantidad valen igual")
}

func TestComputeAmount_QtyCeroEsCero(t *testing.T) {
	got := entity.ComputeAmount(0, decimal.NewFromInt(100))
	assert.True(t, decimal.Zero.Equal(got))
}

func TestIsStockIn(t *testing.T) {
	assert.True(t, entity.AdjustmentTransaction{Qty: 3}.IsStockIn())
	assert.False(t, entity.AdjustmentTransaction{Qty: -3}.IsStockIn())
}

package store_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-cliente/internal/store"
)

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados de carga: BeginLoad adquiere o rechaza
// ──────────────────────────────────────────────────────────────────────────────

func TestBeginProductLoad_RechazaCargaEnVuelo(t *testing.T) {
	s := store.New()

	require.True(t, s.BeginProductLoad(), "desde idle la carga siempre se adquiere")
	assert.Equal(t, store.StateLoading, s.ProductLoadState())

	assert.False(t, s.BeginProductLoad(),
		"una segunda carga concurrente sobre la misma colección debe rechazarse")
}

func TestFinishProductLoad_ExitoYFallo(t *testing.T) {
	s := store.New()

	require.True(t, s.BeginProductLoad())
	s.FinishProductLoad(nil)
	assert.Equal(t, store.StateLoaded, s.ProductLoadState())

	require.True(t, s.BeginProductLoad(), "desde loaded se puede volver a cargar")
	s.FinishProductLoad(errors.New("backend caído"))
	assert.Equal(t, store.StateFailed, s.ProductLoadState())
}

func TestBeginProductLoad_FailedPermiteReintento(t *testing.T) {
	s := store.New()
	require.True(t, s.BeginProductLoad())
	s.FinishProductLoad(errors.New("timeout"))

	assert.True(t, s.BeginProductLoad(),
		"failed no es terminal: un refresh debe poder reintentar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Las dos colecciones cargan de forma independiente
// ──────────────────────────────────────────────────────────────────────────────

func TestCargas_ProductosYAjustesIndependientes(t *testing.T) {
	s := store.New()

	require.True(t, s.BeginProductLoad())
	assert.True(t, s.BeginAdjustmentLoad(),
		"una carga de productos en vuelo no bloquea la de ajustes")

	s.FinishAdjustmentLoad(nil)
	assert.Equal(t, store.StateLoading, s.ProductLoadState(),
		"terminar la carga de ajustes no toca el estado de productos")
	assert.Equal(t, store.StateLoaded, s.AdjustmentLoadState())
}

func TestLoadState_String(t *testing.T) {
	assert.Equal(t, "idle", store.StateIdle.String())
	assert.Equal(t, "loading", store.StateLoading.String())
	assert.Equal(t, "loaded", store.StateLoaded.String())
	assert.Equal(t, "failed", store.StateFailed.String())
}

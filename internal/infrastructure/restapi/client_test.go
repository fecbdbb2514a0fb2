package restapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-cliente/internal/domain"
	"github.com/jhoicas/Inventario-cliente/internal/domain/entity"
	"github.com/jhoicas/Inventario-cliente/internal/infrastructure/restapi"
	"github.com/jhoicas/Inventario-cliente/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// servidor levanta un backend falso y devuelve el cliente apuntando a él.
func servidor(t *testing.T, handler http.HandlerFunc) *restapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return restapi.New(srv.URL, 5*time.Second, testLogger())
}

// ──────────────────────────────────────────────────────────────────────────────
// FetchProducts: envelope, canonización de IDs y fechas
// ──────────────────────────────────────────────────────────────────────────────

func TestFetchProducts_ParseaEnvelopeYCanonizaIDs(t *testing.T) {
	c := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "8", r.URL.Query().Get("limit"))
		// El backend histórico mezcla id numérico y string según la fila.
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": [
				{"id": 42, "title": "Teclado", "sku": "TEC-001", "price": 79.99, "stock": 12,
				 "created_at": "2026-08-01T10:30:00Z"},
				{"id": "abc-7", "title": "Mouse", "sku": "MOU-001", "price": "19.50", "stock": 3,
				 "created_at": "2026-08-02 09:00:00"}
			],
			"pagination": {"hasNextPage": true, "total": 20}
		}`))
	})

	items, hasMore, err := c.FetchProducts(context.Background(), 2, 8)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, hasMore)

	assert.Equal(t, "42", items[0].ID, "un id numérico se canoniza a string")
	assert.Equal(t, "abc-7", items[1].ID, "un id string pasa tal cual")
	assert.True(t, decimal.NewFromFloat(79.99).Equal(items[0].Price))
	assert.True(t, decimal.NewFromFloat(19.50).Equal(items[1].Price),
		"el precio llega como string y se parsea igual")
	assert.Equal(t, 2026, items[0].CreatedAt.Year())
	assert.Equal(t, time.August, items[1].CreatedAt.Month(),
		"la fecha sin zona horaria también se acepta")
}

func TestFetchProducts_UltimaPaginaSinSiguiente(t *testing.T) {
	c := servidor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success": true, "data": [], "pagination": {"hasNextPage": false}}`))
	})

	items, hasMore, err := c.FetchProducts(context.Background(), 3, 8)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.False(t, hasMore)
}

// ──────────────────────────────────────────────────────────────────────────────
// Taxonomía de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestFetchProducts_HTTPErrorConMensajeDelCuerpo(t *testing.T) {
	c := servidor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success": false, "message": "ruta no encontrada"}`))
	})

	_, _, err := c.FetchProducts(context.Background(), 1, 8)
	var apiErr *restapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "ruta no encontrada", apiErr.Message)
}

func TestFetchProducts_HTTPErrorSinCuerpoUtil(t *testing.T) {
	c := servidor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>boom</html>"))
	})

	_, _, err := c.FetchProducts(context.Background(), 1, 8)
	var apiErr *restapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "HTTP error! status: 500", apiErr.Message)
}

func TestFetchProducts_SuccessFalseEsFalloDeNegocio(t *testing.T) {
	c := servidor(t, func(w http.ResponseWriter, _ *http.Request) {
		// 200 pero el backend rechaza la operación en el envelope.
		w.Write([]byte(`{"success": false, "message": "parámetros inválidos", "data": []}`))
	})

	_, _, err := c.FetchProducts(context.Background(), 1, 8)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Contains(t, err.Error(), "parámetros inválidos")
}

func TestFetchProducts_BackendInaccesible(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close() // el backend ya no está

	c := restapi.New(url, 2*time.Second, testLogger())
	_, _, err := c.FetchProducts(context.Background(), 1, 8)

	var apiErr *restapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status, "status 0 marca el fallo de transporte")
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateProduct / UpdateProduct / DeleteProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_DevuelveLaEntidadConfirmada(t *testing.T) {
	c := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Teclado", body["title"])
		assert.Equal(t, "TEC-001", body["sku"])
		assert.InDelta(t, 79.99, body["price"], 0.001, "el precio viaja como número JSON")

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success": true, "data": {"id": 7, "title": "Teclado", "sku": "TEC-001", "price": 79.99, "stock": 12}}`))
	})

	created, err := c.CreateProduct(context.Background(), entity.Product{
		Title: "Teclado",
		SKU:   "TEC-001",
		Price: decimal.NewFromFloat(79.99),
		Stock: 12,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "7", created.ID)
}

func TestCreateProduct_ConfirmadoSinCuerpoDevuelveNil(t *testing.T) {
	c := servidor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success": true, "message": "creado"}`))
	})

	created, err := c.CreateProduct(context.Background(), entity.Product{Title: "X", SKU: "X-1"})
	require.NoError(t, err)
	assert.Nil(t, created, "sin data el caso de uso decide el ID temporal")
}

func TestUpdateProduct_RutaConID(t *testing.T) {
	c := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/products/42", r.URL.Path)
		w.Write([]byte(`{"success": true, "data": {"id": 42, "title": "Teclado v2", "sku": "TEC-001"}}`))
	})

	updated, err := c.UpdateProduct(context.Background(), "42", entity.Product{Title: "Teclado v2", SKU: "TEC-001"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Teclado v2", updated.Title)
}

func TestDeleteProduct_OK(t *testing.T) {
	c := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/products/42", r.URL.Path)
		w.Write([]byte(`{"success": true}`))
	})

	assert.NoError(t, c.DeleteProduct(context.Background(), "42"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes
// ──────────────────────────────────────────────────────────────────────────────

func TestFetchAdjustments_DevuelveTotal(t *testing.T) {
	c := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/adjustment-transaction", r.URL.Path)
		w.Write([]byte(`{
			"success": true,
			"data": [
				{"id": 1, "product_id": 42, "sku": "TEC-001", "title": "Teclado",
				 "price": 50, "qty": -4, "amount": 200, "created_at": "2026-08-10T08:00:00Z"}
			],
			"pagination": {"total": 14}
		}`))
	})

	items, total, err := c.FetchAdjustments(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 14, total)

	a := items[0]
	assert.Equal(t, "1", a.ID)
	assert.Equal(t, "42", a.ProductID, "product_id numérico también se canoniza")
	assert.Equal(t, -4, a.Qty)
	assert.True(t, decimal.NewFromInt(200).Equal(a.Amount))
}

func TestCreateAdjustment_ProductIDNumericoEnElPayload(t *testing.T) {
	c := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// "42" es parseable: viaja como número, que es lo que espera el backend.
		assert.InDelta(t, float64(42), body["product_id"], 0.001)
		assert.InDelta(t, float64(-4), body["qty"], 0.001)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success": true, "data": {"id": 99}}`))
	})

	id, err := c.CreateAdjustment(context.Background(), "42", -4)
	require.NoError(t, err)
	assert.Equal(t, "99", id)
}

func TestCreateAdjustment_ProductIDNoNumericoViajaComoString(t *testing.T) {
	c := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "abc-7", body["product_id"])
		w.Write([]byte(`{"success": true, "data": {"id": "adj-1"}}`))
	})

	id, err := c.CreateAdjustment(context.Background(), "abc-7", 2)
	require.NoError(t, err)
	assert.Equal(t, "adj-1", id)
}

func TestCreateAdjustment_SinIDEnLaRespuesta(t *testing.T) {
	c := servidor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success": true}`))
	})

	id, err := c.CreateAdjustment(context.Background(), "42", 1)
	require.NoError(t, err)
	assert.Empty(t, id, "sin id el caso de uso asigna uno temporal")
}

func TestUpdateAdjustment_OmiteProductID(t *testing.T) {
	c := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/adjustment-transaction/5", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, tiene := body["product_id"]
		assert.False(t, tiene, "la transacción no puede reasignarse a otro producto")
		w.Write([]byte(`{"success": true}`))
	})

	assert.NoError(t, c.UpdateAdjustment(context.Background(), "5", 9))
}

func TestDeleteAdjustment_ErrorDeNegocio(t *testing.T) {
	c := servidor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success": false, "message": "transacción cerrada"}`))
	})

	err := c.DeleteAdjustment(context.Background(), "5")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

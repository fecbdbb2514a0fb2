package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-cliente/internal/application/adjustment"
	"github.com/jhoicas/Inventario-cliente/internal/application/catalog"
	"github.com/jhoicas/Inventario-cliente/internal/domain/entity"
	"github.com/jhoicas/Inventario-cliente/internal/infrastructure/report"
	apphttp "github.com/jhoicas/Inventario-cliente/internal/interfaces/http"
	"github.com/jhoicas/Inventario-cliente/internal/store"
	"github.com/jhoicas/Inventario-cliente/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes del backend remoto
// ──────────────────────────────────────────────────────────────────────────────

type fakeBackend struct {
	products    []entity.Product
	adjustments []entity.AdjustmentTransaction
	total       int
}

func (f *fakeBackend) FetchProducts(_ context.Context, page, limit int) ([]entity.Product, bool, error) {
	return f.products, false, nil
}
func (f *fakeBackend) CreateProduct(_ context.Context, draft entity.Product) (*entity.Product, error) {
	out := draft
	out.ID = "srv-1"
	return &out, nil
}
func (f *fakeBackend) UpdateProduct(_ context.Context, id string, draft entity.Product) (*entity.Product, error) {
	out := draft
	out.ID = id
	return &out, nil
}
func (f *fakeBackend) DeleteProduct(context.Context, string) error { return nil }

func (f *fakeBackend) FetchAdjustments(context.Context, int, int) ([]entity.AdjustmentTransaction, int, error) {
	return f.adjustments, f.total, nil
}
func (f *fakeBackend) CreateAdjustment(context.Context, string, int) (string, error) {
	return "adj-1", nil
}
func (f *fakeBackend) UpdateAdjustment(context.Context, string, int) error { return nil }
func (f *fakeBackend) DeleteAdjustment(context.Context, string) error      { return nil }

var (
	_ catalog.API    = (*fakeBackend)(nil)
	_ adjustment.API = (*fakeBackend)(nil)
)

// buildTestApp construye la app Fiber completa con un backend falso detrás.
func buildTestApp(backend *fakeBackend) (*fiber.App, *store.Store) {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	st := store.New()
	catalogUC := catalog.NewUseCase(backend, st, catalog.Config{}, log)
	adjustmentUC := adjustment.NewUseCase(backend, catalogUC, st, adjustment.Config{PageLimit: 10}, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Store:           st,
		CatalogUC:       catalogUC,
		AdjustmentUC:    adjustmentUC,
		PDF:             report.NewMarotoReportGenerator(),
		AppName:         "inventario-test",
		AdjustPageLimit: 10,
	})
	return app, st
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_LoadYList(t *testing.T) {
	app, _ := buildTestApp(&fakeBackend{products: []entity.Product{
		{ID: "1", Title: "Teclado", SKU: "TEC-001", Price: decimal.NewFromInt(50), Stock: 12},
		{ID: "2", Title: "Mouse", SKU: "MOU-001", Price: decimal.NewFromInt(20), Stock: 3},
	}})

	resp := doJSON(t, app, http.MethodPost, "/api/products/load", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var load struct {
		Count   int    `json:"count"`
		Page    int    `json:"page"`
		HasMore bool   `json:"has_more"`
		State   string `json:"state"`
	}
	decodeBody(t, resp, &load)
	assert.Equal(t, 2, load.Count)
	assert.Equal(t, 1, load.Page)
	assert.False(t, load.HasMore)
	assert.Equal(t, "loaded", load.State)

	// La búsqueda filtra sobre lo ya cargado, sin volver a la red.
	resp = doJSON(t, app, http.MethodGet, "/api/products/?query=mouse", nil)
	var list struct {
		Items []entity.Product `json:"items"`
	}
	decodeBody(t, resp, &list)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "2", list.Items[0].ID)
}

func TestProductos_GetByIDNoCargado404(t *testing.T) {
	app, _ := buildTestApp(&fakeBackend{})
	resp := doJSON(t, app, http.MethodGet, "/api/products/no-existe", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductos_CreateInvalidoDevuelveCampos(t *testing.T) {
	app, st := buildTestApp(&fakeBackend{})

	resp := doJSON(t, app, http.MethodPost, "/api/products/", map[string]any{
		"title": "", "sku": "x", "price": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Code   string            `json:"code"`
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Fields, "title")
	assert.Contains(t, body.Fields, "price")
	assert.Zero(t, st.ProductCount(), "un formulario inválido no muta el store")
}

func TestProductos_CreateValidoPrependeYDevuelve201(t *testing.T) {
	app, st := buildTestApp(&fakeBackend{})

	resp := doJSON(t, app, http.MethodPost, "/api/products/", map[string]any{
		"title": "Teclado Mecánico",
		"sku":   "tec-001",
		"price": 79.99,
		"stock": 15,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created entity.Product
	decodeBody(t, resp, &created)
	assert.Equal(t, "srv-1", created.ID)
	assert.Equal(t, "TEC-001", created.SKU, "el SKU viaja normalizado a mayúsculas")
	assert.Equal(t, 1, st.ProductCount())
}

func TestProductos_Delete204(t *testing.T) {
	app, st := buildTestApp(&fakeBackend{})
	st.ReplaceProducts([]entity.Product{{ID: "1", Title: "Teclado"}})

	resp := doJSON(t, app, http.MethodDelete, "/api/products/1", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Zero(t, st.ProductCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes
// ──────────────────────────────────────────────────────────────────────────────

func TestAjustes_LoadDevuelveTotalYPaginas(t *testing.T) {
	app, _ := buildTestApp(&fakeBackend{
		adjustments: []entity.AdjustmentTransaction{{ID: "a1", Qty: 5}},
		total:       25,
	})

	resp := doJSON(t, app, http.MethodPost, "/api/adjustments/load?page=2", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Page       int `json:"page"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 2, body.Page)
	assert.Equal(t, 25, body.Total)
	assert.Equal(t, 3, body.TotalPages, "25 filas a 10 por página son 3 páginas")
}

func TestAjustes_CreateConSnapshotDelProducto(t *testing.T) {
	app, st := buildTestApp(&fakeBackend{})
	st.ReplaceProducts([]entity.Product{{
		ID: "p1", Title: "Teclado", SKU: "TEC-001", Price: decimal.NewFromInt(50),
	}})

	resp := doJSON(t, app, http.MethodPost, "/api/adjustments/", map[string]any{
		"product_id": "p1",
		"qty":        -4,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created entity.AdjustmentTransaction
	decodeBody(t, resp, &created)
	assert.Equal(t, "adj-1", created.ID)
	assert.Equal(t, "TEC-001", created.SKU)
	assert.Equal(t, "200", created.Amount.String(), "amount = |−4|·50")
}

// ──────────────────────────────────────────────────────────────────────────────
// Modales
// ──────────────────────────────────────────────────────────────────────────────

func TestModales_AbrirYCerrarPorHTTP(t *testing.T) {
	app, st := buildTestApp(&fakeBackend{})
	st.ReplaceProducts([]entity.Product{{ID: "p1", Title: "Teclado"}})

	resp := doJSON(t, app, http.MethodPost, "/api/modals/product", map[string]any{"id": "p1"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var state struct {
		Open            string          `json:"open"`
		SelectedProduct *entity.Product `json:"selected_product"`
	}
	decodeBody(t, resp, &state)
	assert.Equal(t, "product_form", state.Open)
	require.NotNil(t, state.SelectedProduct)
	assert.Equal(t, "p1", state.SelectedProduct.ID)

	resp = doJSON(t, app, http.MethodPost, "/api/modals/close-all", nil)
	decodeBody(t, resp, &state)
	assert.Equal(t, "none", state.Open)
	assert.Nil(t, state.SelectedProduct)
}

func TestModales_ModoInvalido400(t *testing.T) {
	app, _ := buildTestApp(&fakeBackend{})
	resp := doJSON(t, app, http.MethodPost, "/api/modals/adjustment", map[string]any{"mode": "delete"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestModales_ProductoNoCargado404(t *testing.T) {
	app, _ := buildTestApp(&fakeBackend{})
	resp := doJSON(t, app, http.MethodPost, "/api/modals/product", map[string]any{"id": "fantasma"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestStats_AgregadosDelEstadoCargado(t *testing.T) {
	app, st := buildTestApp(&fakeBackend{})
	st.ReplaceProducts([]entity.Product{
		{ID: "1", Title: "Teclado", Price: decimal.NewFromInt(50), Stock: 2},
	})
	st.ReplaceAdjustments([]entity.AdjustmentTransaction{
		{ID: "a1", Qty: 5, Amount: decimal.NewFromInt(250)},
		{ID: "a2", Qty: -1, Amount: decimal.NewFromInt(50)},
	})

	resp := doJSON(t, app, http.MethodGet, "/api/stats", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		TotalInventoryValue string `json:"total_inventory_value"`
		Adjustments         struct {
			Total      int    `json:"total"`
			StockIn    int    `json:"stock_in"`
			StockOut   int    `json:"stock_out"`
			TotalValue string `json:"total_value"`
		} `json:"adjustments"`
		LowStock []entity.Product `json:"low_stock"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "100.00", body.TotalInventoryValue)
	assert.Equal(t, 2, body.Adjustments.Total)
	assert.Equal(t, 5, body.Adjustments.StockIn)
	assert.Equal(t, 1, body.Adjustments.StockOut)
	assert.Equal(t, "300.00", body.Adjustments.TotalValue)
	require.Len(t, body.LowStock, 1, "stock 2 queda bajo el umbral por defecto")
}

func TestReport_DevuelvePDF(t *testing.T) {
	app, st := buildTestApp(&fakeBackend{})
	st.ReplaceProducts([]entity.Product{
		{ID: "1", Title: "Teclado", SKU: "TEC-001", Price: decimal.NewFromInt(50), Stock: 2},
	})

	resp := doJSON(t, app, http.MethodGet, "/api/report.pdf", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventario.pdf")
}

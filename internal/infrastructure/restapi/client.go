// Package restapi adapta el backend REST de inventario a los puertos de la
// capa de aplicación. Todo el parseo de envelopes y la canonización de IDs
// ocurre aquí; hacia dentro solo viajan entidades de dominio.
package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/Inventario-cliente/internal/application/adjustment"
	"github.com/jhoicas/Inventario-cliente/internal/application/catalog"
	"github.com/jhoicas/Inventario-cliente/internal/domain"
	"github.com/jhoicas/Inventario-cliente/internal/domain/entity"
	"github.com/jhoicas/Inventario-cliente/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa los puertos.
var (
	_ catalog.API    = (*Client)(nil)
	_ adjustment.API = (*Client)(nil)
)

const (
	productsPath    = "/products"
	adjustmentsPath = "/adjustment-transaction"
)

// Client cliente del backend REST de inventario sobre resty.
type Client struct {
	http *resty.Client
	log  *logger.Logger
}

// New construye el cliente. timeout aplica por petición; el núcleo no impone
// ninguno propio ni cancela peticiones en vuelo.
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{http: rc, log: log.Component("restapi")}
}

// FetchProducts carga una página del catálogo.
func (c *Client) FetchProducts(ctx context.Context, page, limit int) ([]entity.Product, bool, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("page", fmt.Sprint(page)).
		SetQueryParam("limit", fmt.Sprint(limit)).
		Get(productsPath)
	if err != nil {
		return nil, false, transportError(err)
	}
	var env productListEnvelope
	if err := decodeEnvelope(resp, &env, env.fail); err != nil {
		return nil, false, err
	}

	items := make([]entity.Product, 0, len(env.Data))
	for _, w := range env.Data {
		items = append(items, w.toEntity())
	}
	c.log.Debug().Int("page", page).Int("items", len(items)).
		Bool("has_next", env.Pagination.HasNextPage).Msg("productos recibidos")
	return items, env.Pagination.HasNextPage, nil
}

// CreateProduct da de alta un producto y devuelve la entidad confirmada por
// el backend, o nil si el backend no devolvió cuerpo.
func (c *Client) CreateProduct(ctx context.Context, draft entity.Product) (*entity.Product, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(payloadFromProduct(draft)).
		Post(productsPath)
	if err != nil {
		return nil, transportError(err)
	}
	var env productEnvelope
	if err := decodeEnvelope(resp, &env, env.fail); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, nil
	}
	created := env.Data.toEntity()
	return &created, nil
}

// UpdateProduct reemplaza los datos del producto indicado.
func (c *Client) UpdateProduct(ctx context.Context, id string, draft entity.Product) (*entity.Product, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(payloadFromProduct(draft)).
		Put(productsPath + "/" + id)
	if err != nil {
		return nil, transportError(err)
	}
	var env productEnvelope
	if err := decodeEnvelope(resp, &env, env.fail); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, nil
	}
	updated := env.Data.toEntity()
	return &updated, nil
}

// DeleteProduct elimina el producto indicado.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	resp, err := c.http.R().SetContext(ctx).Delete(productsPath + "/" + id)
	if err != nil {
		return transportError(err)
	}
	var env errorEnvelope
	return decodeEnvelope(resp, &env, func() (bool, string) { return env.Success, env.Message })
}

// FetchAdjustments carga una página de transacciones y el total global.
func (c *Client) FetchAdjustments(ctx context.Context, page, limit int) ([]entity.AdjustmentTransaction, int, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("page", fmt.Sprint(page)).
		SetQueryParam("limit", fmt.Sprint(limit)).
		Get(adjustmentsPath)
	if err != nil {
		return nil, 0, transportError(err)
	}
	var env adjustmentListEnvelope
	if err := decodeEnvelope(resp, &env, env.fail); err != nil {
		return nil, 0, err
	}

	items := make([]entity.AdjustmentTransaction, 0, len(env.Data))
	for _, w := range env.Data {
		items = append(items, w.toEntity())
	}
	c.log.Debug().Int("page", page).Int("items", len(items)).
		Int("total", env.Pagination.Total).Msg("ajustes recibidos")
	return items, env.Pagination.Total, nil
}

// CreateAdjustment registra un ajuste y devuelve el ID asignado ("" si el
// backend confirmó sin id).
func (c *Client) CreateAdjustment(ctx context.Context, productID string, qty int) (string, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(adjustmentPayload{ProductID: productIDForWire(productID), Qty: qty}).
		Post(adjustmentsPath)
	if err != nil {
		return "", transportError(err)
	}
	var env adjustmentCreatedEnvelope
	if err := decodeEnvelope(resp, &env, func() (bool, string) { return env.Success, env.Message }); err != nil {
		return "", err
	}
	if env.Data == nil {
		return "", nil
	}
	return string(env.Data.ID), nil
}

// UpdateAdjustment revisa la cantidad de una transacción existente.
func (c *Client) UpdateAdjustment(ctx context.Context, id string, qty int) error {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(adjustmentPayload{Qty: qty}).
		Put(adjustmentsPath + "/" + id)
	if err != nil {
		return transportError(err)
	}
	var env errorEnvelope
	return decodeEnvelope(resp, &env, func() (bool, string) { return env.Success, env.Message })
}

// DeleteAdjustment elimina la transacción indicada.
func (c *Client) DeleteAdjustment(ctx context.Context, id string) error {
	resp, err := c.http.R().SetContext(ctx).Delete(adjustmentsPath + "/" + id)
	if err != nil {
		return transportError(err)
	}
	var env errorEnvelope
	return decodeEnvelope(resp, &env, func() (bool, string) { return env.Success, env.Message })
}

// ── Helpers de decodificación ─────────────────────────────────────────────────

func (e *productListEnvelope) fail() (bool, string)    { return e.Success, e.Message }
func (e *productEnvelope) fail() (bool, string)        { return e.Success, e.Message }
func (e *adjustmentListEnvelope) fail() (bool, string) { return e.Success, e.Message }

// decodeEnvelope aplica la taxonomía de errores del cliente:
//   - no-2xx            -> *APIError con el status y el message del cuerpo si lo hay
//   - 2xx y success=false -> fallo de negocio (domain.ErrUpstream con el mensaje)
//   - 2xx y success=true  -> nil
func decodeEnvelope(resp *resty.Response, target any, result func() (bool, string)) error {
	if !resp.IsSuccess() {
		msg := fmt.Sprintf("HTTP error! status: %d", resp.StatusCode())
		var body errorEnvelope
		if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
			msg = body.Message
		}
		return &APIError{Status: resp.StatusCode(), Message: msg}
	}
	if err := json.Unmarshal(resp.Body(), target); err != nil {
		return fmt.Errorf("decodificar respuesta del backend: %w", err)
	}
	if ok, msg := result(); !ok {
		if msg == "" {
			msg = "operación rechazada"
		}
		return fmt.Errorf("%w: %s", domain.ErrUpstream, msg)
	}
	return nil
}

func transportError(err error) error {
	return &APIError{Status: 0, Message: err.Error()}
}

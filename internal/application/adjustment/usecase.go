// Package adjustment implementa los casos de uso de las transacciones de
// ajuste de stock: paginación por número de página, alta con snapshot del
// producto, revisión de cantidad y borrado. Igual que en catalog, el store
// solo se muta tras confirmación del backend.
package adjustment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-cliente/internal/application/dto"
	"github.com/jhoicas/Inventario-cliente/internal/domain"
	"github.com/jhoicas/Inventario-cliente/internal/domain/entity"
	"github.com/jhoicas/Inventario-cliente/internal/store"
	"github.com/jhoicas/Inventario-cliente/pkg/logger"
)

// Config parámetros de paginación de la tabla de ajustes.
type Config struct {
	PageLimit int
}

// UseCase casos de uso de transacciones de ajuste.
type UseCase struct {
	api      API
	products ProductSource
	store    *store.Store
	cfg      Config
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(api API, products ProductSource, st *store.Store, cfg Config, log *logger.Logger) *UseCase {
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = 10
	}
	return &UseCase{api: api, products: products, store: st, cfg: cfg, log: log.Component("adjustment")}
}

// LoadPage carga la página indicada de la tabla. A diferencia del catálogo,
// cada página reemplaza a la anterior: la tabla navega por número de página
// sobre el total que reporta el backend.
func (uc *UseCase) LoadPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	if !uc.store.BeginAdjustmentLoad() {
		return domain.ErrLoadInFlight
	}

	items, total, err := uc.api.FetchAdjustments(ctx, page, uc.cfg.PageLimit)
	if err != nil {
		uc.store.FinishAdjustmentLoad(err)
		return err
	}

	uc.store.ReplaceAdjustments(items)
	uc.store.SetAdjustmentTotal(total)
	uc.store.SetAdjustmentPage(page)
	uc.store.FinishAdjustmentLoad(nil)

	uc.log.Debug().Int("page", page).Int("total", total).Msg("página de ajustes cargada")
	return nil
}

// Create valida el formulario, registra el ajuste en el backend y lo prepende
// al store con el snapshot del producto (sku, título, imagen, precio) tomado
// en este momento. Amount se deriva siempre de |qty| y ese precio.
func (uc *UseCase) Create(ctx context.Context, form dto.AdjustmentForm) (*entity.AdjustmentTransaction, error) {
	if err := form.Validate(true); err != nil {
		return nil, err
	}

	product := uc.store.ProductByID(form.ProductID)
	if product == nil {
		// El select del modal puede referirse a un producto aún no cargado en
		// el grid; se recurre al catálogo completo.
		all, err := uc.products.LoadAll(ctx)
		if err != nil {
			return nil, err
		}
		for i := range all {
			if all[i].ID == form.ProductID {
				product = &all[i]
				break
			}
		}
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	id, err := uc.api.CreateAdjustment(ctx, product.ID, form.Qty)
	if err != nil {
		return nil, err
	}
	if id == "" {
		id = uuid.NewString()
	}

	adj := entity.AdjustmentTransaction{
		ID:        id,
		ProductID: product.ID,
		SKU:       product.SKU,
		Title:     product.Title,
		Image:     product.Image,
		Price:     product.Price,
		Qty:       form.Qty,
		Amount:    entity.ComputeAmount(form.Qty, product.Price),
		CreatedAt: time.Now(),
	}
	uc.store.AddAdjustment(adj)
	uc.store.CloseAdjustmentModal()

	uc.log.Info().Str("id", adj.ID).Str("product_id", adj.ProductID).
		Int("qty", adj.Qty).Msg("ajuste creado")
	return &adj, nil
}

// Revise cambia la cantidad de una transacción existente. El producto de la
// transacción es inmutable y Amount se recalcula con el precio del snapshot,
// no con el precio actual del producto.
func (uc *UseCase) Revise(ctx context.Context, id string, form dto.AdjustmentForm) (*entity.AdjustmentTransaction, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := form.Validate(false); err != nil {
		return nil, err
	}

	current := uc.store.AdjustmentByID(id)
	if current == nil {
		return nil, domain.ErrNotFound
	}

	if err := uc.api.UpdateAdjustment(ctx, id, form.Qty); err != nil {
		return nil, err
	}

	amount := entity.ComputeAmount(form.Qty, current.Price)
	qty := form.Qty
	uc.store.PatchAdjustment(id, store.AdjustmentPatch{Qty: &qty, Amount: &amount})
	uc.store.CloseAdjustmentModal()

	uc.log.Info().Str("id", id).Int("qty", qty).Msg("ajuste revisado")
	return uc.store.AdjustmentByID(id), nil
}

// Delete borra la transacción en el backend y en el store, y cierra cualquier
// modal como reset de seguridad.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.api.DeleteAdjustment(ctx, id); err != nil {
		return err
	}
	uc.store.RemoveAdjustment(id)
	uc.store.CloseAllModals()
	uc.log.Info().Str("id", id).Msg("ajuste eliminado")
	return nil
}

// Package catalog implementa los casos de uso del catálogo de productos.
// Aquí vive todo el trabajo falible (validación + red); el store solo se muta
// tras una confirmación del backend, y los errores suben sin tocarlo.
package catalog

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

// Config parámetros de paginación del catálogo.
type Config struct {
	PageLimit    int // tamaño de página del grid (scroll incremental)
	LoadAllLimit int // tamaño de página al cargar el catálogo completo
	LoadAllMax   int // tope de páginas de seguridad en LoadAll
}

func (c *Config) defaults() {
	if c.PageLimit <= 0 {
		c.PageLimit = 8
	}
	if c.LoadAllLimit <= 0 {
		c.LoadAllLimit = 50
	}
	if c.LoadAllMax <= 0 {
		c.LoadAllMax = 10
	}
}

// UseCase casos de uso CRUD y de paginación para productos.
type UseCase struct {
	api   API
	store *store.Store
	cfg   Config
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(api API, st *store.Store, cfg Config, log *logger.Logger) *UseCase {
	cfg.defaults()
	return &UseCase{api: api, store: st, cfg: cfg, log: log.Component("catalog")}
}

// LoadMore carga la siguiente página del scroll incremental: la página 1 si
// la colección está vacía, la siguiente al cursor si quedan páginas. Si no
// quedan, no hace nada.
func (uc *UseCase) LoadMore(ctx context.Context) error {
	if uc.store.ProductCount() == 0 {
		return uc.loadPage(ctx, 1, true)
	}
	page, hasMore := uc.store.ProductCursor()
	if !hasMore {
		return nil
	}
	return uc.loadPage(ctx, page+1, false)
}

// Refresh descarta la colección y recarga desde la página 1.
func (uc *UseCase) Refresh(ctx context.Context) error {
	uc.store.ResetProducts()
	return uc.loadPage(ctx, 1, true)
}

// loadPage adquiere la carga, trae la página y actualiza colección y cursor.
// Devuelve domain.ErrLoadInFlight si otra carga de productos está en curso.
func (uc *UseCase) loadPage(ctx context.Context, page int, reset bool) error {
	if !uc.store.BeginProductLoad() {
		return domain.ErrLoadInFlight
	}

	items, hasMore, err := uc.api.FetchProducts(ctx, page, uc.cfg.PageLimit)
	if err != nil {
		uc.store.FinishProductLoad(err)
		return err
	}

	if reset || page == 1 {
		uc.store.ReplaceProducts(items)
	} else {
		uc.store.AppendProducts(items)
	}
	uc.store.SetProductPage(page)
	uc.store.SetProductHasMore(hasMore)
	uc.store.FinishProductLoad(nil)

	uc.log.Debug().Int("page", page).Int("loaded", uc.store.ProductCount()).Msg("página de productos cargada")
	return nil
}

// LoadAll trae el catálogo completo página a página (para selects), con un
// tope de seguridad de páginas. Reemplaza la colección del store con el
// resultado y lo devuelve.
func (uc *UseCase) LoadAll(ctx context.Context) ([]entity.Product, error) {
	if !uc.store.BeginProductLoad() {
		return uc.store.Products(), domain.ErrLoadInFlight
	}

	all := []entity.Product{}
	for page := 1; page <= uc.cfg.LoadAllMax; page++ {
		items, hasMore, err := uc.api.FetchProducts(ctx, page, uc.cfg.LoadAllLimit)
		if err != nil {
			uc.store.FinishProductLoad(err)
			return nil, err
		}
		all = append(all, items...)
		if !hasMore {
			break
		}
	}

	uc.store.ReplaceProducts(all)
	uc.store.SetProductHasMore(false)
	uc.store.FinishProductLoad(nil)
	return all, nil
}

// Create valida el formulario, da de alta en el backend y prepende el
// producto al store. Si el backend confirma sin devolver la entidad, se usa
// el borrador con un ID temporal hasta el próximo refresh.
func (uc *UseCase) Create(ctx context.Context, form dto.ProductForm) (*entity.Product, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	draft := form.ToEntity()
	created, err := uc.api.CreateProduct(ctx, draft)
	if err != nil {
		return nil, err
	}
	if created == nil {
		draft.ID = uuid.NewString()
		draft.CreatedAt = time.Now()
		created = &draft
	}

	uc.store.AddProduct(*created)
	uc.store.CloseProductModal()
	uc.log.Info().Str("id", created.ID).Str("sku", created.SKU).Msg("producto creado")
	return created, nil
}

// Update valida, actualiza en el backend y parchea la entidad en el store.
func (uc *UseCase) Update(ctx context.Context, id string, form dto.ProductForm) (*entity.Product, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	draft := form.ToEntity()
	updated, err := uc.api.UpdateProduct(ctx, id, draft)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		updated = &draft
	}

	uc.store.PatchProduct(id, store.ProductPatch{
		Title:       &updated.Title,
		SKU:         &updated.SKU,
		Description: &updated.Description,
		Image:       &updated.Image,
		Price:       &updated.Price,
		Stock:       &updated.Stock,
	})
	uc.store.CloseProductModal()
	uc.log.Info().Str("id", id).Msg("producto actualizado")

	if current := uc.store.ProductByID(id); current != nil {
		return current, nil
	}
	// El producto no estaba cargado en la página actual; se devuelve lo confirmado.
	out := *updated
	out.ID = id
	return &out, nil
}

// Delete borra en el backend, quita el producto del store y cierra cualquier
// modal como reset de seguridad tras la acción destructiva.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	uc.store.RemoveProduct(id)
	uc.store.CloseAllModals()
	uc.log.Info().Str("id", id).Msg("producto eliminado")
	return nil
}

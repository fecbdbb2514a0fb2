// Package hydrate dispara la hidratación única del store desde el snapshot
// persistido. El host decide cuándo (normalmente justo tras el arranque);
// hasta entonces el store sirve sus defaults compilados.
package hydrate

import (
	"errors"
	"sync"

	"github.com/jhoicas/Inventario-cliente/internal/domain"
	"github.com/jhoicas/Inventario-cliente/internal/infrastructure/snapshot"
	"github.com/jhoicas/Inventario-cliente/internal/store"
	"github.com/jhoicas/Inventario-cliente/pkg/logger"
)

// Loader puerta al snapshot persistido.
type Loader interface {
	Load() (*snapshot.Snapshot, error)
}

// Hydrator hidrata el store exactamente una vez por proceso.
type Hydrator struct {
	loader Loader
	store  *store.Store
	log    *logger.Logger

	once     sync.Once
	hydrated bool
}

// New construye el hidratador.
func New(loader Loader, st *store.Store, log *logger.Logger) *Hydrator {
	return &Hydrator{loader: loader, store: st, log: log.Component("hydrate")}
}

// Run carga el snapshot y lo fusiona en el store. Llamadas posteriores son
// no-op. Un primer arranque sin snapshot no es un error: el store se queda
// con sus defaults.
func (h *Hydrator) Run() error {
	var err error
	h.once.Do(func() {
		var snap *snapshot.Snapshot
		snap, err = h.loader.Load()
		if err != nil {
			if errors.Is(err, domain.ErrNoSnapshot) {
				h.log.Info().Msg("sin snapshot previo, arrancando con estado vacío")
				err = nil
				h.hydrated = true
			}
			return
		}
		h.store.Hydrate(snap.Products, snap.Adjustments)
		h.hydrated = true
		h.log.Info().Int("products", len(snap.Products)).
			Int("adjustments", len(snap.Adjustments)).Msg("store hidratado desde snapshot")
	})
	return err
}

// Hydrated indica si la hidratación ya ocurrió (con o sin snapshot).
func (h *Hydrator) Hydrated() bool {
	return h.hydrated
}

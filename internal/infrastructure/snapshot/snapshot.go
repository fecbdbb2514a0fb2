// Package snapshot persiste el subconjunto durable del estado del cliente:
// solo las dos colecciones crudas. Nunca se persisten flags de carga, estado
// de modales ni selecciones; esa limpieza la garantiza store.Hydrate al
// fusionar.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/Inventario-cliente/internal/domain"
	"github.com/jhoicas/Inventario-cliente/internal/domain/entity"
	"github.com/jhoicas/Inventario-cliente/pkg/logger"
)

// CurrentVersion versión del esquema del snapshot, para migraciones futuras.
const CurrentVersion = 1

// Snapshot registro persistido: exactamente las dos colecciones más la
// versión del esquema.
type Snapshot struct {
	Version     int                            `json:"version"`
	Products    []entity.Product               `json:"products"`
	Adjustments []entity.AdjustmentTransaction `json:"adjustments"`
}

// FileStore guarda el snapshot en un archivo JSON local.
type FileStore struct {
	path string
	log  *logger.Logger
}

// NewFileStore construye el almacén sobre la ruta indicada.
func NewFileStore(path string, log *logger.Logger) *FileStore {
	return &FileStore{path: path, log: log.Component("snapshot")}
}

// Load lee el snapshot persistido. Devuelve domain.ErrNoSnapshot si el
// archivo no existe todavía (primer arranque).
func (fs *FileStore) Load() (*Snapshot, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNoSnapshot
		}
		return nil, fmt.Errorf("leer snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decodificar snapshot: %w", err)
	}
	return fs.migrate(&snap), nil
}

// migrate adapta snapshots de versiones anteriores al esquema actual.
// Una versión desconocida descarta las colecciones en lugar de arriesgarse a
// hidratar datos con forma incompatible.
func (fs *FileStore) migrate(snap *Snapshot) *Snapshot {
	switch snap.Version {
	case CurrentVersion:
		return snap
	default:
		fs.log.Warn().Int("version", snap.Version).
			Msg("versión de snapshot desconocida, se descartan las colecciones")
		return &Snapshot{Version: CurrentVersion}
	}
}

// Save escribe el snapshot de forma atómica (tmp + rename) para que un corte
// a mitad de escritura no deje un archivo corrupto.
func (fs *FileStore) Save(snap Snapshot) error {
	snap.Version = CurrentVersion
	if snap.Products == nil {
		snap.Products = []entity.Product{}
	}
	if snap.Adjustments == nil {
		snap.Adjustments = []entity.AdjustmentTransaction{}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar snapshot: %w", err)
	}

	dir := filepath.Dir(fs.path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribir snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrar snapshot: %w", err)
	}
	if err := os.Rename(tmpName, fs.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("publicar snapshot: %w", err)
	}

	fs.log.Debug().Int("products", len(snap.Products)).
		Int("adjustments", len(snap.Adjustments)).Msg("snapshot guardado")
	return nil
}

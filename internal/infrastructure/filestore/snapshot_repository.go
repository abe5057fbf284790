package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
	"github.com/jhoicas/warehouse-state/internal/domain"
	"github.com/jhoicas/warehouse-state/internal/domain/entity"
	"github.com/jhoicas/warehouse-state/internal/domain/repository"
	"github.com/jhoicas/warehouse-state/pkg/logger"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// snapshotDocument forma del archivo en disco:
// {"locations": {id: {"location_id": id, "inventory": {item: {"item_id": item, "quantity": n}}}}}
type snapshotDocument struct {
	Locations map[string]locationRecord `json:"locations"`
}

type locationRecord struct {
	LocationID string                `json:"location_id"`
	Inventory  map[string]itemRecord `json:"inventory"`
}

type itemRecord struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Option ajusta el repositorio; pensado para tests que necesitan timeouts cortos.
type Option func(*SnapshotRepo)

// WithLockTimeout reemplaza LockTimeout.
func WithLockTimeout(d time.Duration) Option {
	return func(r *SnapshotRepo) { r.lockTimeout = d }
}

// WithLockRetryInterval reemplaza LockRetryInterval.
func WithLockRetryInterval(d time.Duration) Option {
	return func(r *SnapshotRepo) { r.retryInterval = d }
}

// WithLogger inyecta el logger.
func WithLogger(log *logger.Logger) Option {
	return func(r *SnapshotRepo) { r.log = log }
}

// SnapshotRepo implementación del puerto SnapshotRepository sobre un archivo JSON local.
type SnapshotRepo struct {
	path          string
	lockTimeout   time.Duration
	retryInterval time.Duration
	lock          *LockRunner
	log           *logger.Logger
}

// NewSnapshotRepository construye el adaptador de persistencia para el archivo indicado.
func NewSnapshotRepository(path string, opts ...Option) *SnapshotRepo {
	r := &SnapshotRepo{
		path:          path,
		lockTimeout:   LockTimeout,
		retryInterval: LockRetryInterval,
		log:           logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.lock = NewLockRunner(path+".lock", r.lockTimeout, r.retryInterval)
	return r
}

// Path ruta del snapshot.
func (r *SnapshotRepo) Path() string {
	return r.path
}

// LockPath ruta del archivo de lock.
func (r *SnapshotRepo) LockPath() string {
	return r.lock.Path()
}

// Load lee el snapshot completo. Archivo inexistente o vacío = estado vacío.
func (r *SnapshotRepo) Load() (*entity.Warehouse, error) {
	if empty, err := r.isMissingOrEmpty(); err != nil {
		return nil, err
	} else if empty {
		return entity.NewWarehouse(), nil
	}

	var data []byte
	err := r.lock.Run(func() error {
		b, err := os.ReadFile(r.path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return domain.NewStorageError("failed to read storage file", err)
		}
		data = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return entity.NewWarehouse(), nil
	}

	var doc snapshotDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.NewStorageError("invalid JSON in storage file", err)
	}
	warehouse, err := toWarehouse(doc)
	if err != nil {
		return nil, domain.NewStorageError("invalid data in storage file", err)
	}
	r.log.Debug().Str("path", r.path).Int("locations", len(warehouse.Locations)).Msg("snapshot cargado")
	return warehouse, nil
}

// Save escribe el snapshot completo en un archivo temporal hermano y lo reemplaza de forma atómica.
// Ante cualquier fallo el archivo previo queda intacto.
func (r *SnapshotRepo) Save(warehouse *entity.Warehouse) error {
	data, err := json.MarshalIndent(fromWarehouse(warehouse), "", "  ")
	if err != nil {
		return domain.NewStorageError("failed to serialize state", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.NewStorageError("failed to create storage directory", err)
	}

	err = r.lock.Run(func() error {
		return writeAtomic(r.path, dir, data)
	})
	if err != nil {
		return err
	}
	r.log.Debug().Str("path", r.path).Int("bytes", len(data)).Msg("snapshot guardado")
	return nil
}

func (r *SnapshotRepo) isMissingOrEmpty() (bool, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, domain.NewStorageError("failed to stat storage file", err)
	}
	if info.IsDir() {
		return false, domain.NewStorageError(fmt.Sprintf("%s is a directory", r.path), nil)
	}
	return info.Size() == 0, nil
}

// writeAtomic crea el temporal en dir (mismo filesystem) y lo renombra sobre path.
func writeAtomic(path, dir string, data []byte) error {
	pending, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(dir),
		renameio.WithPermissions(0o644),
	)
	if err != nil {
		return domain.NewStorageError("failed to create temporary file", err)
	}
	defer func() { _ = pending.Cleanup() }()

	if _, err := pending.Write(data); err != nil {
		return domain.NewStorageError("failed to write storage file", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return domain.NewStorageError("failed to replace storage file", err)
	}
	return nil
}

func toWarehouse(doc snapshotDocument) (*entity.Warehouse, error) {
	warehouse := entity.NewWarehouse()
	for key, rec := range doc.Locations {
		loc := &entity.Location{
			LocationID: rec.LocationID,
			Inventory:  make(map[string]entity.InventoryItem, len(rec.Inventory)),
		}
		for itemKey, item := range rec.Inventory {
			loc.Inventory[itemKey] = entity.InventoryItem{ItemID: item.ItemID, Quantity: item.Quantity}
		}
		warehouse.Locations[key] = loc
	}
	if err := warehouse.Validate(); err != nil {
		return nil, err
	}
	return warehouse, nil
}

func fromWarehouse(warehouse *entity.Warehouse) snapshotDocument {
	doc := snapshotDocument{Locations: make(map[string]locationRecord, len(warehouse.Locations))}
	for id, loc := range warehouse.Locations {
		rec := locationRecord{
			LocationID: loc.LocationID,
			Inventory:  make(map[string]itemRecord, len(loc.Inventory)),
		}
		for itemID, item := range loc.Inventory {
			rec.Inventory[itemID] = itemRecord{ItemID: item.ItemID, Quantity: item.Quantity}
		}
		doc.Locations[id] = rec
	}
	return doc
}

package filestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	"github.com/jhoicas/warehouse-state/internal/domain"
)

const (
	// LockTimeout espera máxima para adquirir el lock del snapshot.
	LockTimeout = 10 * time.Second
	// LockRetryInterval intervalo entre intentos de adquisición.
	LockRetryInterval = 50 * time.Millisecond
)

// LockRunner ejecuta callbacks bajo el lock consultivo <archivo>.lock.
// El lock cubre una sola lectura o escritura del archivo, nunca una operación de negocio completa.
type LockRunner struct {
	path          string
	timeout       time.Duration
	retryInterval time.Duration
}

// NewLockRunner construye el runner para el archivo de lock indicado.
func NewLockRunner(lockPath string, timeout, retryInterval time.Duration) *LockRunner {
	return &LockRunner{path: lockPath, timeout: timeout, retryInterval: retryInterval}
}

// Path ruta del archivo de lock.
func (r *LockRunner) Path() string {
	return r.path
}

// Run adquiere el lock con espera acotada, ejecuta fn y libera el lock en todos los caminos.
// Si el lock no se obtiene dentro del timeout devuelve StorageError sin ejecutar fn.
func (r *LockRunner) Run(fn func() error) (err error) {
	fl := flock.New(r.path)

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	locked, lockErr := fl.TryLockContext(ctx, r.retryInterval)
	if lockErr != nil && !errors.Is(lockErr, context.DeadlineExceeded) {
		return domain.NewStorageError("acquire file lock", lockErr)
	}
	if !locked {
		return domain.NewStorageError(
			fmt.Sprintf("failed to acquire file lock within %s", r.timeout), context.DeadlineExceeded)
	}
	defer func() {
		if unlockErr := fl.Unlock(); unlockErr != nil && err == nil {
			err = domain.NewStorageError("release file lock", unlockErr)
		}
	}()

	return fn()
}

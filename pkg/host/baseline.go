package host

import (
	"errors"
	"sync"

	"github.com/goliatone/go-settings/internal/deepclone"
)

// ErrNoStore indicates a Baseline was built without a backing store.
var ErrNoStore = errors.New("host: baseline has no store")

// Store is the surface Baseline needs from an external parameter store.
type Store interface {
	Snapshot() map[string]any
	Restore(values map[string]any) error
}

// Baseline captures a store's state exactly once and restores it on demand.
// It brings the session-start discipline of the built-in registries to
// caller-owned stores.
type Baseline struct {
	store Store
	once  sync.Once
	mu    sync.RWMutex
	saved map[string]any
}

// NewBaseline wraps store without touching it; the snapshot is taken on the
// first Capture or Reset.
func NewBaseline(store Store) *Baseline {
	return &Baseline{store: store}
}

// Capture takes the snapshot when it has not been taken yet and reports
// whether this call took it. Later calls never overwrite the first snapshot.
func (b *Baseline) Capture() bool {
	if b.store == nil {
		return false
	}
	captured := false
	b.once.Do(func() {
		snapshot := deepclone.Values(b.store.Snapshot())
		b.mu.Lock()
		b.saved = snapshot
		b.mu.Unlock()
		captured = true
	})
	return captured
}

// Captured reports whether the snapshot has been taken.
func (b *Baseline) Captured() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.saved != nil
}

// Values returns a detached copy of the captured snapshot, nil before the
// first capture.
func (b *Baseline) Values() map[string]any {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.saved == nil {
		return nil
	}
	return deepclone.Values(b.saved)
}

// Reset restores the captured snapshot, capturing first when needed so that
// wrapping a store and immediately resetting is a no-op.
func (b *Baseline) Reset() error {
	if b.store == nil {
		return ErrNoStore
	}
	b.Capture()
	b.mu.RLock()
	snapshot := deepclone.Values(b.saved)
	b.mu.RUnlock()
	return b.store.Restore(snapshot)
}

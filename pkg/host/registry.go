package host

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-settings/internal/deepclone"
)

// ErrUnknownParameter indicates a write referenced a name absent from the
// registry's key set.
var ErrUnknownParameter = errors.New("host: unknown parameter")

// UnknownParameterError carries the offending name for ErrUnknownParameter.
type UnknownParameterError struct {
	Name string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("host: unknown parameter %q", e.Name)
}

func (e *UnknownParameterError) Unwrap() error { return ErrUnknownParameter }

// Registry is a parameter store with an immutable baseline captured at
// construction. Writes touch existing keys only, so the key set never drifts
// from the baseline and Reset can always restore every parameter.
type Registry struct {
	mu       sync.RWMutex
	names    []string
	baseline map[string]any
	current  map[string]any
}

// NewRegistry seeds a registry and captures its baseline eagerly. The seed
// map is deep-copied so neither caller mutation nor registry writes can
// reach across.
func NewRegistry(seed map[string]any) *Registry {
	names := make([]string, 0, len(seed))
	for name := range seed {
		names = append(names, name)
	}
	sort.Strings(names)
	return &Registry{
		names:    names,
		baseline: deepclone.Values(seed),
		current:  deepclone.Values(seed),
	}
}

// Get returns the current value for name.
func (r *Registry) Get(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.current[name]
	if !ok {
		return nil, false
	}
	return deepclone.Clone(value), true
}

// Set updates an existing parameter. Unknown names are rejected.
func (r *Registry) Set(name string, value any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.current[name]; !ok {
		return &UnknownParameterError{Name: name}
	}
	r.current[name] = deepclone.Clone(value)
	return nil
}

// Values returns a detached copy of the current parameter map.
func (r *Registry) Values() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return deepclone.Values(r.current)
}

// Baseline returns a detached copy of the session-start values.
func (r *Registry) Baseline() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return deepclone.Values(r.baseline)
}

// Names returns the parameter names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of parameters.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Reset restores every parameter to its session-start value.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = deepclone.Values(r.baseline)
}

// ResetKey restores a single parameter to its session-start value.
func (r *Registry) ResetKey(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	value, ok := r.baseline[name]
	if !ok {
		return &UnknownParameterError{Name: name}
	}
	r.current[name] = deepclone.Clone(value)
	return nil
}

// Snapshot returns the current values. It satisfies the Store contract so a
// Registry can sit behind a Baseline.
func (r *Registry) Snapshot() map[string]any {
	return r.Values()
}

// Restore writes values over the current state. Every key must already exist
// in the registry; on error nothing is written.
func (r *Registry) Restore(values map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name := range values {
		if _, ok := r.current[name]; !ok {
			return &UnknownParameterError{Name: name}
		}
	}
	for name, value := range values {
		r.current[name] = deepclone.Clone(value)
	}
	return nil
}

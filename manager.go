package settings

import (
	"sync"

	"github.com/goliatone/go-settings/pkg/activity"
	"github.com/google/uuid"
)

// Manager is the callable handle over one option store. Construct with New;
// the zero value is not usable. Copying a *Manager shares the store, so every
// holder of the pointer observes the same values; Clone produces a detached
// manager with its own store.
type Manager struct {
	mu         sync.RWMutex
	store      *optionStore
	cfg        managerConfig
	id         string
	clonedFrom string
	revision   uint64
}

// ID returns the manager's unique identity.
func (m *Manager) ID() string {
	return m.id
}

// ClonedFrom returns the parent manager's ID when this manager came from
// Clone, empty otherwise.
func (m *Manager) ClonedFrom() string {
	return m.clonedFrom
}

// Revision returns the count of applied mutations. Revisions start at 1 and
// bump on every successful set or reset.
func (m *Manager) Revision() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.revision
}

// Len returns the number of options in the store.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.size()
}

// Names returns the option names in creation order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.orderedNames()
}

// Has reports whether name exists in the store.
func (m *Manager) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.has(name)
}

// Get returns the current value for name, detached from the store.
func (m *Manager) Get(name string) (any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.get(name)
}

// Values returns current values for the requested names in request order.
// With no names it returns every value in creation order.
func (m *Manager) Values(names ...string) ([]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(names) == 0 {
		names = m.store.names
	}
	out := make([]any, 0, len(names))
	for _, name := range names {
		value, err := m.store.get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}

// All returns a detached copy of the current option map.
func (m *Manager) All() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.snapshot()
}

// Pairs returns the current values in creation order, detached.
func (m *Manager) Pairs() []Pair {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.pairs()
}

// Default returns the factory value for name.
func (m *Manager) Default(name string) (any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.defaultValue(name)
}

// RuleFor returns the rule attached to name, if any.
func (m *Manager) RuleFor(name string) (Rule, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.ruleFor(name)
}

// Set applies the updates atomically. Every name must exist and every value
// must satisfy its rule against the proposed post-call state; on error no
// value changes. Activity hooks observe the change after it lands.
func (m *Manager) Set(updates ...Pair) error {
	if len(updates) == 0 {
		return nil
	}
	names := updateNames(updates)

	m.mu.Lock()
	oldValues := m.valuesFor(names)
	if err := m.store.apply(updates); err != nil {
		m.mu.Unlock()
		return err
	}
	m.revision++
	revision := m.revision
	newValues := m.valuesFor(names)
	m.mu.Unlock()

	m.emitActivity(activity.BuildSettingsUpdatedEvent(activity.EventInput{
		ActorID:   m.cfg.actorID,
		ManagerID: m.id,
		Revision:  revision,
		Options:   names,
		OldValues: oldValues,
		NewValues: newValues,
	}))
	return nil
}

// SetValue updates a single option.
func (m *Manager) SetValue(name string, value any) error {
	return m.Set(Pair{Name: name, Value: value})
}

// Reset restores every option to its default value. Defaults were validated
// at construction, so reset cannot fail.
func (m *Manager) Reset() {
	m.mu.Lock()
	m.store.reset()
	m.revision++
	revision := m.revision
	names := m.store.orderedNames()
	m.mu.Unlock()

	m.emitActivity(activity.BuildSettingsResetEvent(activity.EventInput{
		ActorID:   m.cfg.actorID,
		ManagerID: m.id,
		Revision:  revision,
		Options:   names,
	}))
}

// Clone returns an independent manager seeded from this one, with overrides
// applied atomically on top. Overrides must name existing options and satisfy
// their rules. The parent is untouched even when cloning fails.
func (m *Manager) Clone(overrides ...Pair) (*Manager, error) {
	m.mu.RLock()
	store := m.store.clone()
	cfg := m.cfg
	m.mu.RUnlock()

	if err := store.apply(overrides); err != nil {
		return nil, err
	}
	child := &Manager{
		store:      store,
		cfg:        cfg,
		id:         uuid.NewString(),
		clonedFrom: m.id,
		revision:   1,
	}
	child.emitActivity(activity.BuildSettingsClonedEvent(activity.EventInput{
		ActorID:    cfg.actorID,
		ManagerID:  child.id,
		ClonedFrom: m.id,
		Revision:   child.revision,
		Options:    updateNames(overrides),
	}))
	return child, nil
}

// valuesFor snapshots current values for names; callers hold the lock.
func (m *Manager) valuesFor(names []string) map[string]any {
	out := make(map[string]any, len(names))
	for _, name := range names {
		value, err := m.store.get(name)
		if err != nil {
			continue
		}
		out[name] = value
	}
	return out
}

// updateNames collects the distinct names in call order.
func updateNames(updates []Pair) []string {
	if len(updates) == 0 {
		return nil
	}
	names := make([]string, 0, len(updates))
	seen := make(map[string]bool, len(updates))
	for _, update := range updates {
		if seen[update.Name] {
			continue
		}
		seen[update.Name] = true
		names = append(names, update.Name)
	}
	return names
}

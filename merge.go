package settings

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/goliatone/go-settings/internal/deepclone"
	"github.com/goliatone/go-settings/pkg/activity"
	"github.com/peterbourgon/mergemap"
)

// MergeJSON applies a JSON object of overrides atomically. Top-level keys
// must name existing options; map-valued overrides merge recursively into
// the current map value instead of replacing it wholesale. Every resulting
// value passes through the same validated set path as Set.
func (m *Manager) MergeJSON(data []byte) error {
	var overrides map[string]any
	if err := json.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("settings: merge payload must be a JSON object: %w", err)
	}
	if len(overrides) == 0 {
		return nil
	}

	// JSON objects carry no order; sort so validation failures and events
	// are deterministic.
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	if err := StopIfReserved(names...); err != nil {
		return err
	}

	event, err := m.mergeLocked(names, overrides)
	if err != nil {
		return err
	}
	m.emitActivity(event)
	return nil
}

func (m *Manager) mergeLocked(names []string, overrides map[string]any) (activity.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range names {
		if !m.store.has(name) {
			return activity.Event{}, &UnknownOptionError{Option: name}
		}
	}
	updates := make([]Pair, 0, len(names))
	for _, name := range names {
		override := overrides[name]
		if overrideMap, ok := override.(map[string]any); ok {
			if currentMap, ok := m.store.current[name].(map[string]any); ok {
				merged := mergemap.Merge(deepclone.Values(currentMap), overrideMap)
				updates = append(updates, Pair{Name: name, Value: merged})
				continue
			}
		}
		updates = append(updates, Pair{Name: name, Value: override})
	}

	oldValues := m.valuesFor(names)
	if err := m.store.apply(updates); err != nil {
		return activity.Event{}, err
	}
	m.revision++
	newValues := m.valuesFor(names)

	return activity.BuildSettingsUpdatedEvent(activity.EventInput{
		ActorID:   m.cfg.actorID,
		ManagerID: m.id,
		Revision:  m.revision,
		Options:   names,
		OldValues: oldValues,
		NewValues: newValues,
	}), nil
}

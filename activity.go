package settings

import (
	"context"

	"github.com/goliatone/go-settings/pkg/activity"
)

// WithActivityHooks attaches activity hooks to the manager configuration.
// The slice is cloned and nil entries dropped.
func WithActivityHooks(hooks activity.Hooks) ManagerOption {
	normalized := cloneActivityHooks(hooks)
	return func(cfg *managerConfig) {
		cfg.activityHooks = normalized
	}
}

// WithActivityEmitter routes the manager's events through a preconfigured
// emitter, picking up its channel and actor defaults. Emitter and plain hooks
// can be combined; both receive every event.
func WithActivityEmitter(emitter *activity.Emitter) ManagerOption {
	return func(cfg *managerConfig) {
		cfg.emitter = emitter
	}
}

// ActivityHooks returns a cloned slice of the activity hooks configured on
// the manager. The returned slice can be safely mutated by the caller.
func (m *Manager) ActivityHooks() activity.Hooks {
	if m == nil {
		return nil
	}
	return cloneActivityHooks(m.cfg.activityHooks)
}

// emitActivity fans the event out to the configured emitter and hooks. Hook
// failures never reach the mutation path; a mutation that landed stays landed.
func (m *Manager) emitActivity(event activity.Event) {
	if m.cfg.emitter.Enabled() {
		_ = m.cfg.emitter.Emit(context.Background(), event)
	}
	if m.cfg.activityHooks.Enabled() {
		_ = m.cfg.activityHooks.Notify(context.Background(), event)
	}
}

func cloneActivityHooks(hooks activity.Hooks) activity.Hooks {
	if len(hooks) == 0 {
		return nil
	}
	normalized := make([]activity.ActivityHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		normalized = append(normalized, hook)
	}
	if len(normalized) == 0 {
		return nil
	}
	return activity.Hooks(normalized)
}

package activity

import (
	"context"
	"strings"
)

// Config controls emission defaults applied before fan-out. ActorID names the
// principal stamped on events that carry none, covering managers mutated by
// background services rather than end users.
type Config struct {
	Enabled bool
	Channel string
	ActorID string
}

// Emitter fans events out to a fixed hook set, stamping configured defaults
// on events that omit them. A nil Emitter is inert.
type Emitter struct {
	hooks   Hooks
	enabled bool
	channel string
	actorID string
}

// NewEmitter constructs an emitter from hooks and configuration. The channel
// falls back to "settings" when the config names none.
func NewEmitter(hooks Hooks, cfg Config) *Emitter {
	channel := strings.TrimSpace(cfg.Channel)
	if channel == "" {
		channel = "settings"
	}
	kept := cloneHooks(hooks)
	return &Emitter{
		hooks:   kept,
		enabled: cfg.Enabled && len(kept) > 0,
		channel: channel,
		actorID: strings.TrimSpace(cfg.ActorID),
	}
}

// Enabled reports whether Emit would reach any hook.
func (e *Emitter) Enabled() bool {
	return e != nil && e.enabled && len(e.hooks) > 0
}

// Emit stamps the default channel and actor on the event where it carries
// none, then forwards it to every hook.
func (e *Emitter) Emit(ctx context.Context, event Event) error {
	if !e.Enabled() {
		return nil
	}
	return e.hooks.Notify(ctx, e.withDefaults(event))
}

func (e *Emitter) withDefaults(event Event) Event {
	if strings.TrimSpace(event.Channel) == "" {
		event.Channel = e.channel
	}
	if strings.TrimSpace(event.ActorID) == "" {
		event.ActorID = e.actorID
	}
	return event
}

func cloneHooks(hooks Hooks) Hooks {
	if len(hooks) == 0 {
		return nil
	}
	kept := make([]ActivityHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		kept = append(kept, hook)
	}
	return Hooks(kept)
}

package activity

import (
	"strings"
	"time"
)

// EventInput describes the common fields for settings lifecycle events. The
// manager ID identifies the emitting settings object; Options lists the names
// touched by the call in call order.
type EventInput struct {
	ActorID    string
	UserID     string
	TenantID   string
	ManagerID  string
	Channel    string
	Revision   uint64
	Options    []string
	OldValues  map[string]any
	NewValues  map[string]any
	ClonedFrom string
	Metadata   map[string]any
	OccurredAt time.Time
}

// BuildSettingsCreatedEvent constructs a normalized event for manager creation.
func BuildSettingsCreatedEvent(input EventInput) Event {
	return buildSettingsEvent("settings.created", input)
}

// BuildSettingsUpdatedEvent constructs a normalized event for a value update.
func BuildSettingsUpdatedEvent(input EventInput) Event {
	return buildSettingsEvent("settings.updated", input)
}

// BuildSettingsResetEvent constructs a normalized event for a reset to defaults.
func BuildSettingsResetEvent(input EventInput) Event {
	return buildSettingsEvent("settings.reset", input)
}

// BuildSettingsClonedEvent constructs a normalized event for a clone-and-merge.
func BuildSettingsClonedEvent(input EventInput) Event {
	return buildSettingsEvent("settings.cloned", input)
}

func buildSettingsEvent(verb string, input EventInput) Event {
	metadata := cloneMap(input.Metadata)
	if input.Revision > 0 {
		metadata = ensureMetadata(metadata)
		metadata["revision"] = input.Revision
	}
	if len(input.Options) > 0 {
		metadata = ensureMetadata(metadata)
		metadata["options"] = append([]string{}, input.Options...)
	}
	if len(input.OldValues) > 0 {
		metadata = ensureMetadata(metadata)
		metadata["old_values"] = cloneMap(input.OldValues)
	}
	if len(input.NewValues) > 0 {
		metadata = ensureMetadata(metadata)
		metadata["new_values"] = cloneMap(input.NewValues)
	}
	if input.ClonedFrom != "" {
		metadata = ensureMetadata(metadata)
		metadata["cloned_from"] = input.ClonedFrom
	}

	objectID := strings.TrimSpace(input.ManagerID)
	if objectID == "" {
		objectID = "settings"
	}

	return Event{
		Verb:       verb,
		ActorID:    strings.TrimSpace(input.ActorID),
		UserID:     strings.TrimSpace(input.UserID),
		TenantID:   strings.TrimSpace(input.TenantID),
		ObjectType: "settings",
		ObjectID:   objectID,
		Channel:    strings.TrimSpace(input.Channel),
		Metadata:   metadata,
		OccurredAt: input.OccurredAt,
	}
}

func ensureMetadata(meta map[string]any) map[string]any {
	if meta == nil {
		return map[string]any{}
	}
	return meta
}

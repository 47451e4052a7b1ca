package deepclone

import (
	"testing"
	"time"
)

type payload struct {
	Name   string
	Count  *int
	Labels map[string]string
	Tags   []string
}

func TestCloneDetachesNestedState(t *testing.T) {
	count := 3
	original := payload{
		Name:   "defaults",
		Count:  &count,
		Labels: map[string]string{"env": "prod"},
		Tags:   []string{"a", "b"},
	}

	cloned := Clone(original)

	*original.Count = 9
	original.Labels["env"] = "qa"
	original.Tags[0] = "mutated"

	if cloned.Count == nil || *cloned.Count != 3 {
		t.Fatalf("expected cloned pointer to keep 3, got %+v", cloned.Count)
	}
	if cloned.Labels["env"] != "prod" {
		t.Fatalf("expected cloned map to keep 'prod', got %q", cloned.Labels["env"])
	}
	if cloned.Tags[0] != "a" {
		t.Fatalf("expected cloned slice to keep 'a', got %q", cloned.Tags[0])
	}
}

func TestCloneKeepsUnexportedFields(t *testing.T) {
	stamp := time.Date(2026, time.August, 23, 10, 0, 0, 0, time.UTC)

	cloned := Clone(stamp)
	if !cloned.Equal(stamp) {
		t.Fatalf("expected cloned time %v, got %v", stamp, cloned)
	}

	type record struct {
		At     time.Time
		Labels map[string]string
	}
	original := record{
		At:     stamp,
		Labels: map[string]string{"env": "prod"},
	}

	mixed := Clone(original)
	original.Labels["env"] = "qa"

	if !mixed.At.Equal(stamp) {
		t.Fatalf("expected cloned timestamp %v, got %v", stamp, mixed.At)
	}
	if mixed.Labels["env"] != "prod" {
		t.Fatalf("expected cloned map to keep 'prod', got %q", mixed.Labels["env"])
	}
}

func TestCloneNilValues(t *testing.T) {
	if got := Clone[map[string]any](nil); got != nil {
		t.Fatalf("expected nil map clone, got %+v", got)
	}
	if got := Clone[any](nil); got != nil {
		t.Fatalf("expected nil any clone, got %+v", got)
	}
	var ptr *payload
	if got := Clone(ptr); got != nil {
		t.Fatalf("expected nil pointer clone, got %+v", got)
	}
}

func TestValuesCopiesNestedMaps(t *testing.T) {
	src := map[string]any{
		"limits": map[string]any{"cpu": 2},
		"name":   "svc",
	}

	out := Values(src)
	src["limits"].(map[string]any)["cpu"] = 8

	limits, ok := out["limits"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested map, got %T", out["limits"])
	}
	if limits["cpu"] != 2 {
		t.Fatalf("expected nested copy to keep 2, got %v", limits["cpu"])
	}
	if Values(nil) != nil {
		t.Fatalf("expected nil passthrough for nil input")
	}
}

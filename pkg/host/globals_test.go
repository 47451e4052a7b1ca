package host

import "testing"

func TestGraphicsReturnsSameRegistry(t *testing.T) {
	if Graphics() != Graphics() {
		t.Fatalf("expected a single process-wide graphics registry")
	}
}

func TestRuntimeReturnsSameRegistry(t *testing.T) {
	if Runtime() != Runtime() {
		t.Fatalf("expected a single process-wide runtime registry")
	}
}

func TestGraphicsSeedValues(t *testing.T) {
	g := Graphics()
	t.Cleanup(ResetGraphics)

	if value, ok := g.Get("background"); !ok || value != "white" {
		t.Fatalf("expected white background seed, got %v", value)
	}
	if value, ok := g.Get("dpi"); !ok || value != 96 {
		t.Fatalf("expected 96 dpi seed, got %v", value)
	}
	palette, ok := g.Get("color_palette")
	if !ok {
		t.Fatalf("expected color palette seed")
	}
	if colors := palette.([]any); len(colors) != 8 || colors[0] != "black" {
		t.Fatalf("unexpected palette seed: %v", palette)
	}
}

func TestRuntimeSeedValues(t *testing.T) {
	r := Runtime()
	t.Cleanup(ResetRuntime)

	if value, ok := r.Get("warn_level"); !ok || value != 1 {
		t.Fatalf("expected warn_level 1 seed, got %v", value)
	}
	if value, ok := r.Get("verbose"); !ok || value != false {
		t.Fatalf("expected verbose off seed, got %v", value)
	}
	if value, ok := r.Get("locale"); !ok || value != "en_US.UTF-8" {
		t.Fatalf("expected locale seed, got %v", value)
	}
}

func TestResetGraphicsRestoresSessionStart(t *testing.T) {
	t.Cleanup(ResetGraphics)
	g := Graphics()

	if err := g.Set("background", "black"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := g.Set("line_width", 4.0); err != nil {
		t.Fatalf("set: %v", err)
	}

	ResetGraphics()

	if value, _ := g.Get("background"); value != "white" {
		t.Fatalf("expected session-start background, got %v", value)
	}
	if value, _ := g.Get("line_width"); value != 1.0 {
		t.Fatalf("expected session-start line width, got %v", value)
	}
}

func TestResetRuntimeRestoresSessionStart(t *testing.T) {
	t.Cleanup(ResetRuntime)
	r := Runtime()

	if err := r.Set("verbose", true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := r.Set("warn_level", 2); err != nil {
		t.Fatalf("set: %v", err)
	}

	ResetRuntime()

	if value, _ := r.Get("verbose"); value != false {
		t.Fatalf("expected session-start verbose, got %v", value)
	}
	if value, _ := r.Get("warn_level"); value != 1 {
		t.Fatalf("expected session-start warn level, got %v", value)
	}
}

func TestGraphicsRejectsNewParameters(t *testing.T) {
	if err := Graphics().Set("made_up", 1); err == nil {
		t.Fatalf("expected unknown parameter rejection")
	}
}

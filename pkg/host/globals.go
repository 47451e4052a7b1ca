package host

import "sync"

var (
	graphicsOnce     sync.Once
	graphicsRegistry *Registry

	runtimeOnce     sync.Once
	runtimeRegistry *Registry
)

// Graphics returns the process-wide graphics parameter registry, seeding it
// on first use. The baseline captured at that moment is what ResetGraphics
// restores.
func Graphics() *Registry {
	graphicsOnce.Do(func() {
		graphicsRegistry = NewRegistry(graphicsSeed())
	})
	return graphicsRegistry
}

// Runtime returns the process-wide runtime option registry, seeding it on
// first use. The baseline captured at that moment is what ResetRuntime
// restores.
func Runtime() *Registry {
	runtimeOnce.Do(func() {
		runtimeRegistry = NewRegistry(runtimeSeed())
	})
	return runtimeRegistry
}

// ResetGraphics restores every graphics parameter to its session-start value.
func ResetGraphics() {
	Graphics().Reset()
}

// ResetRuntime restores every runtime option to its session-start value.
func ResetRuntime() {
	Runtime().Reset()
}

func graphicsSeed() map[string]any {
	return map[string]any{
		"background":  "white",
		"foreground":  "black",
		"line_width":  1.0,
		"point_size":  12.0,
		"font_family": "sans",
		"font_size":   10.0,
		"dpi":         96,
		"antialias":   true,
		"color_palette": []any{
			"black", "#DF536B", "#61D04F", "#2297E6",
			"#28E2E5", "#CD0BBC", "#F5C710", "gray62",
		},
	}
}

func runtimeSeed() map[string]any {
	return map[string]any{
		"verbose":        false,
		"warn_level":     1,
		"decimal_digits": 7,
		"max_print":      99999,
		"string_quote":   true,
		"timeout":        60,
		"locale":         "en_US.UTF-8",
	}
}

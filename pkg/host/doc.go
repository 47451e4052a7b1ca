// Package host maintains process-wide parameter stores whose session-start
// values can be restored on demand. Two stores ship built in: the graphics
// parameter set and the runtime option set. Each is seeded lazily on first
// use and its baseline is captured at that moment; ResetGraphics and
// ResetRuntime put every parameter back to the captured values no matter
// what has been written since.
//
// Registries are safe for concurrent use. Baseline applies the same
// capture-once discipline to caller-owned stores.
package host

package settings

import "strings"

// ReservedPrefix marks option names kept for internal bookkeeping. Managers
// refuse to create or set any name starting with it.
const ReservedPrefix = "__"

// IsReserved reports whether name carries the reserved internal prefix.
func IsReserved(name string) bool {
	return strings.HasPrefix(name, ReservedPrefix)
}

// StopIfReserved fails with a ReservedNameError when any candidate name uses
// the reserved prefix. Intended for callers extracting names from a set-style
// call before forwarding it to a manager.
func StopIfReserved(names ...string) error {
	for _, name := range names {
		if IsReserved(name) {
			return &ReservedNameError{Name: name}
		}
	}
	return nil
}

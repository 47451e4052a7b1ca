package settings

import (
	"fmt"

	"github.com/goliatone/go-settings/internal/deepclone"
)

// Descriptor summarizes one option: the inferred value type, the factory
// default, and the constraint guarding it.
type Descriptor struct {
	Name        string
	Type        string
	Default     any
	Constrained bool
	RuleKind    RuleKind
}

// Describe returns one descriptor per option in creation order. The type is
// inferred from the current value, falling back to the default when the
// current value is nil.
func (m *Manager) Describe() []Descriptor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Descriptor, 0, m.store.size())
	for _, name := range m.store.names {
		value := m.store.current[name]
		if value == nil {
			value = m.store.defaults[name]
		}
		d := Descriptor{
			Name:    name,
			Type:    typeName(value),
			Default: deepclone.Clone(m.store.defaults[name]),
		}
		if rule, ok := m.store.rules[name]; ok && rule != nil {
			d.Constrained = true
			d.RuleKind = rule.Kind()
		}
		out = append(out, d)
	}
	return out
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}

package settings

import (
	"encoding/json"
)

// Provenance explains where an option's effective value stands relative to
// its factory default, and which manager produced it.
type Provenance struct {
	Option     string   `json:"option"`
	Value      any      `json:"value,omitempty"`
	Default    any      `json:"default,omitempty"`
	Modified   bool     `json:"modified"`
	RuleKind   RuleKind `json:"rule_kind,omitempty"`
	ManagerID  string   `json:"manager_id"`
	Revision   uint64   `json:"revision"`
	ClonedFrom string   `json:"cloned_from,omitempty"`
}

// Explain reports the provenance of one option.
func (m *Manager) Explain(name string) (Provenance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, err := m.store.get(name)
	if err != nil {
		return Provenance{}, err
	}
	defaultValue, err := m.store.defaultValue(name)
	if err != nil {
		return Provenance{}, err
	}
	p := Provenance{
		Option:     name,
		Value:      value,
		Default:    defaultValue,
		Modified:   !valuesEqual(value, defaultValue),
		ManagerID:  m.id,
		Revision:   m.revision,
		ClonedFrom: m.clonedFrom,
	}
	if rule, ok := m.store.ruleFor(name); ok && rule != nil {
		p.RuleKind = rule.Kind()
	}
	return p, nil
}

// ToJSON serialises the provenance for logging or transport helpers.
func (p Provenance) ToJSON() ([]byte, error) {
	type alias Provenance
	return json.Marshal(alias(p))
}

// ProvenanceFromJSON deserialises a payload previously generated via ToJSON.
func ProvenanceFromJSON(payload []byte) (Provenance, error) {
	type alias Provenance
	var p alias
	if err := json.Unmarshal(payload, &p); err != nil {
		return Provenance{}, err
	}
	return Provenance(p), nil
}

package settings

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-settings/internal/deepclone"
)

// optionStore holds the defaults, the current values, and the rules for one
// manager. The three maps share an identical key set for the store's lifetime;
// names preserves creation order. The store performs no locking of its own,
// the owning manager serializes access.
type optionStore struct {
	names    []string
	defaults map[string]any
	current  map[string]any
	rules    map[string]Rule
}

func newOptionStore(initial []Pair, rules map[string]Rule) (*optionStore, error) {
	s := &optionStore{
		names:    make([]string, 0, len(initial)),
		defaults: make(map[string]any, len(initial)),
		current:  make(map[string]any, len(initial)),
		rules:    make(map[string]Rule, len(rules)),
	}
	for _, pair := range initial {
		if pair.Name == "" {
			return nil, fmt.Errorf("settings: option name must not be empty")
		}
		if err := StopIfReserved(pair.Name); err != nil {
			return nil, err
		}
		if _, exists := s.defaults[pair.Name]; exists {
			return nil, fmt.Errorf("%w %q", ErrDuplicateOption, pair.Name)
		}
		s.names = append(s.names, pair.Name)
		s.defaults[pair.Name] = deepclone.Clone(pair.Value)
		s.current[pair.Name] = deepclone.Clone(pair.Value)
	}
	for name, rule := range rules {
		if rule == nil {
			continue
		}
		if !s.has(name) {
			return nil, &UnknownOptionError{Option: name}
		}
		s.rules[name] = rule
	}
	// A nil default means "no value configured yet" and stays exempt from its
	// rule until a real value arrives through set.
	proposed := s.snapshot()
	for _, name := range s.names {
		value := s.defaults[name]
		if value == nil {
			continue
		}
		if err := s.validateAgainst(name, value, proposed); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *optionStore) has(name string) bool {
	_, ok := s.defaults[name]
	return ok
}

func (s *optionStore) size() int {
	return len(s.names)
}

// orderedNames returns the option names in creation order.
func (s *optionStore) orderedNames() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *optionStore) get(name string) (any, error) {
	if !s.has(name) {
		return nil, &UnknownOptionError{Option: name}
	}
	return deepclone.Clone(s.current[name]), nil
}

func (s *optionStore) defaultValue(name string) (any, error) {
	if !s.has(name) {
		return nil, &UnknownOptionError{Option: name}
	}
	return deepclone.Clone(s.defaults[name]), nil
}

func (s *optionStore) ruleFor(name string) (Rule, bool) {
	rule, ok := s.rules[name]
	return rule, ok
}

// snapshot returns a detached copy of the current values.
func (s *optionStore) snapshot() map[string]any {
	return deepclone.Values(s.current)
}

// pairs returns the current values in creation order, detached.
func (s *optionStore) pairs() []Pair {
	out := make([]Pair, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, Pair{Name: name, Value: deepclone.Clone(s.current[name])})
	}
	return out
}

// apply writes updates atomically: every name is resolved and every value
// validated against the proposed post-call snapshot before anything is
// written. On error the store is unchanged.
func (s *optionStore) apply(updates []Pair) error {
	if len(updates) == 0 {
		return nil
	}
	for _, update := range updates {
		if err := StopIfReserved(update.Name); err != nil {
			return err
		}
		if !s.has(update.Name) {
			return &UnknownOptionError{Option: update.Name}
		}
	}
	proposed := s.snapshot()
	staged := make(map[string]any, len(updates))
	for _, update := range updates {
		value := deepclone.Clone(update.Value)
		staged[update.Name] = value
		proposed[update.Name] = value
	}
	seen := make(map[string]bool, len(updates))
	for _, update := range updates {
		if seen[update.Name] {
			continue
		}
		seen[update.Name] = true
		if err := s.validateAgainst(update.Name, proposed[update.Name], proposed); err != nil {
			return err
		}
	}
	for name, value := range staged {
		s.current[name] = value
	}
	return nil
}

// reset restores every current value to its default.
func (s *optionStore) reset() {
	s.current = deepclone.Values(s.defaults)
}

// clone returns an independent copy. Rules are shared, they are immutable
// after construction.
func (s *optionStore) clone() *optionStore {
	names := make([]string, len(s.names))
	copy(names, s.names)
	rules := make(map[string]Rule, len(s.rules))
	for name, rule := range s.rules {
		rules[name] = rule
	}
	return &optionStore{
		names:    names,
		defaults: deepclone.Values(s.defaults),
		current:  deepclone.Values(s.current),
		rules:    rules,
	}
}

func (s *optionStore) validateAgainst(name string, value any, proposed map[string]any) error {
	rule, ok := s.rules[name]
	if !ok || rule == nil {
		return nil
	}
	var err error
	if snapRule, ok := rule.(snapshotRule); ok {
		err = snapRule.validateInSnapshot(name, value, proposed)
	} else {
		err = rule.Validate(value)
	}
	if err != nil {
		return decorateOptionError(err, name)
	}
	return nil
}

// decorateOptionError fills in the option name on errors produced by rules
// that never learned which option they guard.
func decorateOptionError(err error, option string) error {
	var verr *ValidationError
	if errors.As(err, &verr) && verr.Option == "" {
		verr.Option = option
	}
	var eerr *EvaluationError
	if errors.As(err, &eerr) && eerr.Option == "" {
		eerr.Option = option
	}
	return err
}

package settings

import (
	"github.com/goliatone/go-settings/pkg/activity"
	"github.com/google/uuid"
)

// Pair names one option and carries its value.
type Pair struct {
	Name  string
	Value any
}

// New constructs a Manager over the initial option set. The order of initial
// becomes the reporting order; names must be unique and must not use the
// reserved prefix. Rules attached through options are bound to the manager's
// evaluator stack and checked against every non-nil initial value before the
// manager is returned.
func New(initial []Pair, opts ...ManagerOption) (*Manager, error) {
	cfg := applyManagerOptions(opts)
	store, err := newOptionStore(initial, bindConfiguredRules(cfg))
	if err != nil {
		return nil, err
	}
	m := &Manager{
		store:    store,
		cfg:      cfg,
		id:       uuid.NewString(),
		revision: 1,
	}
	m.emitActivity(activity.BuildSettingsCreatedEvent(activity.EventInput{
		ActorID:   cfg.actorID,
		ManagerID: m.id,
		Revision:  m.revision,
		Options:   store.orderedNames(),
	}))
	return m, nil
}

// bindConfiguredRules resolves each expression rule against the manager's
// evaluator, cache, registry, and logger. Closed-form rules pass through
// untouched.
func bindConfiguredRules(cfg managerConfig) map[string]Rule {
	if len(cfg.rules) == 0 {
		return nil
	}
	bound := make(map[string]Rule, len(cfg.rules))
	for name, rule := range cfg.rules {
		if exprRule, ok := rule.(*expressionRule); ok {
			bound[name] = exprRule.bind(cfg)
			continue
		}
		bound[name] = rule
	}
	return bound
}

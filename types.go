package settings

import (
	"time"

	"github.com/goliatone/go-settings/pkg/activity"
)

// RuleContext carries the inputs an expression rule sees while validating a
// candidate value for one option.
type RuleContext struct {
	Option   string
	Value    any
	Snapshot map[string]any
	Now      *time.Time
	Args     map[string]any
	Metadata map[string]any
}

func (ctx RuleContext) withDefaultNow() RuleContext {
	if ctx.Now != nil {
		return ctx
	}
	now := time.Now()
	ctx.Now = &now
	return ctx
}

func (ctx RuleContext) timestamp() time.Time {
	ctx = ctx.withDefaultNow()
	return *ctx.Now
}

func (ctx RuleContext) withDefaultMaps() RuleContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	return ctx
}

// Evaluator executes rule expressions against a rule context.
type Evaluator interface {
	Evaluate(ctx RuleContext, expr string) (any, error)
	Compile(expr string, opts ...CompileOption) (CompiledRule, error)
}

// CompiledRule represents a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx RuleContext) (any, error)
}

// CompileOption configures evaluator compile behaviour.
type CompileOption interface {
	applyCompileOption(*compileConfig)
}

type compileConfig struct{}

type compileOptionFunc func(*compileConfig)

func (f compileOptionFunc) applyCompileOption(cfg *compileConfig) {
	if f != nil {
		f(cfg)
	}
}

// ManagerOption configures a manager at construction time.
type ManagerOption func(*managerConfig)

type managerConfig struct {
	rules         map[string]Rule
	evaluator     Evaluator
	programCache  ProgramCache
	functions     *FunctionRegistry
	logger        EvaluatorLogger
	activityHooks activity.Hooks
	emitter       *activity.Emitter
	actorID       string
}

func applyManagerOptions(opts []ManagerOption) managerConfig {
	cfg := managerConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithRule attaches a validation rule to the named option. The rule is fixed
// for the manager's lifetime once construction succeeds.
func WithRule(name string, rule Rule) ManagerOption {
	return func(cfg *managerConfig) {
		if rule == nil {
			return
		}
		if cfg.rules == nil {
			cfg.rules = make(map[string]Rule)
		}
		cfg.rules[name] = rule
	}
}

// WithRules attaches validation rules for several options at once. The map is
// copied so later caller mutation cannot reach the manager.
func WithRules(rules map[string]Rule) ManagerOption {
	return func(cfg *managerConfig) {
		if len(rules) == 0 {
			return
		}
		if cfg.rules == nil {
			cfg.rules = make(map[string]Rule, len(rules))
		}
		for name, rule := range rules {
			if rule == nil {
				continue
			}
			cfg.rules[name] = rule
		}
	}
}

// WithEvaluator configures the engine expression rules compile against when
// they carry no engine of their own.
func WithEvaluator(e Evaluator) ManagerOption {
	return func(cfg *managerConfig) {
		cfg.evaluator = e
	}
}

// WithActorID tags activity events emitted by the manager with an acting
// principal.
func WithActorID(id string) ManagerOption {
	return func(cfg *managerConfig) {
		cfg.actorID = id
	}
}

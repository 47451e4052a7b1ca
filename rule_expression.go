package settings

import (
	"fmt"
	"time"
)

// ExpressionOption configures an expression rule at construction time.
type ExpressionOption func(*expressionRule)

// ExpressionWithEvaluator pins the engine the rule evaluates with. Rules
// without a pinned engine inherit the manager's evaluator and fall back to
// expr-lang.
func ExpressionWithEvaluator(e Evaluator) ExpressionOption {
	return func(r *expressionRule) {
		r.evaluator = e
		r.pinned = e != nil
	}
}

// Expression builds a rule that accepts a candidate value when src evaluates
// to true. The expression sees value, option, now, args, metadata and the
// proposed option snapshot as top-level identifiers; the fixed bindings win
// when a snapshot key collides with one of them.
func Expression(src string, opts ...ExpressionOption) Rule {
	r := &expressionRule{src: src}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

type expressionRule struct {
	src       string
	evaluator Evaluator
	pinned    bool
	logger    EvaluatorLogger
}

func (r *expressionRule) Kind() RuleKind { return RuleKindExpression }

// Source exposes the rule expression for descriptors and provenance.
func (r *expressionRule) Source() string { return r.src }

func (r *expressionRule) Validate(value any) error {
	return r.validateInSnapshot("", value, nil)
}

func (r *expressionRule) validateInSnapshot(option string, value any, snapshot map[string]any) error {
	evaluator := r.engine()
	ctx := RuleContext{
		Option:   option,
		Value:    value,
		Snapshot: snapshot,
	}.withDefaultNow().withDefaultMaps()
	engine := evaluatorEngineName(evaluator)
	start := time.Now()
	result, err := evaluator.Evaluate(ctx, r.src)
	duration := time.Since(start)
	err = wrapEvaluationError(engine, r.src, option, err)
	r.loggerOrNoop().LogEvaluation(EvaluatorLogEvent{
		Engine:   engine,
		Expr:     r.src,
		Option:   option,
		Duration: duration,
		Err:      err,
	})
	if err != nil {
		return err
	}
	verdict, ok := result.(bool)
	if !ok {
		return wrapEvaluationError(engine, r.src, option,
			fmt.Errorf("result %s (%T) is not a boolean", formatValue(result), result))
	}
	if !verdict {
		return &ValidationError{
			Option: option,
			Kind:   RuleKindExpression,
			Detail: fmt.Sprintf("rejected by rule %q", r.src),
			Value:  value,
		}
	}
	return nil
}

// bind resolves the engine and logger from the manager configuration. Pinned
// engines stay as constructed; the original rule is left untouched so it can
// be shared across managers.
func (r *expressionRule) bind(cfg managerConfig) *expressionRule {
	bound := &expressionRule{
		src:       r.src,
		evaluator: r.evaluator,
		pinned:    r.pinned,
		logger:    r.logger,
	}
	if cfg.logger != nil {
		bound.logger = cfg.logger
	}
	if bound.pinned {
		return bound
	}
	if cfg.evaluator != nil {
		bound.evaluator = cfg.evaluator
		return bound
	}
	var exprOpts []ExprEvaluatorOption
	if cfg.programCache != nil {
		exprOpts = append(exprOpts, ExprWithProgramCache(cfg.programCache))
	}
	if cfg.functions != nil {
		exprOpts = append(exprOpts, ExprWithFunctionRegistry(cfg.functions))
	}
	bound.evaluator = NewExprEvaluator(exprOpts...)
	return bound
}

func (r *expressionRule) engine() Evaluator {
	if r.evaluator != nil {
		return r.evaluator
	}
	return NewExprEvaluator()
}

func (r *expressionRule) loggerOrNoop() EvaluatorLogger {
	if r.logger != nil {
		return r.logger
	}
	return noopEvaluatorLogger{}
}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*settings.exprEvaluator":
		return "expr"
	case "*settings.celEvaluator":
		return "cel"
	case "*settings.jsEvaluator":
		return "js"
	default:
		return "custom"
	}
}

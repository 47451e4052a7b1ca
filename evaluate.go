package settings

import (
	"errors"
	"fmt"
	"time"
)

var ErrNoEvaluator = errors.New("settings: evaluator not configured")

// Evaluate executes expr against the current option snapshot using the
// manager's engine and returns the raw result. The snapshot keys are visible
// as top-level identifiers alongside now, args and metadata.
func (m *Manager) Evaluate(expr string) (any, error) {
	return m.EvaluateWith(RuleContext{}, expr)
}

// EvaluateWith executes expr using ctx, filling ctx.Snapshot from the current
// option values when the caller leaves it nil.
func (m *Manager) EvaluateWith(ctx RuleContext, expr string) (any, error) {
	if expr == "" {
		return nil, fmt.Errorf("settings: expression must not be empty")
	}
	evaluator := m.resolveEvaluator()
	if evaluator == nil {
		return nil, ErrNoEvaluator
	}
	if ctx.Snapshot == nil {
		ctx.Snapshot = m.All()
	}
	ctx = ctx.withDefaultNow().withDefaultMaps()
	engine := evaluatorEngineName(evaluator)
	start := time.Now()
	value, err := evaluator.Evaluate(ctx, expr)
	duration := time.Since(start)
	err = wrapEvaluationError(engine, expr, ctx.Option, err)
	m.evaluatorLogger().LogEvaluation(EvaluatorLogEvent{
		Engine:   engine,
		Expr:     expr,
		Option:   ctx.Option,
		Duration: duration,
		Err:      err,
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (m *Manager) resolveEvaluator() Evaluator {
	if m.cfg.evaluator != nil {
		return m.cfg.evaluator
	}
	var exprOpts []ExprEvaluatorOption
	if m.cfg.programCache != nil {
		exprOpts = append(exprOpts, ExprWithProgramCache(m.cfg.programCache))
	}
	if m.cfg.functions != nil {
		exprOpts = append(exprOpts, ExprWithFunctionRegistry(m.cfg.functions))
	}
	return NewExprEvaluator(exprOpts...)
}

func (m *Manager) evaluatorLogger() EvaluatorLogger {
	if m.cfg.logger != nil {
		return m.cfg.logger
	}
	return noopEvaluatorLogger{}
}

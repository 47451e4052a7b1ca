package settings

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// RuleKind identifies the constraint family a rule enforces.
type RuleKind string

const (
	// RuleKindEnumerated restricts values to a fixed allowed set.
	RuleKindEnumerated RuleKind = "enumerated"
	// RuleKindRange restricts numeric values to inclusive bounds.
	RuleKindRange RuleKind = "range"
	// RuleKindExpression delegates the decision to a compiled expression.
	RuleKindExpression RuleKind = "expression"
)

// Rule validates candidate values for a single option. Rules are attached at
// manager construction time and are immutable for the manager's lifetime; the
// public set path can change values, never rules.
type Rule interface {
	Kind() RuleKind
	Validate(value any) error
}

// snapshotRule is implemented by rules that need the option name and the
// proposed post-call snapshot alongside the candidate value.
type snapshotRule interface {
	validateInSnapshot(option string, value any, snapshot map[string]any) error
}

// Enumerated builds a rule accepting only the listed values. Numeric members
// compare by value across numeric types, everything else by deep equality.
func Enumerated(values ...any) Rule {
	allowed := make([]any, len(values))
	copy(allowed, values)
	return &enumeratedRule{allowed: allowed}
}

type enumeratedRule struct {
	allowed []any
}

func (r *enumeratedRule) Kind() RuleKind { return RuleKindEnumerated }

func (r *enumeratedRule) Validate(value any) error {
	for _, member := range r.allowed {
		if valuesEqual(member, value) {
			return nil
		}
	}
	return &ValidationError{
		Kind:   RuleKindEnumerated,
		Detail: fmt.Sprintf("not in allowed set %s", r.describeAllowed()),
		Value:  value,
	}
}

func (r *enumeratedRule) describeAllowed() string {
	parts := make([]string, len(r.allowed))
	for i, member := range r.allowed {
		parts[i] = formatValue(member)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Range builds a rule accepting numeric values where min <= value <= max.
// Non-numeric candidates fail validation.
func Range(min, max float64) Rule {
	return &rangeRule{min: min, max: max}
}

type rangeRule struct {
	min float64
	max float64
}

func (r *rangeRule) Kind() RuleKind { return RuleKindRange }

func (r *rangeRule) Validate(value any) error {
	number, ok := toFloat64(value)
	if !ok {
		return &ValidationError{
			Kind:   RuleKindRange,
			Detail: fmt.Sprintf("is not numeric; bounds are %s", r.describeBounds()),
			Value:  value,
		}
	}
	// NaN compares false against both bounds, so reject it explicitly.
	if math.IsNaN(number) || number < r.min || number > r.max {
		return &ValidationError{
			Kind:   RuleKindRange,
			Detail: fmt.Sprintf("outside bounds %s", r.describeBounds()),
			Value:  value,
		}
	}
	return nil
}

func (r *rangeRule) describeBounds() string {
	return fmt.Sprintf("[%v, %v]", r.min, r.max)
}

func valuesEqual(a, b any) bool {
	if af, ok := toFloat64(a); ok {
		bf, ok := toFloat64(b)
		return ok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

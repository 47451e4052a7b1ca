package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOption indicates a get or set referenced a name absent from
	// the store's key set.
	ErrUnknownOption = errors.New("settings: unknown option")
	// ErrValidation indicates a value failed the rule attached to its option.
	ErrValidation = errors.New("settings: validation failed")
	// ErrReservedName indicates an option name used the reserved internal
	// prefix.
	ErrReservedName = errors.New("settings: reserved option name")
	// ErrInvalidCall indicates a malformed or ambiguous call shape.
	ErrInvalidCall = errors.New("settings: invalid call")
	// ErrDuplicateOption indicates manager construction received the same
	// option name twice.
	ErrDuplicateOption = errors.New("settings: duplicate option")
)

// UnknownOptionError carries the offending name for ErrUnknownOption.
type UnknownOptionError struct {
	Option string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("settings: unknown option %q", e.Option)
}

func (e *UnknownOptionError) Unwrap() error { return ErrUnknownOption }

// ValidationError reports a value rejected by its option's rule. The message
// always names the rule kind, the requirement, and the offending value.
type ValidationError struct {
	Option string
	Kind   RuleKind
	Detail string
	Value  any
}

func (e *ValidationError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("settings: %s: value %s %s", e.Kind, formatValue(e.Value), e.Detail)
	}
	return fmt.Sprintf("settings: option %q: %s: value %s %s", e.Option, e.Kind, formatValue(e.Value), e.Detail)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ReservedNameError reports an option name matching ReservedPrefix.
type ReservedNameError struct {
	Name string
}

func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("settings: option name %q uses the reserved prefix %q", e.Name, ReservedPrefix)
}

func (e *ReservedNameError) Unwrap() error { return ErrReservedName }

// InvalidCallError reports a call shape the dispatcher refuses to execute.
type InvalidCallError struct {
	Reason string
}

func (e *InvalidCallError) Error() string {
	return fmt.Sprintf("settings: invalid call: %s", e.Reason)
}

func (e *InvalidCallError) Unwrap() error { return ErrInvalidCall }

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

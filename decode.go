package settings

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeOption configures a Decode call.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	tagName     string
	errorUnused bool
}

// DecodeWithTagName overrides the struct tag consulted while decoding.
func DecodeWithTagName(tag string) DecodeOption {
	return func(cfg *decodeConfig) {
		if tag != "" {
			cfg.tagName = tag
		}
	}
}

// DecodeErrorUnused makes decoding fail when the option map carries keys the
// target struct has no field for.
func DecodeErrorUnused() DecodeOption {
	return func(cfg *decodeConfig) {
		cfg.errorUnused = true
	}
}

// Decode maps the current option values onto target, a struct pointer,
// matching fields through `settings` struct tags. String values decode into
// encoding.TextUnmarshaler fields, and strings or numbers into
// time.Duration.
func (m *Manager) Decode(target any, opts ...DecodeOption) error {
	cfg := decodeConfig{tagName: "settings"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     cfg.tagName,
		Result:      target,
		ErrorUnused: cfg.errorUnused,
		DecodeHook: composeDecodeHooks(
			textUnmarshalerHookFunc(),
			timeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(m.All())
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// TypeCoercionError occurs when an option value cannot be coerced into the
// struct field it maps to.
type TypeCoercionError struct {
	from  reflect.Value
	to    reflect.Value
	Cause error
}

func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("settings: failed to coerce value from %s to %s: %s", e.from.Type().Name(), e.to.Type().Name(), e.Cause)
}

func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			return nil, TypeCoercionError{
				from:  f,
				to:    t,
				Cause: err,
			}
		}
		return f.Interface(), nil
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t).Interface()
		u, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(data.(string)))
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

func timeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(time.Duration(0)) {
			return nil, errInvalidDecodeCondition
		}

		switch f.Kind() {
		case reflect.String:
			return time.ParseDuration(data.(string))
		case reflect.Int, reflect.Int32, reflect.Int64:
			return time.Duration(reflect.ValueOf(data).Int()), nil
		case reflect.Float64:
			return time.Duration(int64(data.(float64))), nil
		default:
			return nil, errInvalidDecodeCondition
		}
	}
}

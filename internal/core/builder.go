package core

import (
	"errors"
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// ErrSetterMismatch is returned when a configuration value cannot be passed
// to the builder setter its key names.
var ErrSetterMismatch = errors.New("setter argument mismatch")

// TestReporter is the minimal interface mocksugar needs from test frameworks.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// TestContext is the boundary collaborator that hands out mock builders.
type TestContext interface {
	MockBuilder(target string) (Builder, error)
}

// Builder is a staged mock configuration object. Beyond this contract, a
// builder may expose any number of Set<Property> setters; those are
// discovered and invoked by name.
type Builder interface {
	DisableOriginalConstructor()
	GetMock() (Mock, error)
	GetMockForAbstractClass() (Mock, error)
	GetMockForTrait() (Mock, error)
}

// Mock is a produced mock instance accepting stub configuration.
type Mock interface {
	StubReturn(method string, value any) error
	StubAction(method string, action any) error
}

// applySetters invokes, for every configuration key, the builder setter named
// "Set" plus the capitalized key, when the builder's concrete type exposes
// one taking a single parameter. Keys with no matching setter are silently
// ignored. A nil value invokes the setter with its parameter's zero value.
func applySetters(builder Builder, cfg Config) error {
	builderValue := reflect.ValueOf(builder)

	for key, value := range cfg {
		setter := builderValue.MethodByName(setterName(key))
		if !setter.IsValid() {
			continue
		}

		setterType := setter.Type()
		if setterType.NumIn() != 1 || setterType.IsVariadic() {
			continue
		}

		paramType := setterType.In(0)

		var arg reflect.Value

		if value == nil {
			arg = reflect.Zero(paramType)
		} else {
			arg = reflect.ValueOf(value)
			if !arg.Type().AssignableTo(paramType) {
				return fmt.Errorf("%w: %s takes %s, configuration holds %T",
					ErrSetterMismatch, setterName(key), paramType, value)
			}
		}

		setter.Call([]reflect.Value{arg})
	}

	return nil
}

// setterName capitalizes the first rune of key and prefixes "Set".
func setterName(key string) string {
	first, size := utf8.DecodeRuneInString(key)
	if first == utf8.RuneError && size <= 1 {
		return "Set"
	}

	return "Set" + string(unicode.ToUpper(first)) + key[size:]
}

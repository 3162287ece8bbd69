// Package core provides the internal implementation of mocksugar's
// configuration normalization and mock construction machinery.
package core

import (
	"errors"
	"fmt"
	"reflect"
)

// Recognized shorthand option names.
const (
	keyConstructor        = "constructor"
	keyDisableConstructor = "disableOriginalConstructor"
	keyMethods            = "methods"
	keyMockType           = "mockType"
	keyWill               = "will"
	keyWillReturn         = "willReturn"
)

// ErrBadMethods is returned when the methods option holds a value of a shape
// the normalizer does not recognize.
var ErrBadMethods = errors.New("unrecognized methods value")

// ErrBadOption is returned when a structured option (willReturn, will) holds
// a value that is not a mapping.
var ErrBadOption = errors.New("option value is not a mapping")

// Config maps option names to option values. Recognized shorthand keys are
// methods, willReturn, will, constructor and mockType; any other key is
// passed through to the builder's matching setter verbatim.
type Config map[string]any

// Method is a single entry of a Methods list: a method name, optionally
// paired with a stub return value.
type Method struct {
	Name     string
	Value    any
	HasValue bool
}

// Methods is the ordered mixed-entry form of the methods option, for
// configurations that combine plain method names with name-to-return-value
// entries in one list.
type Methods []Method

// Name returns a Methods entry that names a method without stubbing it.
func Name(name string) Method {
	return Method{Name: name}
}

// Returning returns a Methods entry that names a method and stubs its return
// value.
func Returning(name string, value any) Method {
	return Method{Name: name, Value: value, HasValue: true}
}

// Merge combines configurations left to right, later ones overriding earlier
// ones. Mappings found under the same key on both sides merge recursively;
// any other collision replaces the earlier value wholesale. The result shares
// no map or slice storage with the inputs.
func Merge(configs ...Config) Config {
	merged := Config{}

	for _, cfg := range configs {
		for key, value := range cfg {
			if older, ok := merged[key]; ok {
				merged[key] = mergeValue(older, value)

				continue
			}

			merged[key] = copyValue(value)
		}
	}

	return merged
}

// Normalize resolves a configuration's shorthand options into their canonical
// forms and returns the result as a new Config; the input is not mutated.
//
// After normalization, willReturn and will are always present (empty mappings
// by default), methods maps each resolved method name to itself, and at most
// one of constructor/disableOriginalConstructor remains. Normalization is
// idempotent.
func Normalize(cfg Config) (Config, error) {
	normal := make(Config, len(cfg)+2)
	for key, value := range cfg {
		normal[key] = value
	}

	willReturn, err := stubMap(normal, keyWillReturn)
	if err != nil {
		return nil, err
	}

	// Names stubbed explicitly via willReturn win over values derived from
	// methods entries below.
	explicit := make(map[string]bool, len(willReturn))
	for name := range willReturn {
		explicit[name] = true
	}

	if raw, ok := normal[keyMethods]; ok {
		entries, err := methodEntries(raw)
		if err != nil {
			return nil, err
		}

		canonical := make(map[string]string, len(entries))

		for _, entry := range entries {
			canonical[entry.Name] = entry.Name

			if entry.HasValue && !explicit[entry.Name] {
				willReturn[entry.Name] = entry.Value
			}
		}

		normal[keyMethods] = canonical
	}

	normal[keyWillReturn] = willReturn

	will, err := stubMap(normal, keyWill)
	if err != nil {
		return nil, err
	}

	normal[keyWill] = will

	if ctor, ok := normal[keyConstructor]; ok {
		if _, both := normal[keyDisableConstructor]; !both {
			normal[keyDisableConstructor] = !truthy(ctor)
		}

		delete(normal, keyConstructor)
	}

	return normal, nil
}

// copyValue deep-copies mapping and slice values so merged configurations
// never alias their inputs. Scalars and opaque values pass through.
func copyValue(value any) any {
	switch val := value.(type) {
	case Config:
		return Config(copyAnyMap(val))
	case map[string]any:
		return copyAnyMap(val)
	case map[string]string:
		dup := make(map[string]string, len(val))
		for k, v := range val {
			dup[k] = v
		}

		return dup
	case []any:
		dup := make([]any, len(val))
		copy(dup, val)

		return dup
	case []string:
		dup := make([]string, len(val))
		copy(dup, val)

		return dup
	default:
		return value
	}
}

func copyAnyMap(m map[string]any) map[string]any {
	dup := make(map[string]any, len(m))
	for k, v := range m {
		dup[k] = copyValue(v)
	}

	return dup
}

// emptyValue reports whether a methods value counts as absent: nil, or an
// empty mapping or list of any accepted shape.
func emptyValue(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	default:
		return false
	}
}

// mergeValue resolves one key collision during Merge.
func mergeValue(older, newer any) any {
	if olderNames, ok := older.(map[string]string); ok {
		if newerNames, ok := newer.(map[string]string); ok {
			dup := make(map[string]string, len(olderNames)+len(newerNames))
			for k, v := range olderNames {
				dup[k] = v
			}

			for k, v := range newerNames {
				dup[k] = v
			}

			return dup
		}
	}

	if olderMap, ok := anyMap(older); ok {
		if newerMap, ok := anyMap(newer); ok {
			dup := copyAnyMap(olderMap)
			for k, v := range newerMap {
				if existing, ok := dup[k]; ok {
					dup[k] = mergeValue(existing, v)

					continue
				}

				dup[k] = copyValue(v)
			}

			return dup
		}
	}

	return copyValue(newer)
}

// anyMap views a value as a string-keyed mapping, if it is one.
func anyMap(value any) (map[string]any, bool) {
	switch val := value.(type) {
	case Config:
		return map[string]any(val), true
	case map[string]any:
		return val, true
	default:
		return nil, false
	}
}

// methodEntries resolves the accepted shapes of the methods option into a
// flat entry list.
//
// A map[string]string mapping names to themselves is the canonical form the
// normalizer itself produces; its values are method names, not stub returns,
// so no willReturn entries may be derived from it. That distinction is what
// keeps Normalize idempotent.
func methodEntries(raw any) (Methods, error) {
	switch val := raw.(type) {
	case nil:
		return nil, nil
	case Methods:
		return val, nil
	case []Method:
		return Methods(val), nil
	case []string:
		entries := make(Methods, 0, len(val))
		for _, name := range val {
			entries = append(entries, Name(name))
		}

		return entries, nil
	case map[string]string:
		entries := make(Methods, 0, len(val))
		for _, name := range val {
			entries = append(entries, Name(name))
		}

		return entries, nil
	case map[string]any:
		entries := make(Methods, 0, len(val))
		for name, value := range val {
			entries = append(entries, Returning(name, value))
		}

		return entries, nil
	case []any:
		entries := make(Methods, 0, len(val))

		for _, element := range val {
			switch elem := element.(type) {
			case string:
				entries = append(entries, Name(elem))
			case Method:
				entries = append(entries, elem)
			default:
				return nil, fmt.Errorf("%w: list element of type %T", ErrBadMethods, element)
			}
		}

		return entries, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrBadMethods, raw)
	}
}

// stubMap copies the named option as a map[string]any, defaulting to an
// empty mapping when the option is absent.
func stubMap(cfg Config, key string) (map[string]any, error) {
	raw, ok := cfg[key]
	if !ok || raw == nil {
		return map[string]any{}, nil
	}

	source, ok := anyMap(raw)
	if !ok {
		return nil, fmt.Errorf("%w: %s holds %T", ErrBadOption, key, raw)
	}

	dup := make(map[string]any, len(source))
	for k, v := range source {
		dup[k] = v
	}

	return dup, nil
}

// truthy applies loose truthiness rules: nil, false, numeric zero, empty
// strings and empty collections are falsy; everything else is truthy.
func truthy(value any) bool {
	if value == nil {
		return false
	}

	if b, ok := value.(bool); ok {
		return b
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String, reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() != 0
	default:
		return true
	}
}

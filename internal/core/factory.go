package core

import (
	"fmt"
)

// Factory turns shorthand configurations into fully configured mock objects.
// It holds only the test-context reference supplied at construction; every
// MockObject call works on its own configuration copies.
type Factory struct {
	ctx TestContext
}

// NewFactory creates a Factory around the given test context.
func NewFactory(ctx TestContext) *Factory {
	return &Factory{ctx: ctx}
}

// MockObject builds one configured mock for the target type.
//
// Each supplied configuration is normalized independently, then all are
// merged left to right (later configurations override earlier ones,
// recursively for nested mappings). The merged configuration drives the
// builder obtained from the test context: matching Set<Property> setters are
// invoked for every remaining key, the original constructor is disabled
// unless the configuration says otherwise, the factory method selected by
// mockType produces the mock, and finally every willReturn and will entry is
// stubbed onto it.
func (f *Factory) MockObject(target string, configs ...Config) (Mock, error) {
	normalized := make([]Config, 0, len(configs))

	for _, cfg := range configs {
		normal, err := Normalize(cfg)
		if err != nil {
			return nil, err
		}

		normalized = append(normalized, normal)
	}

	merged := Merge(normalized...)

	willReturn := takeStubMap(merged, keyWillReturn)
	will := takeStubMap(merged, keyWill)
	mockType := takeMockType(merged)

	// For the default mock type, an absent or empty method list means "do not
	// restrict which methods are replaced"; the nil sentinel rides the setter
	// path as the zero value. Other mock types keep their literal lists, where
	// empty means "replace no methods".
	if mockType == MockTypeDefault && emptyValue(merged[keyMethods]) {
		merged[keyMethods] = nil
	}

	builder, err := f.ctx.MockBuilder(target)
	if err != nil {
		return nil, fmt.Errorf("obtaining mock builder for %q: %w", target, err)
	}

	if err := applySetters(builder, merged); err != nil {
		return nil, err
	}

	disable := true
	if raw, ok := merged[keyDisableConstructor]; ok {
		disable = truthy(raw)
	}

	if disable {
		builder.DisableOriginalConstructor()
	}

	mocked, err := f.produce(builder, mockType)
	if err != nil {
		return nil, err
	}

	for method, value := range willReturn {
		if err := mocked.StubReturn(method, value); err != nil {
			return nil, fmt.Errorf("stubbing return for %s.%s: %w", target, method, err)
		}
	}

	for method, action := range will {
		if err := mocked.StubAction(method, action); err != nil {
			return nil, fmt.Errorf("stubbing action for %s.%s: %w", target, method, err)
		}
	}

	return mocked, nil
}

// produce resolves the factory-method name for the mock type and dispatches
// to the corresponding builder method.
func (f *Factory) produce(builder Builder, mockType MockType) (Mock, error) {
	name, err := FactoryMethod(mockType)
	if err != nil {
		return nil, err
	}

	switch name {
	case FactoryGetMockForAbstractClass:
		return builder.GetMockForAbstractClass()
	case FactoryGetMockForTrait:
		return builder.GetMockForTrait()
	default:
		return builder.GetMock()
	}
}

// takeMockType removes mockType from the configuration, defaulting to the
// default mock type. Unknown value types are passed through as symbols so the
// resolver can reject them.
func takeMockType(cfg Config) MockType {
	raw, ok := cfg[keyMockType]
	delete(cfg, keyMockType)

	if !ok || raw == nil {
		return MockTypeDefault
	}

	switch val := raw.(type) {
	case MockType:
		return val
	case string:
		return MockType(val)
	default:
		return MockType(fmt.Sprintf("%v", raw))
	}
}

// takeStubMap removes a willReturn/will mapping from the configuration.
// Normalized configurations always carry these as map[string]any.
func takeStubMap(cfg Config, key string) map[string]any {
	raw, ok := cfg[key]
	delete(cfg, key)

	if !ok {
		return map[string]any{}
	}

	if stubs, isMap := anyMap(raw); isMap {
		return stubs
	}

	return map[string]any{}
}

// Package double provides an in-memory mock collaborator: a test context
// that hands out builders, and a mock implementation that hand-written test
// doubles delegate to.
//
// A double embeds *double.Mock and forwards each method through Invoke,
// reading results from the returned testify mock.Arguments:
//
//	type UserStore struct{ *double.Mock }
//
//	func (s *UserStore) Get(id string) (string, error) {
//	    args := s.Invoke("Get", id)
//	    return args.String(0), args.Error(1)
//	}
package double

import (
	"errors"
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/mocksugar/mocksugar/internal/core"
	"github.com/mocksugar/mocksugar/stub"
)

// ErrBadAction is returned when a "will" entry holds a value that does not
// implement stub.Action.
var ErrBadAction = errors.New("will entry is not a stub action")

// ErrNoTarget is returned when a builder is requested for an empty target
// name.
var ErrNoTarget = errors.New("no target type")

// ErrNotMocked is returned when a stub names a method outside the builder's
// method restriction list.
var ErrNotMocked = errors.New("method not in mocked method list")

// Call records one invocation of a mocked method.
type Call struct {
	Method string
	Args   []any
}

// Context is an in-memory TestContext.
type Context struct {
	t core.TestReporter
}

// NewContext creates a Context reporting failures to t.
func NewContext(t core.TestReporter) *Context {
	return &Context{t: t}
}

// MockBuilder returns a staged builder for the named target type.
func (c *Context) MockBuilder(target string) (core.Builder, error) {
	if target == "" {
		return nil, ErrNoTarget
	}

	return &Builder{t: c.t, target: target}, nil
}

// Builder accumulates mock settings before producing a Mock. Its setters are
// discovered by name from configuration keys.
type Builder struct {
	t            core.TestReporter
	target       string
	className    string
	methods      map[string]string
	ctorArgs     []any
	ctorDisabled bool
}

// DisableOriginalConstructor suppresses the original constructor on produced
// mocks.
func (b *Builder) DisableOriginalConstructor() {
	b.ctorDisabled = true
}

// GetMock produces a plain mock.
func (b *Builder) GetMock() (core.Mock, error) {
	return b.build(core.FactoryGetMock), nil
}

// GetMockForAbstractClass produces a mock of the abstract-class variant.
func (b *Builder) GetMockForAbstractClass() (core.Mock, error) {
	return b.build(core.FactoryGetMockForAbstractClass), nil
}

// GetMockForTrait produces a mock of the trait variant.
func (b *Builder) GetMockForTrait() (core.Mock, error) {
	return b.build(core.FactoryGetMockForTrait), nil
}

// SetConstructorArgs records the arguments the original constructor would
// receive.
func (b *Builder) SetConstructorArgs(args []any) {
	b.ctorArgs = args
}

// SetMethods restricts which methods the mock replaces. A nil mapping means
// no restriction.
func (b *Builder) SetMethods(methods map[string]string) {
	b.methods = methods
}

// SetMockClassName overrides the produced mock's reported class name.
func (b *Builder) SetMockClassName(name string) {
	b.className = name
}

func (b *Builder) build(variant string) *Mock {
	return &Mock{
		t:            b.t,
		target:       b.target,
		className:    b.className,
		variant:      variant,
		restrict:     b.methods,
		ctorArgs:     b.ctorArgs,
		ctorDisabled: b.ctorDisabled,
		returns:      map[string]any{},
		actions:      map[string]stub.Action{},
	}
}

// Mock is a produced mock instance. Hand-written doubles embed it and route
// their methods through Invoke.
type Mock struct {
	t            core.TestReporter
	target       string
	className    string
	variant      string
	restrict     map[string]string
	ctorArgs     []any
	ctorDisabled bool

	mu      sync.Mutex
	returns map[string]any
	actions map[string]stub.Action
	calls   []Call
}

// Calls returns a copy of the recorded invocations, in call order.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]Call, len(m.calls))
	copy(calls, m.calls)

	return calls
}

// ClassName returns the overridden class name, or the target name.
func (m *Mock) ClassName() string {
	if m.className != "" {
		return m.className
	}

	return m.target
}

// ConstructorArgs returns the recorded original-constructor arguments.
func (m *Mock) ConstructorArgs() []any {
	return m.ctorArgs
}

// ConstructorDisabled reports whether the original constructor was disabled.
func (m *Mock) ConstructorDisabled() bool {
	return m.ctorDisabled
}

// Invoke records a call to the named method and resolves its stubbed
// behavior. A configured action runs with the actual arguments; otherwise a
// configured return value comes back as a single-element result; otherwise
// the result is nil. Calling a method outside a non-nil restriction list
// fails the test.
func (m *Mock) Invoke(method string, args ...any) mock.Arguments {
	m.t.Helper()

	m.mu.Lock()
	m.calls = append(m.calls, Call{Method: method, Args: args})
	action, hasAction := m.actions[method]
	value, hasValue := m.returns[method]
	m.mu.Unlock()

	if !m.allowed(method) {
		m.t.Fatalf("unexpected call to %s.%s: method is not in the mocked method list", m.target, method)

		return nil
	}

	if hasAction {
		results, err := action.Invoke(args)
		if err != nil {
			m.t.Fatalf("stub action for %s.%s: %v", m.target, method, err)

			return nil
		}

		return mock.Arguments(results)
	}

	if hasValue {
		return mock.Arguments{value}
	}

	return nil
}

// StubAction configures the named method to perform the given stub.Action
// when called.
func (m *Mock) StubAction(method string, action any) error {
	if !m.allowed(method) {
		return fmt.Errorf("%w: %s.%s", ErrNotMocked, m.target, method)
	}

	act, ok := action.(stub.Action)
	if !ok {
		return fmt.Errorf("%w: %s.%s holds %T", ErrBadAction, m.target, method, action)
	}

	m.mu.Lock()
	m.actions[method] = act
	m.mu.Unlock()

	return nil
}

// StubReturn configures the named method to return the given value.
func (m *Mock) StubReturn(method string, value any) error {
	if !m.allowed(method) {
		return fmt.Errorf("%w: %s.%s", ErrNotMocked, m.target, method)
	}

	m.mu.Lock()
	m.returns[method] = value
	m.mu.Unlock()

	return nil
}

// Target returns the target type name the mock was built for.
func (m *Mock) Target() string {
	return m.target
}

// Variant returns the factory-method name that produced the mock.
func (m *Mock) Variant() string {
	return m.variant
}

// allowed reports whether the method may be stubbed or invoked under the
// builder's restriction list. A nil list allows everything.
func (m *Mock) allowed(method string) bool {
	if m.restrict == nil {
		return true
	}

	_, ok := m.restrict[method]

	return ok
}

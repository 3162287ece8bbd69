// Package stub provides the stub actions accepted by the "will" option.
// An action is an opaque behavior a mocked method performs when called:
// a callback, a sequence of values, a multi-value return, an echoed
// argument, or a panic. Actions are interpreted by the mock backend, not by
// the configuration layer.
//
//	cfg := mocksugar.Config{
//	    "will": map[string]any{
//	        "Next": stub.Consecutive(1, 2, 3),
//	        "Ping": stub.Callback(func(args []any) []any { return []any{args[0]} }),
//	    },
//	}
package stub

import (
	"errors"
	"fmt"
	"sync"
)

// ErrExhausted is returned when a Consecutive action is called more times
// than it has values.
var ErrExhausted = errors.New("consecutive values exhausted")

// ErrNoSuchArgument is returned when a ReturnArgument action's index is out
// of range for the actual call.
var ErrNoSuchArgument = errors.New("no argument at index")

// Action defines the behavior a mocked method performs when invoked. Invoke
// receives the actual call arguments and returns the values the mocked
// method should return.
type Action interface {
	Invoke(args []any) ([]any, error)
}

// Callback returns an action that computes the return values from the actual
// call arguments.
func Callback(fn func(args []any) []any) Action {
	return callbackAction{fn: fn}
}

// Consecutive returns an action that yields one of the given values per
// call, in order, then fails with ErrExhausted.
func Consecutive(values ...any) Action {
	return &consecutiveAction{values: values}
}

// PanicWith returns an action that panics with the given value when the
// mocked method is called.
func PanicWith(value any) Action {
	return panicAction{value: value}
}

// ReturnArgument returns an action that echoes the call argument at the
// given index back as the return value.
func ReturnArgument(index int) Action {
	return argumentAction{index: index}
}

// Values returns an action that returns the given values on every call. This
// is the multi-value counterpart of a plain willReturn entry.
func Values(values ...any) Action {
	return valuesAction{values: values}
}

type argumentAction struct {
	index int
}

func (a argumentAction) Invoke(args []any) ([]any, error) {
	if a.index < 0 || a.index >= len(args) {
		return nil, fmt.Errorf("%w: %d of %d", ErrNoSuchArgument, a.index, len(args))
	}

	return []any{args[a.index]}, nil
}

type callbackAction struct {
	fn func(args []any) []any
}

func (a callbackAction) Invoke(args []any) ([]any, error) {
	return a.fn(args), nil
}

type consecutiveAction struct {
	mu     sync.Mutex
	values []any
	next   int
}

func (a *consecutiveAction) Invoke([]any) ([]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.next >= len(a.values) {
		return nil, fmt.Errorf("%w: call %d, only %d values", ErrExhausted, a.next+1, len(a.values))
	}

	value := a.values[a.next]
	a.next++

	return []any{value}, nil
}

type panicAction struct {
	value any
}

func (a panicAction) Invoke([]any) ([]any, error) {
	panic(a.value)
}

type valuesAction struct {
	values []any
}

func (a valuesAction) Invoke([]any) ([]any, error) {
	return a.values, nil
}

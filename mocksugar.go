// Package mocksugar turns shorthand mock configurations into fully
// configured mock objects: given a target type name and one or more small
// configuration maps, it resolves shorthand options (constructor
// suppression, return-value stubbing, method lists, mock variant selection)
// into the verbose sequence of builder calls the underlying mock framework
// expects.
//
// This is the public API entry point. Implementation lives in internal/core.
package mocksugar

import (
	"github.com/mocksugar/mocksugar/internal/core"
)

// Builder is a staged mock configuration object handed out by a TestContext.
type Builder = core.Builder

// Config maps option names to option values. Recognized shorthand keys are
// "methods", "willReturn", "will", "constructor" and "mockType"; any other
// key is passed through to the builder's matching Set<Property> setter.
type Config = core.Config

// Factory turns shorthand configurations into fully configured mock objects.
type Factory = core.Factory

// NewFactory creates a Factory around the given test context.
func NewFactory(ctx TestContext) *Factory {
	return core.NewFactory(ctx)
}

// Method is a single entry of a Methods list.
type Method = core.Method

// Methods is the ordered mixed-entry form of the "methods" option.
type Methods = core.Methods

// Mock is a produced mock instance accepting stub configuration.
type Mock = core.Mock

// MockType selects the mock-construction strategy.
type MockType = core.MockType

// The recognized mock types.
const (
	MockTypeDefault  = core.MockTypeDefault
	MockTypeAbstract = core.MockTypeAbstract
	MockTypeTrait    = core.MockTypeTrait
)

// TestContext is the boundary collaborator that hands out mock builders.
type TestContext = core.TestContext

// TestReporter is the minimal interface mocksugar needs from test
// frameworks.
type TestReporter = core.TestReporter

// Errors re-exported from internal/core.
var (
	// ErrBadMethods reports a "methods" value of an unrecognized shape.
	ErrBadMethods = core.ErrBadMethods
	// ErrBadOption reports a structured option holding a non-mapping value.
	ErrBadOption = core.ErrBadOption
	// ErrInvalidMockType reports a mock-type symbol outside the recognized set.
	ErrInvalidMockType = core.ErrInvalidMockType
	// ErrSetterMismatch reports a configuration value a builder setter can't take.
	ErrSetterMismatch = core.ErrSetterMismatch
)

// FactoryMethod maps a mock type to the builder factory-method name that
// produces it. It fails with ErrInvalidMockType on anything outside
// default/abstract/trait.
func FactoryMethod(mockType MockType) (string, error) {
	return core.FactoryMethod(mockType)
}

// Merge combines configurations left to right, later ones overriding earlier
// ones, merging nested mappings recursively.
func Merge(configs ...Config) Config {
	return core.Merge(configs...)
}

// Name returns a Methods entry that names a method without stubbing it.
func Name(name string) Method {
	return core.Name(name)
}

// Normalize resolves a configuration's shorthand options into their
// canonical forms and returns the result as a new Config.
func Normalize(cfg Config) (Config, error) {
	return core.Normalize(cfg)
}

// Returning returns a Methods entry that names a method and stubs its return
// value.
func Returning(name string, value any) Method {
	return core.Returning(name, value)
}

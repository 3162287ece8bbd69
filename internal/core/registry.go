package core

import (
	"sync"
)

// GetOrCreateFactory returns the Factory for the given test, creating one
// around newContext(t) if needed. Multiple calls with the same TestReporter
// return the same Factory instance, so every mock built within one test
// shares one collaborator context.
//
// If the TestReporter supports Cleanup (like *testing.T), the Factory is
// automatically removed from the registry when the test completes.
func GetOrCreateFactory(t TestReporter, newContext func(TestReporter) TestContext) *Factory {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory, ok := registry[t]; ok {
		return factory
	}

	factory := NewFactory(newContext(t))
	registry[t] = factory

	// Register cleanup if the TestReporter supports it
	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(func() {
			registryMu.Lock()
			delete(registry, t)
			registryMu.Unlock()
		})
	}

	return factory
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Package-level registry is intentional for per-test factory sharing
	registry = make(map[TestReporter]*Factory)
	//nolint:gochecknoglobals // Mutex for registry
	registryMu sync.Mutex
)

// cleanupRegistrar is the interface needed for registering cleanup functions.
// This is satisfied by *testing.T and *testing.B.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}

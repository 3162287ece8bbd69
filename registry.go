package mocksugar

import (
	"github.com/mocksugar/mocksugar/double"
	"github.com/mocksugar/mocksugar/internal/core"
)

// ForTest returns the Factory for the given test, creating one backed by the
// in-memory double context if needed. Multiple calls with the same
// TestReporter return the same Factory instance, so every mock built within
// one test shares one collaborator context.
//
// If the TestReporter supports Cleanup (like *testing.T), the Factory is
// automatically released when the test completes.
func ForTest(t TestReporter) *Factory {
	return core.GetOrCreateFactory(t, func(t core.TestReporter) core.TestContext {
		return double.NewContext(t)
	})
}

// MockObject builds one configured mock for the target type using the
// Factory registered for t. This is the one-call convenience path:
//
//	m, err := mocksugar.MockObject(t, "UserStore", mocksugar.Config{
//	    "methods":     map[string]any{"Get": "bob"},
//	    "constructor": false,
//	})
func MockObject(t TestReporter, target string, configs ...Config) (Mock, error) {
	return ForTest(t).MockObject(target, configs...)
}

package stub_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/mocksugar/mocksugar/stub"
)

// TestCallback verifies the callback action computes returns from the actual
// arguments.
func TestCallback(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	action := stub.Callback(func(args []any) []any {
		return []any{args[0].(int) * 2}
	})

	results, err := action.Invoke([]any{21})

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(results).To(Equal([]any{42}))
}

// TestConsecutive verifies successive calls yield successive values and then
// fail with ErrExhausted.
func TestConsecutive(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	action := stub.Consecutive("a", "b")

	first, err := action.Invoke(nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(first).To(Equal([]any{"a"}))

	second, err := action.Invoke(nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(second).To(Equal([]any{"b"}))

	_, err = action.Invoke(nil)
	g.Expect(errors.Is(err, stub.ErrExhausted)).To(BeTrue(), "got %v", err)
}

// TestValues verifies the multi-value action returns the same values on
// every call.
func TestValues(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	action := stub.Values("bob", nil)

	for range 3 {
		results, err := action.Invoke(nil)

		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(results).To(Equal([]any{"bob", nil}))
	}
}

// TestReturnArgument verifies argument echoing and the out-of-range error.
func TestReturnArgument(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	action := stub.ReturnArgument(1)

	results, err := action.Invoke([]any{"first", "second"})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(results).To(Equal([]any{"second"}))

	_, err = action.Invoke([]any{"only"})
	g.Expect(errors.Is(err, stub.ErrNoSuchArgument)).To(BeTrue(), "got %v", err)

	_, err = stub.ReturnArgument(-1).Invoke([]any{"only"})
	g.Expect(errors.Is(err, stub.ErrNoSuchArgument)).To(BeTrue(), "got %v", err)
}

// TestPanicWith verifies the action panics with the configured value.
func TestPanicWith(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	action := stub.PanicWith("kaboom")

	g.Expect(func() { _, _ = action.Invoke(nil) }).To(PanicWith("kaboom"))
}

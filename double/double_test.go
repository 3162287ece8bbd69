package double_test

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/mocksugar/mocksugar/double"
	"github.com/mocksugar/mocksugar/internal/core"
	"github.com/mocksugar/mocksugar/stub"
)

// mockT captures reporter failures instead of failing the real test.
type mockT struct {
	failed bool
	msg    string
}

func (m *mockT) Fatalf(format string, args ...any) {
	m.failed = true
	m.msg = fmt.Sprintf(format, args...)
}

func (m *mockT) Helper() {}

func buildMock(t *testing.T, configure func(core.Builder)) *double.Mock {
	t.Helper()
	g := NewWithT(t)

	builder, err := double.NewContext(t).MockBuilder("UserStore")
	g.Expect(err).NotTo(HaveOccurred())

	if configure != nil {
		configure(builder)
	}

	mocked, err := builder.GetMock()
	g.Expect(err).NotTo(HaveOccurred())

	return mocked.(*double.Mock)
}

// TestMockBuilder_RequiresTarget verifies the context rejects empty target
// names.
func TestMockBuilder_RequiresTarget(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := double.NewContext(t).MockBuilder("")

	g.Expect(errors.Is(err, double.ErrNoTarget)).To(BeTrue(), "got %v", err)
}

// TestFactoryMethods_RecordVariant verifies each factory method stamps its
// name on the produced mock.
func TestFactoryMethods_RecordVariant(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	builder, err := double.NewContext(t).MockBuilder("Repo")
	g.Expect(err).NotTo(HaveOccurred())

	plain, err := builder.GetMock()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(plain.(*double.Mock).Variant()).To(Equal("getMock"))

	abstract, err := builder.GetMockForAbstractClass()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(abstract.(*double.Mock).Variant()).To(Equal("getMockForAbstractClass"))

	trait, err := builder.GetMockForTrait()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(trait.(*double.Mock).Variant()).To(Equal("getMockForTrait"))
}

// TestInvoke_StubbedReturn verifies a stubbed value comes back as a
// single-element testify arguments list.
func TestInvoke_StubbedReturn(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	mocked := buildMock(t, nil)

	g.Expect(mocked.StubReturn("GetName", "bob")).To(Succeed())

	args := mocked.Invoke("GetName", 7)

	g.Expect(args.String(0)).To(Equal("bob"))
	g.Expect(mocked.Calls()).To(Equal([]double.Call{{Method: "GetName", Args: []any{7}}}))
}

// TestInvoke_StubbedAction verifies actions run with the actual arguments
// and their results feed the testify arguments helpers.
func TestInvoke_StubbedAction(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	mocked := buildMock(t, nil)

	err := mocked.StubAction("Get", stub.Callback(func(args []any) []any {
		return []any{fmt.Sprintf("user-%v", args[0]), nil}
	}))
	g.Expect(err).To(Succeed())

	args := mocked.Invoke("Get", 42)

	g.Expect(args.String(0)).To(Equal("user-42"))
	g.Expect(args.Error(1)).To(Succeed())
}

// TestInvoke_Unstubbed verifies unstubbed calls return no values but are
// still recorded.
func TestInvoke_Unstubbed(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	mocked := buildMock(t, nil)

	args := mocked.Invoke("Close")

	g.Expect(args).To(BeNil())
	g.Expect(mocked.Calls()).To(HaveLen(1))
}

// TestInvoke_ActionFailureReportsToTest verifies an action error fails the
// test through the reporter.
func TestInvoke_ActionFailureReportsToTest(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	reporter := &mockT{}

	builder, err := double.NewContext(reporter).MockBuilder("Repo")
	g.Expect(err).NotTo(HaveOccurred())

	mocked, err := builder.GetMock()
	g.Expect(err).NotTo(HaveOccurred())

	dm := mocked.(*double.Mock)
	g.Expect(dm.StubAction("Next", stub.Consecutive(1))).To(Succeed())

	_ = dm.Invoke("Next")
	g.Expect(reporter.failed).To(BeFalse())

	_ = dm.Invoke("Next")
	g.Expect(reporter.failed).To(BeTrue())
	g.Expect(reporter.msg).To(ContainSubstring("exhausted"))
}

// TestRestriction verifies the method restriction list gates both stubbing
// and invocation.
func TestRestriction(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	reporter := &mockT{}

	builder, err := double.NewContext(reporter).MockBuilder("Repo")
	g.Expect(err).NotTo(HaveOccurred())

	builder.(*double.Builder).SetMethods(map[string]string{"Get": "Get"})

	mocked, err := builder.GetMock()
	g.Expect(err).NotTo(HaveOccurred())

	dm := mocked.(*double.Mock)

	g.Expect(dm.StubReturn("Get", 1)).To(Succeed())

	err = dm.StubReturn("Put", 2)
	g.Expect(errors.Is(err, double.ErrNotMocked)).To(BeTrue(), "got %v", err)

	err = dm.StubAction("Put", stub.Values(1))
	g.Expect(errors.Is(err, double.ErrNotMocked)).To(BeTrue(), "got %v", err)

	_ = dm.Invoke("Put")
	g.Expect(reporter.failed).To(BeTrue())
	g.Expect(reporter.msg).To(ContainSubstring("Repo.Put"))
}

// TestStubAction_RejectsNonActions verifies opaque will values must
// implement stub.Action for this backend.
func TestStubAction_RejectsNonActions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	mocked := buildMock(t, nil)

	err := mocked.StubAction("Get", "not an action")

	g.Expect(errors.Is(err, double.ErrBadAction)).To(BeTrue(), "got %v", err)
}

// TestBuilderSettings verifies constructor and naming settings surface on
// the produced mock.
func TestBuilderSettings(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mocked := buildMock(t, func(b core.Builder) {
		db := b.(*double.Builder)
		db.SetConstructorArgs([]any{"dsn"})
		db.SetMockClassName("FancyStore")
		db.DisableOriginalConstructor()
	})

	g.Expect(mocked.Target()).To(Equal("UserStore"))
	g.Expect(mocked.ClassName()).To(Equal("FancyStore"))
	g.Expect(mocked.ConstructorArgs()).To(Equal([]any{"dsn"}))
	g.Expect(mocked.ConstructorDisabled()).To(BeTrue())

	unnamed := buildMock(t, nil)
	g.Expect(unnamed.ClassName()).To(Equal("UserStore"))
	g.Expect(unnamed.ConstructorDisabled()).To(BeFalse())
}

package core

import (
	"errors"
	"fmt"
)

// MockType selects the mock-construction strategy: plain classes, abstract
// classes, or traits.
type MockType string

// The recognized mock types.
const (
	MockTypeDefault  MockType = "default"
	MockTypeAbstract MockType = "abstract"
	MockTypeTrait    MockType = "trait"
)

// Builder factory-method names, as the underlying framework spells them.
const (
	FactoryGetMock                 = "getMock"
	FactoryGetMockForAbstractClass = "getMockForAbstractClass"
	FactoryGetMockForTrait         = "getMockForTrait"
)

// ErrInvalidMockType is returned when a mock-type symbol outside the
// recognized set is supplied. There is no fallback for unknown types.
var ErrInvalidMockType = errors.New("invalid mock type")

// FactoryMethod maps a mock type to the builder factory-method name that
// produces it.
func FactoryMethod(mockType MockType) (string, error) {
	switch mockType {
	case MockTypeDefault:
		return FactoryGetMock, nil
	case MockTypeAbstract:
		return FactoryGetMockForAbstractClass, nil
	case MockTypeTrait:
		return FactoryGetMockForTrait, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMockType, string(mockType))
	}
}

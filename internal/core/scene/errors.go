package scene

import (
	"errors"
	"fmt"
)

var (
	// Structural errors

	ErrNilNode     = errors.New("node is nil")
	ErrDisposed    = errors.New("node is disposed")
	ErrCycle       = errors.New("attach would create a cycle")
	ErrDuplicateID = errors.New("duplicate node id in tree")
	ErrNotChild    = errors.New("node is not a child of this node")

	// Component errors

	ErrNilComponent      = errors.New("component is nil")
	ErrFamilyMismatch    = errors.New("component family not accepted by node")
	ErrMultiplicity      = errors.New("single-instance component slot already occupied")
	ErrComponentOwned    = errors.New("component is attached to another node")
	ErrComponentNotFound = errors.New("component not attached to this node")

	// Registry and codec errors

	ErrUnknownType   = errors.New("unknown type")
	ErrInvalidTag    = errors.New("invalid type tag")
	ErrNilFactory    = errors.New("factory is nil")
	ErrInvalidRecord = errors.New("invalid record")
	ErrInvalidField  = errors.New("invalid field value")
)

// UnknownTypeError reports a tag with no registered factory.
type UnknownTypeError struct {
	Tag  string
	Kind string // "node" or "component"
}

func (e *UnknownTypeError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("unknown type %q", e.Tag)
	}
	return fmt.Sprintf("unknown %s type %q", e.Kind, e.Tag)
}

func (e *UnknownTypeError) Is(target error) bool { return target == ErrUnknownType }

// CycleError reports an attach that would make a node its own descendant.
type CycleError struct {
	Parent Node
	Child  Node
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cannot attach %s under %s: attach would create a cycle", describe(e.Child), describe(e.Parent))
}

func (e *CycleError) Is(target error) bool { return target == ErrCycle }

// DuplicateIDError reports an attach that would put two nodes with the same id in one tree.
type DuplicateIDError struct {
	ID     string
	Parent Node
	Child  Node
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("cannot attach %s under %s: id %s already present in tree",
		describe(e.Child), describe(e.Parent), e.ID)
}

func (e *DuplicateIDError) Is(target error) bool { return target == ErrDuplicateID }

// FamilyMismatchError reports a component whose families do not intersect the node's.
type FamilyMismatchError struct {
	Component string
	Node      string
	Offered   FamilySet
	Accepted  FamilySet
}

func (e *FamilyMismatchError) Error() string {
	return fmt.Sprintf("component %q (families %v) not accepted by %s (families %v)",
		e.Component, e.Offered.Strings(), e.Node, e.Accepted.Strings())
}

func (e *FamilyMismatchError) Is(target error) bool { return target == ErrFamilyMismatch }

// MultiplicityError reports a second instance of a single-instance component.
type MultiplicityError struct {
	Component string
	Node      string
}

func (e *MultiplicityError) Error() string {
	return fmt.Sprintf("component %q already attached to %s and allows a single instance", e.Component, e.Node)
}

func (e *MultiplicityError) Is(target error) bool { return target == ErrMultiplicity }

// FieldError reports a record field holding a value of the wrong shape.
type FieldError struct {
	Key  string
	Want string
	Got  any
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: want %s, got %T", e.Key, e.Want, e.Got)
}

func (e *FieldError) Is(target error) bool { return target == ErrInvalidField }

func describe(n Node) string {
	if n == nil {
		return "<nil>"
	}
	b := n.Base()
	if b.name == "" {
		return fmt.Sprintf("%s(%s)", n.TypeTag(), b.id)
	}
	return fmt.Sprintf("%s %q(%s)", n.TypeTag(), b.name, b.id)
}

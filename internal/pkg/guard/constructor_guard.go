// Package guard provides the ConstructorGuard pattern used by domain objects
// to ensure they are only created through their factory functions.
//
// A zero-value domain object carries a zero-value guard, which fails
// validation. Objects created through their constructors carry a constructed
// guard, which passes. Embedding a guard therefore makes "instantiated the
// struct directly" a detectable, rejectable state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and no custom error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through a
// constructor. The zero value is invalid; NewConstructorGuard produces the
// valid state.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state. Call it only
// from a factory function and store the result in the object being built.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructed, or ErrDefaultConstructorGuard when notConstructed
// is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.constructed {
		return nil
	}
	if notConstructed == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructed
}

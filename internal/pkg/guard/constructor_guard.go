// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable, so aggregates and commands can only be used after going
// through their designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. The guard keeps an internal flag
// that is set only by NewConstructorGuard; a zero-value struct fails
// validation.
//
// Example usage:
//
//	type Barcode struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewBarcode() Barcode {
//	    return Barcode{value: generate(), guard: guard.NewConstructorGuard()}
//	}
//
//	func (b Barcode) Validate() error {
//	    return b.guard.Validate(ErrBarcodeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of every guarded domain object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns validationError (or ErrDefaultConstructorGuard when
// validationError is nil) for zero-value instances, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

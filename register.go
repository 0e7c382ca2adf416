package incfg

import "fmt"

// Var is the compile-time-checked handle to one declared option. A Var is
// bound to the single registered instance for its name, so Get and Set never
// perform a string lookup and cannot miss.
//
// The zero Var is not usable; obtain one from Require or RequireIn.
type Var[T comparable] struct {
	opt *typedOption[T]
}

// Require declares a configuration option in the default registry and
// returns its typed handle.
//
// Call Require from a package-level var initializer so the option is
// registered before main runs:
//
//	var bufferSize = incfg.Require("BUFFER_SIZE", 4096, "write buffer size")
//
// Declaration is idempotent: requiring an already-declared (name, type) pair
// returns a handle to the existing option and its current value, and the
// first declaration's default and description win. Require panics if name is
// empty or contains characters other than ASCII letters, digits, underscores
// and dashes, or if name was already declared with a different type; both
// are programming errors at the declaration site.
func Require[T comparable](name string, defaultValue T, description string) Var[T] {
	return RequireIn(Default(), name, defaultValue, description)
}

// RequireIn is Require against an explicit registry. It exists mainly so
// tests can declare options into an isolated registry; Go does not permit
// type parameters on methods, hence the free function.
func RequireIn[T comparable](r *Registry, name string, defaultValue T, description string) Var[T] {
	if !isValidName(name) {
		panic(fmt.Sprintf("incfg: invalid option name %q", name))
	}
	registered := r.Add(newTypedOption(name, description, defaultValue))
	opt, ok := registered.(*typedOption[T])
	if !ok {
		panic(fmt.Sprintf("incfg: option %q already declared with value type %T", name, registered.Value()))
	}
	return Var[T]{opt: opt}
}

// Name returns the option key this handle is bound to.
func (v Var[T]) Name() string { return v.opt.name }

// Get returns the current value.
func (v Var[T]) Get() T { return v.opt.get() }

// Set assigns a new value and updates the option's default flag.
func (v Var[T]) Set(value T) { v.opt.set(value) }

// IsDefault reports whether the option still holds its declared default.
func (v Var[T]) IsDefault() bool { return v.opt.IsDefault() }

// Option returns the type-erased registry view of this handle's option.
func (v Var[T]) Option() Option { return v.opt }

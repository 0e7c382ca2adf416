package incfg

import "sync"

// Option is the type-erased view of a single registered configuration entry.
// The registry stores and enumerates Options; the typed value behind one is
// only reachable through the Var handle returned by Require.
type Option interface {
	// Name returns the option key.
	Name() string

	// Description returns the human-readable text emitted above the option
	// in the configuration output. May be empty.
	Description() string

	// IsDefault reports whether no non-default value has ever been assigned.
	// Once an assignment changes the value the flag stays false for the
	// remainder of the process, even if a later assignment restores the
	// original default.
	IsDefault() bool

	// IsBool reports whether the underlying type is bool. Boolean options
	// are pure presence flags on the command line and never consume a value
	// token.
	IsBool() bool

	// String returns the encoded textual form of the current value.
	String() string

	// Value returns the current value as its dynamic type.
	Value() any

	// Parse decodes s and assigns the result, updating the default flag the
	// same way a typed Set does.
	Parse(s string) error
}

// typedOption is the concrete Option for one (name, T) pair. Exactly one
// instance exists per declared name; Require hands out handles to it.
type typedOption[T comparable] struct {
	name        string
	description string

	mu        sync.RWMutex
	value     T
	isDefault bool
}

func newTypedOption[T comparable](name, description string, def T) *typedOption[T] {
	return &typedOption[T]{
		name:        name,
		description: description,
		value:       def,
		isDefault:   true,
	}
}

func (o *typedOption[T]) Name() string        { return o.name }
func (o *typedOption[T]) Description() string { return o.description }

func (o *typedOption[T]) IsDefault() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.isDefault
}

func (o *typedOption[T]) IsBool() bool {
	var zero T
	_, ok := any(zero).(bool)
	return ok
}

func (o *typedOption[T]) String() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return encodeValue(o.value)
}

func (o *typedOption[T]) Value() any {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

func (o *typedOption[T]) Parse(s string) error {
	var v T
	if err := decodeValue(s, &v); err != nil {
		return err
	}
	o.set(v)
	return nil
}

func (o *typedOption[T]) get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// set assigns a new value. The default flag survives only while every
// assignment equals the value already held.
func (o *typedOption[T]) set(v T) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.isDefault = o.isDefault && v == o.value
	o.value = v
}

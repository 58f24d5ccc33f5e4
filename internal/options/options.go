// Package options implements the generic functional-option plumbing used by
// the configurable constructors in this module.
package options

// Option configures a value of type T and may reject bad input.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New wraps fn as an Option for type T.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError wraps a function that cannot fail as an Option for type T.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply runs each option against target in order, stopping at the first
// error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

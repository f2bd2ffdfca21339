// Package options provides the generic plumbing behind the functional
// options exposed by the stream and wire packages, e.g.
// stream.WithBigEndian or wire.WithCompression.
//
// Keeping the mechanism here lets each package export only its option
// constructors while sharing one application loop.
package options

// Option configures a target of type T during construction. Concrete
// options are built with New (validating) or NoError (infallible).
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option. The zero value is not
// usable; construct through New or NoError.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New wraps a function that can reject its input, e.g. an unknown
// compression type passed to a frame encoder option.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply runs opts against target in order and stops at the first failure,
// so a constructor can hand back the offending option's error unchanged.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError wraps a function that cannot fail, e.g. selecting a stream's
// endianness.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Package async lifts the option combinators over deferred computations.
// Each helper applies the same rule as its synchronous counterpart after
// awaiting the selected branch; a producer is invoked at most once and
// only when its branch is selected. Cancellation is the producer's
// responsibility via the supplied context.
package async

import (
	"context"

	"github.com/authcorp/optional"
)

// Future represents an async computation.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go starts an async computation.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		f.value, f.err = fn()
		close(f.done)
	}()
	return f
}

// GoContext starts an async computation with a context.
func GoContext[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		f.value, f.err = fn(ctx)
		close(f.done)
	}()
	return f
}

// Wait blocks until the future completes.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.value, f.err
}

// WaitContext blocks until the future completes or the context is
// cancelled.
func (f *Future[T]) WaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel that closes when the future completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Opt waits for completion and folds the outcome into an Option: Some on
// success, None on error. The error itself is discarded.
func (f *Future[T]) Opt() optional.Option[T] {
	<-f.done
	if f.err != nil {
		return optional.None[T]()
	}
	return optional.Some(f.value)
}

// UnwrapOr returns the contained value, or awaits produce for a fallback
// when o is None. produce is invoked at most once and never when a value
// is present.
func UnwrapOr[T any](ctx context.Context, o optional.Option[T], produce func(context.Context) (T, error)) (T, error) {
	if v, ok := o.Unpack(); ok {
		return v, nil
	}
	return produce(ctx)
}

// Map applies fn to the contained value if present, awaiting its result.
// fn is not invoked when o is None.
func Map[T, U any](ctx context.Context, o optional.Option[T], fn func(context.Context, T) (U, error)) (optional.Option[U], error) {
	v, ok := o.Unpack()
	if !ok {
		return optional.None[U](), nil
	}
	u, err := fn(ctx, v)
	if err != nil {
		return optional.None[U](), err
	}
	return optional.Some(u), nil
}

// FlatMap applies an option-producing fn to the contained value if
// present, awaiting its result. fn is not invoked when o is None.
func FlatMap[T, U any](ctx context.Context, o optional.Option[T], fn func(context.Context, T) (optional.Option[U], error)) (optional.Option[U], error) {
	v, ok := o.Unpack()
	if !ok {
		return optional.None[U](), nil
	}
	return fn(ctx, v)
}

// Match awaits exactly one of the two branches depending on the Option
// state and returns its result.
func Match[T, U any](ctx context.Context, o optional.Option[T], onSome func(context.Context, T) (U, error), onNone func(context.Context) (U, error)) (U, error) {
	if v, ok := o.Unpack(); ok {
		return onSome(ctx, v)
	}
	return onNone(ctx)
}

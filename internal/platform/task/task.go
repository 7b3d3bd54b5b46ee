package task

import (
	"context"
	"time"
)

// Future es el resultado de un trabajo que corre en su propia goroutine.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go arranca fn después de delay. Si ctx se cancela durante la espera,
// fn no se ejecuta y el future termina con ctx.Err().
func Go[T any](ctx context.Context, delay time.Duration, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()

			select {
			case <-ctx.Done():
				f.err = ctx.Err()
				return
			case <-timer.C:
			}
		}

		f.val, f.err = fn(ctx)
	}()

	return f
}

// Await bloquea hasta que el future termine o ctx se cancele.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done permite hacer select sobre la finalización.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

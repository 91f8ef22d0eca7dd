package stream

import "context"

// Collect pulls the stream to completion and returns all events in order.
// It returns whatever was collected so far alongside a context error.
func (st *Stream[T]) Collect(ctx context.Context) ([]T, error) {
	var result []T
	for {
		item, ok, err := st.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, item)
	}
}

// Drain pulls all events and sends each to sink, stopping on the first sink
// error or context cancellation.
func Drain[T any](ctx context.Context, st *Stream[T], sink func(context.Context, T) error) error {
	for {
		item, ok, err := st.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := sink(ctx, item); err != nil {
			return err
		}
	}
}

// ForEach pulls all events and calls fn for each. Convenience wrapper around Drain.
func ForEach[T any](ctx context.Context, st *Stream[T], fn func(T)) error {
	return Drain(ctx, st, func(_ context.Context, item T) error {
		fn(item)
		return nil
	})
}

package task

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestGo_ReturnsValue(t *testing.T) {
	f := Go(context.Background(), 0, func(ctx context.Context) (int, error) {
		return 42, nil
	})

	v, err := f.Await(context.Background())
	if err != nil {
		t.Fatalf("Await error: %v", err)
	}
	if v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}
}

func TestGo_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	f := Go(context.Background(), 0, func(ctx context.Context) (string, error) {
		return "", boom
	})

	if _, err := f.Await(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestGo_CancelDuringDelay_SkipsFn(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	called := make(chan struct{}, 1)
	f := Go(ctx, time.Hour, func(ctx context.Context) (int, error) {
		called <- struct{}{}
		return 1, nil
	})

	cancel()

	select {
	case <-f.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("future did not finish after cancel")
	}

	if _, err := f.Await(context.Background()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	select {
	case <-called:
		t.Fatalf("fn must not run after cancellation")
	default:
	}
}

func TestAwait_RespectsCallerContext(t *testing.T) {
	f := Go(context.Background(), time.Hour, func(ctx context.Context) (int, error) {
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := f.Await(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

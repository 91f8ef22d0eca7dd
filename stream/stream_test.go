package stream

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestSendThenNext(t *testing.T) {
	sender, st := New[int]()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		if err := sender.Send(ctx, i); err != nil {
			t.Fatalf("Send(%d) failed: %v", i, err)
		}
	}
	sender.Close()

	for i := 1; i <= 3; i++ {
		item, ok, err := st.Next(ctx)
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if !ok {
			t.Fatalf("stream ended early at item %d", i)
		}
		if item != i {
			t.Errorf("expected %d, got %d", i, item)
		}
	}

	_, ok, err := st.Next(ctx)
	if err != nil {
		t.Fatalf("Next after close failed: %v", err)
	}
	if ok {
		t.Error("expected stream to be exhausted")
	}
}

func TestNextAfterExhaustionStaysExhausted(t *testing.T) {
	sender, st := New[string]()
	sender.Close()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, ok, err := st.Next(ctx)
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if ok {
			t.Fatal("expected exhausted stream")
		}
	}
}

func TestSendBlocksWhenBufferFull(t *testing.T) {
	sender, st := NewBuilder[int]().BufferSize(1).Build()
	ctx := context.Background()

	if err := sender.Send(ctx, 1); err != nil {
		t.Fatalf("first Send failed: %v", err)
	}

	unblocked := make(chan error, 1)
	go func() {
		unblocked <- sender.Send(ctx, 2)
	}()

	select {
	case err := <-unblocked:
		t.Fatalf("Send on a full buffer returned early: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	item, ok, err := st.Next(ctx)
	if err != nil || !ok || item != 1 {
		t.Fatalf("Next = (%v, %v, %v), want (1, true, nil)", item, ok, err)
	}

	select {
	case err := <-unblocked:
		if err != nil {
			t.Fatalf("blocked Send failed after drain: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Send did not unblock after a slot freed up")
	}

	item, ok, err = st.Next(ctx)
	if err != nil || !ok || item != 2 {
		t.Fatalf("Next = (%v, %v, %v), want (2, true, nil)", item, ok, err)
	}
}

func TestSendAfterStreamClosed(t *testing.T) {
	sender, st := New[int]()
	ctx := context.Background()

	if err := sender.Send(ctx, 1); err != nil {
		t.Fatalf("Send before close failed: %v", err)
	}
	st.Close()

	if err := sender.Send(ctx, 2); !errors.Is(err, ErrClosed) {
		t.Errorf("Send after stream close = %v, want ErrClosed", err)
	}
	if err := sender.TrySend(3); !errors.Is(err, ErrClosed) {
		t.Errorf("TrySend after stream close = %v, want ErrClosed", err)
	}
	if !sender.IsClosed() {
		t.Error("IsClosed = false after stream close")
	}
}

func TestBlockedSendUnblocksOnStreamClose(t *testing.T) {
	sender, st := NewBuilder[int]().BufferSize(1).Build()
	ctx := context.Background()

	if err := sender.Send(ctx, 1); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	result := make(chan error, 1)
	go func() {
		result <- sender.Send(ctx, 2)
	}()

	time.Sleep(20 * time.Millisecond)
	st.Close()

	select {
	case err := <-result:
		if !errors.Is(err, ErrClosed) {
			t.Errorf("blocked Send after stream close = %v, want ErrClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Send did not unblock on stream close")
	}
}

func TestTrySendFull(t *testing.T) {
	sender, _ := NewBuilder[int]().BufferSize(2).Build()

	if err := sender.TrySend(1); err != nil {
		t.Fatalf("TrySend failed: %v", err)
	}
	if err := sender.TrySend(2); err != nil {
		t.Fatalf("TrySend failed: %v", err)
	}
	if err := sender.TrySend(3); !errors.Is(err, ErrFull) {
		t.Errorf("TrySend on full buffer = %v, want ErrFull", err)
	}
}

func TestCloneKeepsStreamOpen(t *testing.T) {
	sender, st := New[int]()
	clone := sender.Clone()
	ctx := context.Background()

	if err := sender.Send(ctx, 1); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	sender.Close()

	if err := clone.Send(ctx, 2); err != nil {
		t.Fatalf("Send from clone after original closed: %v", err)
	}
	clone.Close()

	got, err := st.Collect(ctx)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Collect = %v, want [1 2]", got)
	}
}

func TestCloseIdempotentPerHandle(t *testing.T) {
	sender, st := New[int]()
	clone := sender.Clone()
	ctx := context.Background()

	// Double-closing one handle must not count as two releases.
	sender.Close()
	sender.Close()

	if err := clone.Send(ctx, 7); err != nil {
		t.Fatalf("Send from clone failed: %v", err)
	}
	clone.Close()

	got, err := st.Collect(ctx)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("Collect = %v, want [7]", got)
	}
}

func TestConcurrentProducersAllDelivered(t *testing.T) {
	const producers = 8
	const perProducer = 50

	sender, st := NewBuilder[int]().BufferSize(4).Build()
	ctx := context.Background()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		handle := sender.Clone()
		wg.Add(1)
		go func(h *Sender[int], base int) {
			defer wg.Done()
			defer h.Close()
			for i := 0; i < perProducer; i++ {
				if err := h.Send(ctx, base+i); err != nil {
					t.Errorf("Send failed: %v", err)
					return
				}
			}
		}(handle, p*perProducer)
	}
	sender.Close()

	done := make(chan struct{})
	seen := make(map[int]bool)
	go func() {
		defer close(done)
		for {
			item, ok, err := st.Next(ctx)
			if err != nil {
				t.Errorf("Next failed: %v", err)
				return
			}
			if !ok {
				return
			}
			if seen[item] {
				t.Errorf("duplicate item %d", item)
			}
			seen[item] = true
		}
	}()

	wg.Wait()
	<-done

	if len(seen) != producers*perProducer {
		t.Errorf("received %d items, want %d", len(seen), producers*perProducer)
	}
}

func TestPerSenderOrdering(t *testing.T) {
	sender, st := NewBuilder[int]().BufferSize(10).Build()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if err := sender.Send(ctx, i); err != nil {
			t.Fatalf("Send failed: %v", err)
		}
	}
	sender.Close()

	got, err := st.Collect(ctx)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	for i, item := range got {
		if item != i {
			t.Fatalf("item %d = %d, out of order", i, item)
		}
	}
}

func TestNextContextCancellation(t *testing.T) {
	_, st := New[int]()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, ok, err := st.Next(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Next with cancelled context = %v, want context.Canceled", err)
	}
	if ok {
		t.Error("expected ok=false on context cancellation")
	}
}

func TestSendContextCancellation(t *testing.T) {
	sender, _ := NewBuilder[int]().BufferSize(1).Build()
	ctx := context.Background()

	if err := sender.Send(ctx, 1); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	timed, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()

	if err := sender.Send(timed, 2); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Send with expired context = %v, want context.DeadlineExceeded", err)
	}
}

func TestBuilderClampsBufferSize(t *testing.T) {
	sender, _ := NewBuilder[int]().BufferSize(0).Build()
	if sender.Capacity() != 1 {
		t.Errorf("Capacity = %d after BufferSize(0), want 1", sender.Capacity())
	}

	sender, _ = NewBuilder[int]().BufferSize(-5).Build()
	if sender.Capacity() != 1 {
		t.Errorf("Capacity = %d after BufferSize(-5), want 1", sender.Capacity())
	}

	sender, _ = NewBuilder[int]().BufferSize(32).Build()
	if sender.Capacity() != 32 {
		t.Errorf("Capacity = %d, want 32", sender.Capacity())
	}
}

func TestDrainStopsOnSinkError(t *testing.T) {
	sender, st := New[int]()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		sender.Send(ctx, i)
	}
	sender.Close()

	sinkErr := errors.New("sink failed")
	var got []int
	err := Drain(ctx, st, func(_ context.Context, item int) error {
		if item == 3 {
			return sinkErr
		}
		got = append(got, item)
		return nil
	})
	if !errors.Is(err, sinkErr) {
		t.Fatalf("Drain = %v, want sink error", err)
	}
	if len(got) != 2 {
		t.Errorf("sink received %d items before failing, want 2", len(got))
	}
}

func TestForEach(t *testing.T) {
	sender, st := New[string]()
	ctx := context.Background()

	sender.Send(ctx, "a")
	sender.Send(ctx, "b")
	sender.Close()

	var got []string
	if err := ForEach(ctx, st, func(s string) { got = append(got, s) }); err != nil {
		t.Fatalf("ForEach failed: %v", err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("ForEach collected %v, want [a b]", got)
	}
}

func TestBufferedItemsDrainAfterSenderClose(t *testing.T) {
	sender, st := NewBuilder[int]().BufferSize(10).Build()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		sender.Send(ctx, i)
	}
	sender.Close()

	got, err := st.Collect(ctx)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("drained %d buffered items after close, want 5", len(got))
	}
}

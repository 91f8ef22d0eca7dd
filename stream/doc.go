// Package stream bridges push-style event producers to a pull-style,
// single-consumer sequence over one bounded buffer.
//
// A Sender/Stream pair shares a fixed-capacity queue. Send blocks only when
// the buffer is full (back-pressure) and fails with ErrClosed once the
// consumer has dropped the stream. The stream is a lazy, ordered, single-pass
// sequence in the kit's pull shape: Next blocks until an item arrives or
// every sender handle has been closed, then reports normal completion:
//
//	sender, events := stream.New[Event]()
//
//	go func() {
//	    defer sender.Close()
//	    sender.Send(ctx, Event{Kind: "started"})
//	    sender.Send(ctx, Event{Kind: "done"})
//	}()
//
//	for {
//	    ev, ok, err := events.Next(ctx)
//	    if err != nil || !ok {
//	        break
//	    }
//	    handle(ev)
//	}
//
// Senders may be cloned for concurrent producers; all clones share the same
// buffer and close condition, and the stream ends only after every clone is
// closed. Items from one sender preserve send order; interleavings across
// senders are any valid merge.
//
// # Buffer sizing
//
//	sender, events := stream.NewBuilder[Event]().BufferSize(8).Build()
//
// The default capacity is DefaultBufferSize. Non-positive sizes are clamped
// to 1.
//
// # Fan-out
//
// The bridge is single-consumer by contract. Hub layers multi-subscriber
// fan-out on top: each subscriber owns its own bounded stream, and slow
// subscribers drop events instead of stalling the publisher.
package stream

package events

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPublishRunsEveryHandlerAndJoinsErrors(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")
	calls := 0
	d.Subscribe(EventOrderCreated, func(context.Context, Event) error { calls++; return boom })
	d.Subscribe(EventOrderCreated, func(context.Context, Event) error { calls++; return nil })
	d.Subscribe(EventTicketCreated, func(context.Context, Event) error { t.Fatal("wrong type"); return nil })

	err := d.Publish(context.Background(), New(EventOrderCreated, "order", 1, 2, time.Now(), nil))
	if calls != 2 {
		t.Fatalf("expected both handlers to run, got %d", calls)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined handler error, got %v", err)
	}
}

func TestPublishWithoutListeners(t *testing.T) {
	if err := NewInMemoryDispatcher().Publish(context.Background(), Event{Type: EventPaymentCaptured}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

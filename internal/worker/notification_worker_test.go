package worker

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront/internal/config"
	"github.com/spec-kit/storefront/internal/events"
	"github.com/spec-kit/storefront/internal/service"
)

func TestStartNotificationWorkerSubscribesEveryEvent(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	svc := service.NewNotificationService(dispatcher, zap.NewNop(), config.NotificationConfig{
		EmailFrom:  "noreply@example.com",
		WebhookURL: "http://hooks.local/storefront",
	})

	subscribed := StartNotificationWorker(svc, zap.NewNop())
	if len(subscribed) != 6 {
		t.Fatalf("expected 6 event types, got %d", len(subscribed))
	}
	for _, eventType := range subscribed {
		if err := dispatcher.Publish(context.Background(), events.New(eventType, "order", 1, 2, time.Now(), nil)); err != nil {
			t.Fatalf("%s handler failed: %v", eventType, err)
		}
	}
}

func TestStartNotificationWorkerNil(t *testing.T) {
	if got := StartNotificationWorker(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront/internal/config"
	"github.com/spec-kit/storefront/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events and returns the covered types.
func (n *NotificationService) RegisterHandlers() []events.EventType {
	if n.dispatcher == nil {
		return nil
	}
	handlers := []struct {
		eventType events.EventType
		handler   events.EventHandler
	}{
		{events.EventUserRegistered, n.emailAndWebhook("UserRegistered")},
		{events.EventOrderCreated, n.webhookOnly("OrderCreated")},
		{events.EventOrderStatusChanged, n.webhookOnly("OrderStatusChanged")},
		{events.EventPaymentCaptured, n.emailAndWebhook("PaymentCaptured")},
		{events.EventTicketCreated, n.emailAndWebhook("TicketCreated")},
		{events.EventTicketUpdated, n.webhookOnly("TicketUpdated")},
	}
	subscribed := make([]events.EventType, 0, len(handlers))
	for _, h := range handlers {
		n.dispatcher.Subscribe(h.eventType, h.handler)
		subscribed = append(subscribed, h.eventType)
	}
	return subscribed
}

func (n *NotificationService) emailAndWebhook(name string) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		n.logEvent(name, event)
		n.sendEmailNotificationStub(ctx, event)
		n.sendWebhookNotificationStub(ctx, event)
		return nil
	}
}

func (n *NotificationService) webhookOnly(name string) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		n.logEvent(name, event)
		n.sendWebhookNotificationStub(ctx, event)
		return nil
	}
}

func (n *NotificationService) logEvent(name string, event events.Event) {
	n.logger.Info(name,
		zap.String("event_id", event.ID),
		zap.String("resource", event.Resource),
		zap.Int64("resource_id", event.ResourceID),
		zap.Int64("user_id", event.UserID),
		zap.Any("payload", event.Payload))
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.Int64("user_id", event.UserID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.Int64("resource_id", event.ResourceID),
		zap.String("event_type", string(event.Type)))
}

package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/storefront/internal/events"
	"github.com/spec-kit/storefront/internal/service"
)

// StartNotificationWorker hooks the notification service onto the event
// dispatcher and reports which event types it now handles.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) []events.EventType {
	if notificationService == nil {
		return nil
	}
	subscribed := notificationService.RegisterHandlers()
	types := make([]string, 0, len(subscribed))
	for _, eventType := range subscribed {
		types = append(types, string(eventType))
	}
	if logger != nil {
		logger.Info("notification worker started", zap.Strings("event_types", types))
	}
	return subscribed
}

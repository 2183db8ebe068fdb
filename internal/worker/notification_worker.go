package worker

import (
	"github.com/legalsuite/case-service/internal/events"
	"github.com/legalsuite/case-service/internal/service"
)

// StartNotificationWorker subscribes the notification service to the lawsuit
// lifecycle events. Handlers run synchronously on the publisher's goroutine;
// the dispatcher isolates their failures from the publishing request.
func StartNotificationWorker(dispatcher events.Dispatcher, notifications *service.NotificationService) {
	if dispatcher == nil || notifications == nil {
		return
	}
	dispatcher.Subscribe(events.EventLawsuitCreated, notifications.HandleLawsuitCreated)
	dispatcher.Subscribe(events.EventLawsuitAssigned, notifications.HandleLawsuitAssigned)
	dispatcher.Subscribe(events.EventLawsuitResolved, notifications.HandleLawsuitResolved)
}

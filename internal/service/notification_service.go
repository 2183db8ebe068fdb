package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/legalsuite/case-service/internal/config"
	"github.com/legalsuite/case-service/internal/events"
)

// NotificationService turns lawsuit lifecycle events into notifications.
// Email and webhook delivery are stubs gated on configuration.
type NotificationService struct {
	logger *zap.Logger
	cfg    config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{logger: logger, cfg: cfg}
}

// HandleLawsuitCreated reacts to a newly filed lawsuit.
func (n *NotificationService) HandleLawsuitCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("LawsuitCreated", zap.String("lawsuit_id", event.LawsuitID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

// HandleLawsuitAssigned reacts to a lawyer assignment. The assigned lawyer is
// the one party that gets an email.
func (n *NotificationService) HandleLawsuitAssigned(ctx context.Context, event events.Event) error {
	n.logger.Info("LawsuitAssigned", zap.String("lawsuit_id", event.LawsuitID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

// HandleLawsuitResolved reacts to a lawsuit reaching its terminal state.
func (n *NotificationService) HandleLawsuitResolved(ctx context.Context, event events.Event) error {
	n.logger.Info("LawsuitResolved", zap.String("lawsuit_id", event.LawsuitID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("lawsuit_id", event.LawsuitID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("lawsuit_id", event.LawsuitID),
		zap.String("event_type", string(event.Type)))
}

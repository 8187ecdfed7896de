package services

import (
	"context"
	"net/http"

	"github.com/skillotech/ambassador-api/internal/client"
	"github.com/skillotech/ambassador-api/internal/config"
	"github.com/skillotech/ambassador-api/internal/logger"
	"github.com/skillotech/ambassador-api/internal/models"
	"github.com/skillotech/ambassador-api/internal/storage"
	"go.uber.org/zap"
)

type NotifyService interface {
	GetQueuedNotifications(ctx context.Context, limit int) ([]models.NotificationData, error)
	SendNotification(ctx context.Context, notification models.NotificationData) error
}

type Notify struct {
	Storage storage.IStorage
	Mail    client.MailService
	Limiter *client.RateLimiter
}

// Создание сервиса
func NewNotify(cfg config.Config, storage storage.IStorage) *Notify {
	return &Notify{
		Storage: storage,
		Mail:    client.NewClient(cfg.Notify.MailAddr, &http.Client{}),
		Limiter: client.NewRateLimiter(),
	}
}

// GetQueuedNotifications захватывает пачку уведомлений из очереди
func (s *Notify) GetQueuedNotifications(ctx context.Context, limit int) ([]models.NotificationData, error) {
	return s.Storage.ClaimNotificationsForSending(ctx, limit)
}

// SendNotification - отправка одного уведомления через почтовый шлюз.
// Результат фиксируется в очереди, неудачная отправка будет повторена.
func (s *Notify) SendNotification(ctx context.Context, notification models.NotificationData) error {
	if err := s.Limiter.Wait(ctx); err != nil {
		return err
	}

	message := client.Message{
		To:      notification.Recipient,
		Subject: notification.Subject,
		Body:    notification.Body,
	}

	if err := s.Mail.Send(ctx, message); err != nil {
		// проверка большого количества запросов
		if rateLimitErr, ok := err.(*client.RateLimitError); ok {
			logger.Warn("Too many requests to mail gateway:", notification.ID)
			s.Limiter.BlockFor(rateLimitErr.RetryAfter)
		}
		if markErr := s.Storage.MarkNotificationFailed(ctx, notification.ID); markErr != nil {
			logger.Error("Failed to mark notification failed", zap.Error(markErr))
		}
		return err
	}

	return s.Storage.MarkNotificationSent(ctx, notification.ID)
}

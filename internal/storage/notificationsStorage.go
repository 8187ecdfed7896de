package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skillotech/ambassador-api/internal/models"
)

const (
	InsertNotification = `INSERT INTO NOTIFICATIONS (id, recipient, subject, body, status, retry_count, created_at)
						  VALUES ($1, $2, $3, $4, 'QUEUED', 0, NOW());`

	// Захват пачки уведомлений для отправки: строки блокируются, чтобы
	// несколько воркеров не отправили одно письмо дважды
	ClaimNotifications = `UPDATE NOTIFICATIONS
						  SET status = 'SENDING',
						      retry_count = retry_count + 1
						  WHERE id IN (
						      SELECT id FROM NOTIFICATIONS
						      WHERE status = 'QUEUED' OR (status = 'SENDING' AND retry_count < 3)
						      ORDER BY created_at
						      LIMIT $1
						      FOR UPDATE SKIP LOCKED
						  )
						  RETURNING id, recipient, subject, body, status, created_at, sent_at;`

	MarkNotificationSent   = `UPDATE NOTIFICATIONS SET status = 'SENT', sent_at = NOW() WHERE id = $1;`
	MarkNotificationFailed = `UPDATE NOTIFICATIONS SET status = 'FAILED' WHERE id = $1 AND retry_count >= 3;`
	RequeueNotification    = `UPDATE NOTIFICATIONS SET status = 'QUEUED' WHERE id = $1 AND retry_count < 3;`
)

type NotificationDatabase struct {
	DB *Database
}

// Создание хранилища
func NewNotificationsStorage(db *Database) NotificationsStorage {
	return &NotificationDatabase{DB: db}
}

func (s *NotificationDatabase) AddNotification(ctx context.Context, recipient string, subject string, body string) error {
	_, err := s.DB.Pool.Exec(ctx, InsertNotification, uuid.New().String(), recipient, subject, body)
	if err != nil {
		return fmt.Errorf("failed to add notification: %w", err)
	}
	return nil
}

func (s *NotificationDatabase) ClaimNotificationsForSending(ctx context.Context, count int) ([]models.NotificationData, error) {
	var notifications []models.NotificationData
	rows, err := s.DB.Pool.Query(ctx, ClaimNotifications, count)
	if err != nil {
		return nil, fmt.Errorf("failed to claim notifications: %w", err)
	}
	for rows.Next() {
		var (
			notification models.NotificationData
			sentAt       *time.Time
		)
		err := rows.Scan(&notification.ID, &notification.Recipient, &notification.Subject,
			&notification.Body, &notification.Status, &notification.CreatedAt, &sentAt)
		if err != nil {
			return notifications, fmt.Errorf("failed scan notification data: %w", err)
		}
		notification.SentAt = sentAt
		notifications = append(notifications, notification)
	}
	return notifications, err
}

func (s *NotificationDatabase) MarkNotificationSent(ctx context.Context, id string) error {
	_, err := s.DB.Pool.Exec(ctx, MarkNotificationSent, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification sent: %w", err)
	}
	return nil
}

// MarkNotificationFailed - неудачная отправка: уведомление возвращается в
// очередь, пока не исчерпан лимит попыток
func (s *NotificationDatabase) MarkNotificationFailed(ctx context.Context, id string) error {
	if _, err := s.DB.Pool.Exec(ctx, RequeueNotification, id); err != nil {
		return fmt.Errorf("failed to requeue notification: %w", err)
	}
	if _, err := s.DB.Pool.Exec(ctx, MarkNotificationFailed, id); err != nil {
		return fmt.Errorf("failed to mark notification failed: %w", err)
	}
	return nil
}

package services

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/skillotech/ambassador-api/internal/client"
	clientmocks "github.com/skillotech/ambassador-api/internal/client/mocks"
	"github.com/skillotech/ambassador-api/internal/config"
	"github.com/skillotech/ambassador-api/internal/logger"
	"github.com/skillotech/ambassador-api/internal/models"
	"github.com/skillotech/ambassador-api/internal/storage/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"
)

func TestNotifyService_SendNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)
	mockHTTP := clientmocks.NewMockHTTPClient(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	notify := &Notify{
		Storage: mockStorage,
		Mail:    client.NewClient("http://localhost:9090", mockHTTP),
		Limiter: client.NewRateLimiter(),
	}

	notification := models.NotificationData{
		ID:        "ntf-1",
		Recipient: "amb@example.com",
		Subject:   "Ambassador Application Approved",
		Body:      "Hello Amb One, your ambassador application has been approved. You can now log in.",
		Status:    models.NotificationStatusSending,
	}

	makeResponse := func(code int, header http.Header) *http.Response {
		return &http.Response{
			StatusCode: code,
			Header:     header,
			Body:       io.NopCloser(strings.NewReader("")),
		}
	}

	testCases := []struct {
		Name          string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name: "Success. Gateway accepted the message #1",
			SetupMocks: func() {
				mockHTTP.EXPECT().Do(gomock.Any()).Return(makeResponse(http.StatusAccepted, http.Header{}), nil)
				mockStorage.EXPECT().MarkNotificationSent(gomock.Any(), "ntf-1").Return(nil)
			},
			ExpectedError: nil,
		},
		{
			Name: "Error. Gateway rejected the message #2",
			SetupMocks: func() {
				mockHTTP.EXPECT().Do(gomock.Any()).Return(makeResponse(http.StatusBadRequest, http.Header{}), nil)
				mockStorage.EXPECT().MarkNotificationFailed(gomock.Any(), "ntf-1").Return(nil)
			},
			ExpectedError: client.ErrMessageRejected,
		},
		{
			Name: "Error. Gateway unavailable #3",
			SetupMocks: func() {
				mockHTTP.EXPECT().Do(gomock.Any()).Return(makeResponse(http.StatusInternalServerError, http.Header{}), nil)
				mockStorage.EXPECT().MarkNotificationFailed(gomock.Any(), "ntf-1").Return(nil)
			},
			ExpectedError: client.ErrServiceUnavailable,
		},
		{
			Name: "Error. Too many requests #4",
			SetupMocks: func() {
				header := http.Header{}
				header.Set("Retry-After", "1")
				mockHTTP.EXPECT().Do(gomock.Any()).Return(makeResponse(http.StatusTooManyRequests, header), nil)
				mockStorage.EXPECT().MarkNotificationFailed(gomock.Any(), "ntf-1").Return(nil)
			},
			ExpectedError: client.NewRateLimitError(http.Header{"Retry-After": []string{"1"}}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()
			// лимитер мог быть заблокирован предыдущим кейсом
			notify.Limiter.Update(rate.Inf, 1)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := notify.SendNotification(ctx, notification)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestNotifyService_GetQueuedNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	notify := &Notify{
		Storage: mockStorage,
		Limiter: client.NewRateLimiter(),
	}

	expected := []models.NotificationData{
		{ID: "ntf-1", Recipient: "amb@example.com", Status: models.NotificationStatusSending},
		{ID: "ntf-2", Recipient: "admin@example.com", Status: models.NotificationStatusSending},
	}
	mockStorage.EXPECT().ClaimNotificationsForSending(gomock.Any(), 10).Return(expected, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	notifications, err := notify.GetQueuedNotifications(ctx, 10)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if len(notifications) != len(expected) {
		t.Errorf("Expected %d notifications, got: %d", len(expected), len(notifications))
	}
}

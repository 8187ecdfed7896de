package worker

import (
	"context"
	"sync"
	"time"

	"github.com/skillotech/ambassador-api/internal/config"
	"github.com/skillotech/ambassador-api/internal/logger"
	"github.com/skillotech/ambassador-api/internal/services"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "mail-gateway",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до шлюза
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// NotifyWorker - фоновый воркер отправки почтовых уведомлений
type NotifyWorker struct {
	Notify       services.NotifyService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	BatchSize    int
	PollInterval time.Duration
}

// NewNotifyWorker - конструктор обработчика очереди уведомлений
func NewNotifyWorker(cfg config.NotifyConfig, notify services.NotifyService) *NotifyWorker {
	return &NotifyWorker{
		Notify:       notify,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		BatchSize:    cfg.BatchSize,
		PollInterval: cfg.PollInterval,
	}
}

// Start - запускает воркер в фоне
func (w *NotifyWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *NotifyWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *NotifyWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("NotifyWorker signal stop")
			return
		case <-ticker.C:
			w.ProcessNotifications(ctx)
		}
	}
}

// ProcessNotifications - отправка пачки уведомлений из очереди
func (w *NotifyWorker) ProcessNotifications(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("%s unavailable. Waiting...", w.Breaker.Name())
		return
	}

	notifications, err := w.Notify.GetQueuedNotifications(ctx, w.BatchSize)

	if err != nil {
		logger.Error("error get notifications for sending", err)
		return
	}

	for _, notification := range notifications {
		_, err := w.Breaker.Execute(func() (interface{}, error) {
			return nil, w.Notify.SendNotification(ctx, notification)
		})

		if err != nil {
			logger.Error("Error notification sending", err)
		}
	}
}

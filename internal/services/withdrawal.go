package services

import (
	"context"
	"errors"

	"github.com/skillotech/ambassador-api/internal/logger"
	"github.com/skillotech/ambassador-api/internal/models"
	"github.com/skillotech/ambassador-api/internal/storage"
	"go.uber.org/zap"
)

var (
	ErrInvalidWithdrawalCount = errors.New("invalid withdrawal count")
)

type WithdrawalService interface {
	Request(ctx context.Context, ambassadorID string, kind models.LedgerKind, count int) (*models.WithdrawalData, error)
	Approve(ctx context.Context, requestID string, kind models.LedgerKind) (*models.WithdrawalData, *models.LedgerData, error)
	Reject(ctx context.Context, requestID string, kind models.LedgerKind) (*models.WithdrawalData, error)
	GetPending(ctx context.Context, kind models.LedgerKind) ([]models.WithdrawalData, error)
}

type Withdrawal struct {
	Storage storage.IStorage
}

// Создание сервиса
func NewWithdrawal(storage storage.IStorage) WithdrawalService {
	return &Withdrawal{Storage: storage}
}

// Request - запрос амбассадора на вывод. Лимиты проверяются в хранилище
// под блокировкой копилки.
func (s *Withdrawal) Request(ctx context.Context, ambassadorID string, kind models.LedgerKind, count int) (*models.WithdrawalData, error) {
	logger.Info("Request withdrawal:", ambassadorID, string(kind))

	if count <= 0 {
		return nil, ErrInvalidWithdrawalCount
	}

	withdrawal, err := s.Storage.AddWithdrawal(ctx, ambassadorID, kind, count)
	if err != nil {
		var nothing *storage.NothingAvailableError
		var limit *storage.WithdrawalLimitError
		if errors.As(err, &nothing) || errors.As(err, &limit) {
			logger.Warn("Withdrawal denied", ambassadorID, err.Error())
			return nil, err
		}
		logger.Error("Failed to add withdrawal", zap.Error(err))
		return nil, err
	}

	return withdrawal, nil
}

// Approve - одобрение запроса администратором, единицы списываются
func (s *Withdrawal) Approve(ctx context.Context, requestID string, kind models.LedgerKind) (*models.WithdrawalData, *models.LedgerData, error) {
	logger.Info("Approve withdrawal:", requestID)

	withdrawal, ledger, err := s.Storage.ApproveWithdrawal(ctx, requestID, kind)
	if err != nil {
		if errors.Is(err, storage.ErrRequestNotFound) || errors.Is(err, storage.ErrRequestProcessed) || errors.Is(err, storage.ErrKindMismatch) {
			logger.Warn("Approve denied", requestID, err.Error())
			return nil, nil, err
		}
		logger.Error("Failed to approve withdrawal", zap.Error(err))
		return nil, nil, err
	}

	return withdrawal, ledger, nil
}

// Reject - отклонение запроса администратором, копилка не меняется
func (s *Withdrawal) Reject(ctx context.Context, requestID string, kind models.LedgerKind) (*models.WithdrawalData, error) {
	logger.Info("Reject withdrawal:", requestID)

	withdrawal, err := s.Storage.RejectWithdrawal(ctx, requestID, kind)
	if err != nil {
		if errors.Is(err, storage.ErrRequestNotFound) || errors.Is(err, storage.ErrRequestProcessed) || errors.Is(err, storage.ErrKindMismatch) {
			logger.Warn("Reject denied", requestID, err.Error())
			return nil, err
		}
		logger.Error("Failed to reject withdrawal", zap.Error(err))
		return nil, err
	}

	return withdrawal, nil
}

// GetPending возвращает необработанные запросы на вывод данного вида
func (s *Withdrawal) GetPending(ctx context.Context, kind models.LedgerKind) ([]models.WithdrawalData, error) {
	withdrawals, err := s.Storage.GetPendingWithdrawals(ctx, kind)
	if err != nil {
		logger.Error("Failed to get pending withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

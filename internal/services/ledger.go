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
	ErrInvalidCreditRequest = errors.New("email and a positive count are required")
	ErrInvalidCount         = errors.New("invalid count")
)

type LedgerService interface {
	Credit(ctx context.Context, kind models.LedgerKind, request models.CreditRequest) (*models.LedgerData, error)
	GetOwn(ctx context.Context, ambassadorID string, kind models.LedgerKind) (*models.LedgerData, error)
	GetAll(ctx context.Context, kind models.LedgerKind) ([]models.LedgerData, error)
	Get(ctx context.Context, id string, kind models.LedgerKind) (*models.LedgerData, error)
	Update(ctx context.Context, id string, kind models.LedgerKind, request models.LedgerUpdateRequest) (*models.LedgerData, error)
}

type Ledger struct {
	Storage storage.IStorage
}

// Создание сервиса
func NewLedger(storage storage.IStorage) LedgerService {
	return &Ledger{Storage: storage}
}

// Credit - начисление заработанных единиц амбассадору по его почте
func (s *Ledger) Credit(ctx context.Context, kind models.LedgerKind, request models.CreditRequest) (*models.LedgerData, error) {
	logger.Info("Credit:", request.Email, string(kind))

	if request.Email == "" || request.Count <= 0 {
		return nil, ErrInvalidCreditRequest
	}

	ambassador, err := s.Storage.GetAmbassadorByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, storage.ErrAmbassadorNotFound) {
			logger.Warn("Ambassador not found", request.Email)
			return nil, storage.ErrAmbassadorNotFound
		}
		logger.Error("Error getting ambassador", zap.Error(err))
		return nil, err
	}

	ledger, err := s.Storage.Credit(ctx, ambassador.ID, kind, request.Count)
	if err != nil {
		logger.Error("Failed to credit ledger", zap.Error(err))
		return nil, err
	}
	ledger.Ambassador = ambassador.Ref()

	return ledger, nil
}

// GetOwn возвращает копилку амбассадора по его идентификатору
func (s *Ledger) GetOwn(ctx context.Context, ambassadorID string, kind models.LedgerKind) (*models.LedgerData, error) {
	ledger, err := s.Storage.GetLedgerByAmbassador(ctx, ambassadorID, kind)
	if err != nil {
		if errors.Is(err, storage.ErrLedgerNotFound) {
			logger.Warn("Ledger not found", ambassadorID)
			return nil, storage.ErrLedgerNotFound
		}
		logger.Error("Failed to get ledger", zap.Error(err))
		return nil, err
	}
	return ledger, nil
}

// GetAll возвращает все копилки данного вида
func (s *Ledger) GetAll(ctx context.Context, kind models.LedgerKind) ([]models.LedgerData, error) {
	ledgers, err := s.Storage.GetLedgers(ctx, kind)
	if err != nil {
		logger.Error("Failed to get ledgers", zap.Error(err))
		return nil, err
	}
	return ledgers, nil
}

// Get возвращает копилку по её идентификатору
func (s *Ledger) Get(ctx context.Context, id string, kind models.LedgerKind) (*models.LedgerData, error) {
	ledger, err := s.Storage.GetLedger(ctx, id, kind)
	if err != nil {
		if errors.Is(err, storage.ErrLedgerNotFound) {
			logger.Warn("Ledger not found", id)
			return nil, storage.ErrLedgerNotFound
		}
		logger.Error("Failed to get ledger", zap.Error(err))
		return nil, err
	}
	return ledger, nil
}

// Update - административная корректировка копилки. Контактные данные и
// число заработанных единиц меняются независимо друг от друга.
func (s *Ledger) Update(ctx context.Context, id string, kind models.LedgerKind, request models.LedgerUpdateRequest) (*models.LedgerData, error) {
	logger.Info("Update ledger:", id)

	if request.Count != nil && *request.Count < 0 {
		return nil, ErrInvalidCount
	}

	ledger, err := s.Storage.GetLedger(ctx, id, kind)
	if err != nil {
		if errors.Is(err, storage.ErrLedgerNotFound) {
			logger.Warn("Ledger not found", id)
			return nil, storage.ErrLedgerNotFound
		}
		logger.Error("Failed to get ledger", zap.Error(err))
		return nil, err
	}

	if request.AmbassadorName != "" || request.Email != "" {
		if err = s.Storage.UpdateAmbassadorContact(ctx, ledger.AmbassadorID, request.AmbassadorName, request.Email); err != nil {
			logger.Error("Failed to update contact", zap.Error(err))
			return nil, err
		}
	}

	if request.Count != nil {
		ledger, err = s.Storage.SetEarned(ctx, id, kind, *request.Count)
		if err != nil {
			logger.Error("Failed to set earned", zap.Error(err))
			return nil, err
		}
		return ledger, nil
	}

	return s.Storage.GetLedger(ctx, id, kind)
}

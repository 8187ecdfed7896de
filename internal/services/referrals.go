package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/skillotech/ambassador-api/internal/logger"
	"github.com/skillotech/ambassador-api/internal/models"
	"github.com/skillotech/ambassador-api/internal/storage"
	"go.uber.org/zap"
)

var (
	ErrInvalidReferral       = errors.New("activity type is required")
	ErrInvalidReviewStatus   = errors.New("invalid review status")
	ErrReferralReviewedTwice = errors.New("referral already reviewed")
)

type ReferralService interface {
	Submit(ctx context.Context, ambassadorID string, request models.ReferralRequest) (*models.ReferralData, error)
	GetOwn(ctx context.Context, ambassadorID string) ([]models.ReferralData, error)
	GetAll(ctx context.Context) ([]models.ReferralData, error)
	Get(ctx context.Context, id string) (*models.ReferralData, error)
	Review(ctx context.Context, id string, status string, reason string) (*models.ReferralData, error)
}

type Referrals struct {
	Storage storage.IStorage
}

// Создание сервиса
func NewReferrals(storage storage.IStorage) ReferralService {
	return &Referrals{Storage: storage}
}

// Submit - амбассадор отправляет отчёт о реферальной активности
func (s *Referrals) Submit(ctx context.Context, ambassadorID string, request models.ReferralRequest) (*models.ReferralData, error) {
	logger.Info("Submit referral:", ambassadorID)

	if request.ActivityType == "" {
		return nil, ErrInvalidReferral
	}

	referral := models.ReferralData{
		ID:                    uuid.New().String(),
		AmbassadorID:          ambassadorID,
		ActivityType:          request.ActivityType,
		Campaign:              request.Campaign,
		Notes:                 request.Notes,
		WhatsappGroupsShared:  request.WhatsappGroupsShared,
		StudentsGathered:      request.StudentsGathered,
		GoogleFormSubmissions: request.GoogleFormSubmissions,
		ReferralLink:          request.ReferralLink,
		Proofs:                request.Proofs,
		Status:                models.AmbassadorStatusPending,
	}

	added, err := s.Storage.AddReferral(ctx, referral)
	if err != nil {
		logger.Error("Failed to add referral", zap.Error(err))
		return nil, err
	}
	return added, nil
}

// GetOwn возвращает отчёты амбассадора
func (s *Referrals) GetOwn(ctx context.Context, ambassadorID string) ([]models.ReferralData, error) {
	referrals, err := s.Storage.GetReferralsByAmbassador(ctx, ambassadorID)
	if err != nil {
		logger.Error("Failed to get referrals", zap.Error(err))
		return nil, err
	}
	return referrals, nil
}

// GetAll возвращает все отчёты для администратора
func (s *Referrals) GetAll(ctx context.Context) ([]models.ReferralData, error) {
	referrals, err := s.Storage.GetReferrals(ctx)
	if err != nil {
		logger.Error("Failed to get referrals", zap.Error(err))
		return nil, err
	}
	return referrals, nil
}

// Get возвращает отчёт по идентификатору
func (s *Referrals) Get(ctx context.Context, id string) (*models.ReferralData, error) {
	referral, err := s.Storage.GetReferral(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrReferralNotFound) {
			logger.Warn("Referral not found", id)
			return nil, storage.ErrReferralNotFound
		}
		logger.Error("Failed to get referral", zap.Error(err))
		return nil, err
	}
	return referral, nil
}

// Review - модерация отчёта администратором
func (s *Referrals) Review(ctx context.Context, id string, status string, reason string) (*models.ReferralData, error) {
	logger.Info("Review referral:", id, status)

	if status != models.AmbassadorStatusApproved && status != models.AmbassadorStatusRejected {
		return nil, ErrInvalidReviewStatus
	}

	referral, err := s.Storage.GetReferral(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrReferralNotFound) {
			logger.Warn("Referral not found", id)
			return nil, storage.ErrReferralNotFound
		}
		logger.Error("Failed to get referral", zap.Error(err))
		return nil, err
	}

	if referral.Status != models.AmbassadorStatusPending {
		logger.Warn("Referral already reviewed", id)
		return nil, ErrReferralReviewedTwice
	}

	reviewed, err := s.Storage.ReviewReferral(ctx, id, status, reason)
	if err != nil {
		logger.Error("Failed to review referral", zap.Error(err))
		return nil, err
	}
	return reviewed, nil
}

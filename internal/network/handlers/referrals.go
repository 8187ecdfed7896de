package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skillotech/ambassador-api/internal/helpers"
	"github.com/skillotech/ambassador-api/internal/logger"
	"github.com/skillotech/ambassador-api/internal/models"
	"github.com/skillotech/ambassador-api/internal/services"
	"github.com/skillotech/ambassador-api/internal/storage"
	"go.uber.org/zap"
)

// SubmitReferralHandler — отчёт амбассадора о реферальной активности
func SubmitReferralHandler(s services.ReferralService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := helpers.GetSubject(r.Context())
		if err != nil {
			logger.Warn("Failed to get subject:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		var request models.ReferralRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		referral, err := s.Submit(r.Context(), subject, request)
		if err != nil {
			if errors.Is(err, services.ErrInvalidReferral) {
				http.Error(w, "Activity type is required", http.StatusBadRequest)
			} else {
				logger.Error("Failed to submit referral:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err = json.NewEncoder(w).Encode(models.NewReferralResponse(*referral)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetOwnReferralsHandler — отчёты авторизованного амбассадора
func GetOwnReferralsHandler(s services.ReferralService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := helpers.GetSubject(r.Context())
		if err != nil {
			logger.Warn("Failed to get subject:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		referrals, err := s.GetOwn(r.Context(), subject)
		if err != nil {
			logger.Error("Failed to get referrals:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		var response []models.ReferralResponse
		for _, referral := range referrals {
			response = append(response, models.NewReferralResponse(referral))
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetReferralsHandler — все отчёты для администратора
func GetReferralsHandler(s services.ReferralService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		referrals, err := s.GetAll(r.Context())
		if err != nil {
			logger.Error("Failed to get referrals:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		var response []models.ReferralResponse
		for _, referral := range referrals {
			response = append(response, models.NewReferralResponse(referral))
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetReferralHandler — отчёт по идентификатору
func GetReferralHandler(s services.ReferralService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		referral, err := s.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrReferralNotFound) {
				http.Error(w, "Referral not found", http.StatusNotFound)
			} else {
				logger.Error("Failed to get referral:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(models.NewReferralResponse(*referral)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// ReviewReferralHandler — модерация отчёта администратором
func ReviewReferralHandler(s services.ReferralService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var request models.ReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		referral, err := s.Review(r.Context(), id, request.Status, request.Reason)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidReviewStatus):
				http.Error(w, "Invalid review status", http.StatusBadRequest)
			case errors.Is(err, services.ErrReferralReviewedTwice):
				http.Error(w, "Referral already reviewed", http.StatusBadRequest)
			case errors.Is(err, storage.ErrReferralNotFound):
				http.Error(w, "Referral not found", http.StatusNotFound)
			default:
				logger.Error("Failed to review referral:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(models.NewReferralResponse(*referral)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

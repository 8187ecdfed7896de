package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skillotech/ambassador-api/internal/helpers"
	"github.com/skillotech/ambassador-api/internal/logger"
	"github.com/skillotech/ambassador-api/internal/models"
	"github.com/skillotech/ambassador-api/internal/services"
	"github.com/skillotech/ambassador-api/internal/storage"
	"go.uber.org/zap"
)

// SendOtpHandler — отправка кода подтверждения на почту
func SendOtpHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.OtpRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err := i.SendOtp(r.Context(), request.Email); err != nil {
			if errors.Is(err, services.ErrInvalidEmail) {
				http.Error(w, "Invalid email address", http.StatusBadRequest)
			} else {
				logger.Error("Error sending OTP", zap.Error(err))
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

// VerifyOtpHandler — проверка кода подтверждения
func VerifyOtpHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.OtpVerifyRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err := i.VerifyOtp(r.Context(), request.Email, request.Otp); err != nil {
			if errors.Is(err, services.ErrInvalidOtp) {
				logger.Warn("Invalid OTP", request.Email)
				http.Error(w, "Invalid or expired OTP", http.StatusBadRequest)
			} else {
				logger.Error("Error verifying OTP", zap.Error(err))
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

// RegisterAmbassadorHandler — подача заявки на регистрацию амбассадора
func RegisterAmbassadorHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		ambassador, err := i.Register(r.Context(), request)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidEmail):
				http.Error(w, "Invalid email address", http.StatusBadRequest)
			case errors.Is(err, services.ErrOtpNotVerified):
				http.Error(w, "Email is not verified", http.StatusBadRequest)
			case errors.Is(err, services.ErrAmbassadorAlreadyExists):
				logger.Warn("Error register ambassador", request.Email)
				http.Error(w, "Email already registered", http.StatusConflict)
			default:
				logger.Error("Error register ambassador", zap.Error(err))
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		logger.Info("Ambassador registered", request.Email)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err = json.NewEncoder(w).Encode(models.NewProfileResponse(ambassador)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// AuthenticateAmbassadorHandler — аутентификация амбассадора
func AuthenticateAmbassadorHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		token, ambassador, err := i.Login(r.Context(), request)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				logger.Warn("Authentication failed", request.Email)
				http.Error(w, "Invalid email or password", http.StatusUnauthorized)
			case errors.Is(err, services.ErrNotApproved):
				http.Error(w, "Application is not approved yet", http.StatusForbidden)
			default:
				logger.Error("Error authenticate ambassador", zap.Error(err))
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Authorization", "Bearer "+token)
		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(models.NewProfileResponse(ambassador)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetProfileHandler — профиль авторизованного амбассадора
func GetProfileHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := helpers.GetSubject(r.Context())
		if err != nil {
			logger.Warn("Failed to get subject:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		ambassador, err := i.GetProfile(r.Context(), subject)
		if err != nil {
			if errors.Is(err, storage.ErrAmbassadorNotFound) {
				http.Error(w, "Ambassador not found", http.StatusNotFound)
			} else {
				logger.Error("Failed to get profile:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(models.NewProfileResponse(ambassador)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// UpdateProfileHandler — обновление профиля амбассадора
func UpdateProfileHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := helpers.GetSubject(r.Context())
		if err != nil {
			logger.Warn("Failed to get subject:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		var request models.ProfileUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		ambassador, err := i.UpdateProfile(r.Context(), subject, request)
		if err != nil {
			if errors.Is(err, storage.ErrAmbassadorNotFound) {
				http.Error(w, "Ambassador not found", http.StatusNotFound)
			} else {
				logger.Error("Failed to update profile:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(models.NewProfileResponse(ambassador)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// ChangePasswordHandler — смена пароля амбассадора
func ChangePasswordHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := helpers.GetSubject(r.Context())
		if err != nil {
			logger.Warn("Failed to get subject:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		var request models.PasswordChangeRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err = i.ChangePassword(r.Context(), subject, request); err != nil {
			switch {
			case errors.Is(err, services.ErrPasswordMismatch):
				http.Error(w, "Passwords do not match", http.StatusBadRequest)
			case errors.Is(err, services.ErrInvalidCredentials):
				http.Error(w, "Invalid old password", http.StatusBadRequest)
			default:
				logger.Error("Failed to change password:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

// SubmitLinksHandler — сохранение реферальных ссылок амбассадора
func SubmitLinksHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := helpers.GetSubject(r.Context())
		if err != nil {
			logger.Warn("Failed to get subject:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		var request models.LinksRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		ambassador, err := i.SubmitLinks(r.Context(), subject, request)
		if err != nil {
			if errors.Is(err, storage.ErrAmbassadorNotFound) {
				http.Error(w, "Ambassador not found", http.StatusNotFound)
			} else {
				logger.Error("Failed to submit links:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(models.NewProfileResponse(ambassador)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

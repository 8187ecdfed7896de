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

// RegisterAdminHandler — регистрация нового администратора
func RegisterAdminHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.AdminRegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		admin, err := a.Register(r.Context(), request)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidEmail):
				http.Error(w, "Invalid email address", http.StatusBadRequest)
			case errors.Is(err, services.ErrAdminAlreadyExists):
				logger.Warn("Error register admin", request.Email)
				http.Error(w, "Email already registered", http.StatusConflict)
			default:
				logger.Error("Error register admin", zap.Error(err))
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		response := models.AdminResponse{
			ID:       admin.ID,
			FullName: admin.FullName,
			Email:    admin.Email,
			Role:     admin.Role,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err = json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// AuthenticateAdminHandler — аутентификация администратора
func AuthenticateAdminHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		token, admin, err := a.Login(r.Context(), request)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				logger.Warn("Authentication failed", request.Email)
				http.Error(w, "Invalid email or password", http.StatusUnauthorized)
			} else {
				logger.Error("Error authenticate admin", zap.Error(err))
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		response := models.AdminResponse{
			ID:       admin.ID,
			FullName: admin.FullName,
			Email:    admin.Email,
			Role:     admin.Role,
		}

		w.Header().Set("Authorization", "Bearer "+token)
		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetAmbassadorsHandler — заявки амбассадоров в заданном статусе
func GetAmbassadorsHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")
		if status == "" {
			status = models.AmbassadorStatusPending
		}

		ambassadors, err := a.GetAmbassadors(r.Context(), status)
		if err != nil {
			logger.Error("Failed to get ambassadors:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		var response []models.ProfileResponse
		for _, ambassador := range ambassadors {
			response = append(response, models.NewProfileResponse(&ambassador))
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetAmbassadorHandler — заявка амбассадора по идентификатору
func GetAmbassadorHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		ambassador, err := a.GetAmbassador(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrAmbassadorNotFound) {
				http.Error(w, "Ambassador not found", http.StatusNotFound)
			} else {
				logger.Error("Failed to get ambassador:", zap.Error(err))
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

// ApproveAmbassadorHandler — одобрение заявки амбассадора
func ApproveAmbassadorHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		ambassador, err := a.ApproveAmbassador(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrAmbassadorNotFound) {
				http.Error(w, "Ambassador not found", http.StatusNotFound)
			} else {
				logger.Error("Failed to approve ambassador:", zap.Error(err))
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

// RejectAmbassadorHandler — отклонение заявки амбассадора с причиной
func RejectAmbassadorHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		// причина не обязательна, тело может быть пустым
		var request models.RejectRequest
		_ = json.NewDecoder(r.Body).Decode(&request)

		ambassador, err := a.RejectAmbassador(r.Context(), id, request.Reason)
		if err != nil {
			if errors.Is(err, storage.ErrAmbassadorNotFound) {
				http.Error(w, "Ambassador not found", http.StatusNotFound)
			} else {
				logger.Error("Failed to reject ambassador:", zap.Error(err))
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

// AssignFormLinkHandler — закрепление формы за амбассадором
func AssignFormLinkHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var request models.FormLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		ambassador, err := a.AssignFormLink(r.Context(), id, request.FormLink)
		if err != nil {
			if errors.Is(err, storage.ErrAmbassadorNotFound) {
				http.Error(w, "Ambassador not found", http.StatusNotFound)
			} else {
				logger.Error("Failed to assign form link:", zap.Error(err))
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

// AssignActivitiesLinkHandler — закрепление формы отчётов об активностях
func AssignActivitiesLinkHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var request models.ActivitiesLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		ambassador, err := a.AssignActivitiesLink(r.Context(), id, request.ActivitiesLink)
		if err != nil {
			if errors.Is(err, storage.ErrAmbassadorNotFound) {
				http.Error(w, "Ambassador not found", http.StatusNotFound)
			} else {
				logger.Error("Failed to assign activities link:", zap.Error(err))
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

// ForgotPasswordHandler — запрос кода сброса пароля администратора
func ForgotPasswordHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.OtpRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err := a.ForgotPassword(r.Context(), request.Email); err != nil {
			if errors.Is(err, storage.ErrAdminNotFound) {
				http.Error(w, "Admin not found", http.StatusNotFound)
			} else {
				logger.Error("Failed to request password reset:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

// ResetPasswordHandler — установка нового пароля администратора по коду
func ResetPasswordHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err := a.ResetPassword(r.Context(), request); err != nil {
			switch {
			case errors.Is(err, services.ErrPasswordMismatch):
				http.Error(w, "Passwords do not match", http.StatusBadRequest)
			case errors.Is(err, services.ErrInvalidResetOtp):
				http.Error(w, "Invalid or expired reset OTP", http.StatusBadRequest)
			default:
				logger.Error("Failed to reset password:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

// ChangeAdminPasswordHandler — смена пароля администратора
func ChangeAdminPasswordHandler(a services.AdminService) http.HandlerFunc {
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

		if err = a.ChangePassword(r.Context(), subject, request); err != nil {
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

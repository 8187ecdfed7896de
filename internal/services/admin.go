package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/skillotech/ambassador-api/internal/config"
	"github.com/skillotech/ambassador-api/internal/logger"
	"github.com/skillotech/ambassador-api/internal/models"
	"github.com/skillotech/ambassador-api/internal/storage"
	"github.com/skillotech/ambassador-api/internal/validators"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAdminAlreadyExists = errors.New("admin already exists")
	ErrInvalidResetOtp    = errors.New("invalid or expired reset OTP")
)

// ResetOtpExpirationTime - срок жизни кода сброса пароля администратора
const ResetOtpExpirationTime = 10 * time.Minute

type AdminService interface {
	Register(ctx context.Context, request models.AdminRegisterRequest) (*models.AdminData, error)
	Login(ctx context.Context, request models.LoginRequest) (string, *models.AdminData, error)
	GetAmbassadors(ctx context.Context, status string) ([]models.AmbassadorData, error)
	GetAmbassador(ctx context.Context, id string) (*models.AmbassadorData, error)
	ApproveAmbassador(ctx context.Context, id string) (*models.AmbassadorData, error)
	RejectAmbassador(ctx context.Context, id string, reason string) (*models.AmbassadorData, error)
	AssignFormLink(ctx context.Context, id string, formLink string) (*models.AmbassadorData, error)
	AssignActivitiesLink(ctx context.Context, id string, activitiesLink string) (*models.AmbassadorData, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request models.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, id string, request models.PasswordChangeRequest) error
}

type Admin struct {
	JWTAuth *jwtauth.JWTAuth
	Storage storage.IStorage
}

// Создание сервиса
func NewAdmin(cfg config.Config, storage storage.IStorage) *Admin {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Admin{JWTAuth: tokenAuth, Storage: storage}
}

// Регистрация нового администратора
func (a *Admin) Register(ctx context.Context, request models.AdminRegisterRequest) (*models.AdminData, error) {
	logger.Info("Register admin:", request.Email)

	if !validators.CheckEmail(request.Email) {
		return nil, ErrInvalidEmail
	}

	role := request.Role
	if role != models.RoleSuperAdmin {
		role = models.RoleAdmin
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", zap.Error(err))
		return nil, err
	}

	admin := models.AdminData{
		ID:           uuid.New().String(),
		FullName:     request.FullName,
		Email:        request.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err = a.Storage.AddAdmin(ctx, admin); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warn("Admin already exist", request.Email)
			return nil, ErrAdminAlreadyExists
		}
		logger.Error("Error registering admin", request.Email, zap.Error(err))
		return nil, err
	}
	return &admin, nil
}

// Аутентификация администратора
func (a *Admin) Login(ctx context.Context, request models.LoginRequest) (string, *models.AdminData, error) {
	logger.Info("Authenticate admin:", request.Email)

	admin, err := a.Storage.GetAdminByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, storage.ErrAdminNotFound) {
			logger.Warn("Admin not found", request.Email)
			return "", nil, ErrInvalidCredentials
		}
		logger.Error("Error getting admin", zap.Error(err))
		return "", nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(request.Password)); err != nil {
		logger.Warn("Invalid password", request.Email)
		return "", nil, ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(TokenExpirationTime)
	_, token, err := a.JWTAuth.Encode(map[string]interface{}{
		"sub":  admin.ID,
		"role": admin.Role,
		"exp":  expirationTime,
	})
	if err != nil {
		logger.Error("Error generating token", zap.Error(err))
		return "", nil, err
	}

	logger.Info("Admin authenticated", request.Email)
	return token, admin, nil
}

// GetAmbassadors возвращает заявки амбассадоров в заданном статусе
func (a *Admin) GetAmbassadors(ctx context.Context, status string) ([]models.AmbassadorData, error) {
	ambassadors, err := a.Storage.GetAmbassadorsByStatus(ctx, status)
	if err != nil {
		logger.Error("Failed to get ambassadors", zap.Error(err))
		return nil, err
	}
	return ambassadors, nil
}

// GetAmbassador возвращает заявку амбассадора по идентификатору
func (a *Admin) GetAmbassador(ctx context.Context, id string) (*models.AmbassadorData, error) {
	ambassador, err := a.Storage.GetAmbassador(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrAmbassadorNotFound) {
			logger.Warn("Ambassador not found", id)
			return nil, storage.ErrAmbassadorNotFound
		}
		logger.Error("Error getting ambassador", zap.Error(err))
		return nil, err
	}
	return ambassador, nil
}

// ApproveAmbassador - одобрение заявки, амбассадору уходит письмо
func (a *Admin) ApproveAmbassador(ctx context.Context, id string) (*models.AmbassadorData, error) {
	logger.Info("Approve ambassador:", id)

	ambassador, err := a.Storage.UpdateAmbassadorStatus(ctx, id, models.AmbassadorStatusApproved)
	if err != nil {
		logger.Error("Error approving ambassador", zap.Error(err))
		return nil, err
	}

	body := fmt.Sprintf("Hello %s, your ambassador application has been approved. You can now log in.", ambassador.FullName)
	if err = a.Storage.AddNotification(ctx, ambassador.Email, "Ambassador Application Approved", body); err != nil {
		logger.Error("Error queueing approval mail", zap.Error(err))
		return nil, err
	}
	return ambassador, nil
}

// RejectAmbassador - отклонение заявки с причиной, амбассадору уходит письмо
func (a *Admin) RejectAmbassador(ctx context.Context, id string, reason string) (*models.AmbassadorData, error) {
	logger.Info("Reject ambassador:", id)

	if reason == "" {
		reason = "Not specified"
	}

	ambassador, err := a.Storage.UpdateAmbassadorStatus(ctx, id, models.AmbassadorStatusRejected)
	if err != nil {
		logger.Error("Error rejecting ambassador", zap.Error(err))
		return nil, err
	}

	body := fmt.Sprintf("Hello %s, your ambassador application has been rejected. Reason: %s", ambassador.FullName, reason)
	if err = a.Storage.AddNotification(ctx, ambassador.Email, "Ambassador Application Rejected", body); err != nil {
		logger.Error("Error queueing rejection mail", zap.Error(err))
		return nil, err
	}
	return ambassador, nil
}

// AssignFormLink - закрепление за амбассадором формы для сбора заявок
func (a *Admin) AssignFormLink(ctx context.Context, id string, formLink string) (*models.AmbassadorData, error) {
	logger.Info("Assign form link:", id)

	ambassador, err := a.Storage.AssignFormLink(ctx, id, formLink)
	if err != nil {
		logger.Error("Error assigning form link", zap.Error(err))
		return nil, err
	}
	return ambassador, nil
}

// AssignActivitiesLink - закрепление за амбассадором формы отчётов об активностях
func (a *Admin) AssignActivitiesLink(ctx context.Context, id string, activitiesLink string) (*models.AmbassadorData, error) {
	logger.Info("Assign activities link:", id)

	ambassador, err := a.Storage.UpdateAmbassadorActivitiesLink(ctx, id, activitiesLink)
	if err != nil {
		logger.Error("Error assigning activities link", zap.Error(err))
		return nil, err
	}
	return ambassador, nil
}

// ForgotPassword - запрос кода сброса пароля администратора
func (a *Admin) ForgotPassword(ctx context.Context, email string) error {
	logger.Info("Forgot password:", email)

	admin, err := a.Storage.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrAdminNotFound) {
			logger.Warn("Admin not found", email)
			return storage.ErrAdminNotFound
		}
		logger.Error("Error getting admin", zap.Error(err))
		return err
	}

	code, err := generateOtp()
	if err != nil {
		logger.Error("Error generating OTP", zap.Error(err))
		return err
	}

	expire := time.Now().Add(ResetOtpExpirationTime)
	if err = a.Storage.SetAdminResetOtp(ctx, admin.ID, code, expire); err != nil {
		logger.Error("Error saving reset OTP", zap.Error(err))
		return err
	}

	body := fmt.Sprintf("Your password reset code is %s. It expires in 10 minutes.", code)
	if err = a.Storage.AddNotification(ctx, admin.Email, "Password Reset OTP", body); err != nil {
		logger.Error("Error queueing reset mail", zap.Error(err))
		return err
	}
	return nil
}

// ResetPassword - установка нового пароля по коду сброса
func (a *Admin) ResetPassword(ctx context.Context, request models.ResetPasswordRequest) error {
	logger.Info("Reset password:", request.Email)

	if request.NewPassword != request.ConfirmPassword {
		return ErrPasswordMismatch
	}

	admin, err := a.Storage.GetAdminByResetOtp(ctx, request.Email, request.Otp)
	if err != nil {
		if errors.Is(err, storage.ErrAdminNotFound) {
			logger.Warn("Reset OTP not found or expired", request.Email)
			return ErrInvalidResetOtp
		}
		logger.Error("Error getting admin by reset OTP", zap.Error(err))
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", zap.Error(err))
		return err
	}

	return a.Storage.UpdateAdminPassword(ctx, admin.ID, string(hashedPassword))
}

// ChangePassword - смена пароля администратора с проверкой старого
func (a *Admin) ChangePassword(ctx context.Context, id string, request models.PasswordChangeRequest) error {
	logger.Info("Change admin password:", id)

	if request.NewPassword != request.ConfirmPassword {
		return ErrPasswordMismatch
	}

	admin, err := a.Storage.GetAdmin(ctx, id)
	if err != nil {
		logger.Error("Error getting admin", zap.Error(err))
		return err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(request.OldPassword)); err != nil {
		logger.Warn("Invalid old password", id)
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", zap.Error(err))
		return err
	}

	return a.Storage.UpdateAdminPassword(ctx, admin.ID, string(hashedPassword))
}

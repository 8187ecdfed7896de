package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
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
	ErrAmbassadorAlreadyExists = errors.New("ambassador already exists")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrNotApproved             = errors.New("application is not approved yet")
	ErrInvalidEmail            = errors.New("invalid email address")
	ErrInvalidOtp              = errors.New("invalid or expired OTP")
	ErrOtpNotVerified          = errors.New("email is not verified")
	ErrPasswordMismatch        = errors.New("passwords do not match")
)

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

type IdentityService interface {
	SendOtp(ctx context.Context, email string) error
	VerifyOtp(ctx context.Context, email string, code string) error
	Register(ctx context.Context, request models.RegisterRequest) (*models.AmbassadorData, error)
	Login(ctx context.Context, request models.LoginRequest) (string, *models.AmbassadorData, error)
	GetProfile(ctx context.Context, id string) (*models.AmbassadorData, error)
	UpdateProfile(ctx context.Context, id string, request models.ProfileUpdateRequest) (*models.AmbassadorData, error)
	ChangePassword(ctx context.Context, id string, request models.PasswordChangeRequest) error
	SubmitLinks(ctx context.Context, id string, request models.LinksRequest) (*models.AmbassadorData, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Storage storage.IStorage
}

// Создание сервиса
func NewIdentity(cfg config.Config, storage storage.IStorage) *Identity {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Storage: storage}
}

// SendOtp - отправка кода подтверждения на почту будущего амбассадора.
// Повторный запрос заменяет предыдущий код.
func (i *Identity) SendOtp(ctx context.Context, email string) error {
	logger.Info("Send OTP:", email)

	if !validators.CheckEmail(email) {
		return ErrInvalidEmail
	}

	code, err := generateOtp()
	if err != nil {
		logger.Error("Error generating OTP", zap.Error(err))
		return err
	}

	if err = i.Storage.ReplaceOtp(ctx, email, code); err != nil {
		logger.Error("Error saving OTP", zap.Error(err))
		return err
	}

	body := fmt.Sprintf("Your verification code is %s. It expires in 5 minutes.", code)
	if err = i.Storage.AddNotification(ctx, email, "Your Verification Code", body); err != nil {
		logger.Error("Error queueing OTP mail", zap.Error(err))
		return err
	}
	return nil
}

// VerifyOtp - проверка кода подтверждения. Код одноразовый, после
// успешной проверки удаляется.
func (i *Identity) VerifyOtp(ctx context.Context, email string, code string) error {
	logger.Info("Verify OTP:", email)

	if !validators.CheckOtp(code) {
		return ErrInvalidOtp
	}

	_, err := i.Storage.GetOtp(ctx, email, code, storage.OtpTTL)
	if err != nil {
		if errors.Is(err, storage.ErrOtpNotFound) {
			logger.Warn("OTP not found or expired", email)
			return ErrInvalidOtp
		}
		logger.Error("Error getting OTP", zap.Error(err))
		return err
	}

	return i.Storage.DeleteOtp(ctx, email)
}

// Регистрация нового амбассадора. Почта должна быть подтверждена кодом.
func (i *Identity) Register(ctx context.Context, request models.RegisterRequest) (*models.AmbassadorData, error) {
	logger.Info("Register ambassador:", request.Email)

	if !validators.CheckEmail(request.Email) {
		return nil, ErrInvalidEmail
	}

	// Живой код в хранилище означает, что проверку никто не прошёл
	pending, err := i.Storage.HasOtp(ctx, request.Email)
	if err != nil {
		logger.Error("Error checking OTP", zap.Error(err))
		return nil, err
	}
	if pending {
		logger.Warn("Email is not verified", request.Email)
		return nil, ErrOtpNotVerified
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", zap.Error(err))
		return nil, err
	}

	ambassador := models.AmbassadorData{
		ID:             uuid.New().String(),
		FullName:       request.FullName,
		Username:       request.Username,
		Email:          request.Email,
		Whatsapp:       request.Whatsapp,
		PasswordHash:   string(hashedPassword),
		Address:        request.Address,
		Documents:      request.Documents,
		DOB:            request.DOB,
		Linkedin:       request.Linkedin,
		CollegeID:      request.CollegeID,
		Course:         request.Course,
		Semester:       request.Semester,
		CompletionYear: request.CompletionYear,
		BankAccount:    request.BankAccount,
		IFSC:           request.IFSC,
		UpiID:          request.UpiID,
		Status:         models.AmbassadorStatusPending,
	}

	if err = i.Storage.AddAmbassador(ctx, ambassador); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warn("Ambassador already exist", request.Email)
			return nil, ErrAmbassadorAlreadyExists
		}
		logger.Error("Error registering ambassador", request.Email, zap.Error(err))
		return nil, err
	}
	return &ambassador, nil
}

// Аутентификация амбассадора. Вход разрешён только одобренным заявкам.
func (i *Identity) Login(ctx context.Context, request models.LoginRequest) (string, *models.AmbassadorData, error) {
	logger.Info("Authenticate ambassador:", request.Email)

	ambassador, err := i.Storage.GetAmbassadorByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, storage.ErrAmbassadorNotFound) {
			logger.Warn("Ambassador not found", request.Email)
			return "", nil, ErrInvalidCredentials
		}
		logger.Error("Error getting ambassador", zap.Error(err))
		return "", nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(ambassador.PasswordHash), []byte(request.Password)); err != nil {
		logger.Warn("Invalid password", request.Email)
		return "", nil, ErrInvalidCredentials
	}

	if ambassador.Status != models.AmbassadorStatusApproved {
		logger.Warn("Application is not approved", request.Email)
		return "", nil, ErrNotApproved
	}

	token, err := i.GenerateJWT(ambassador.ID, models.RoleAmbassador)
	if err != nil {
		logger.Error("Error generating token", zap.Error(err))
		return "", nil, err
	}

	logger.Info("Ambassador authenticated", request.Email)
	return token, ambassador, nil
}

// GetProfile возвращает профиль амбассадора
func (i *Identity) GetProfile(ctx context.Context, id string) (*models.AmbassadorData, error) {
	ambassador, err := i.Storage.GetAmbassador(ctx, id)
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

// UpdateProfile обновляет профиль амбассадора, пустые поля не трогаются
func (i *Identity) UpdateProfile(ctx context.Context, id string, request models.ProfileUpdateRequest) (*models.AmbassadorData, error) {
	logger.Info("Update profile:", id)

	ambassador, err := i.Storage.UpdateAmbassadorProfile(ctx, id, request)
	if err != nil {
		logger.Error("Error updating profile", zap.Error(err))
		return nil, err
	}
	return ambassador, nil
}

// ChangePassword - смена пароля с проверкой старого
func (i *Identity) ChangePassword(ctx context.Context, id string, request models.PasswordChangeRequest) error {
	logger.Info("Change password:", id)

	if request.NewPassword != request.ConfirmPassword {
		return ErrPasswordMismatch
	}

	ambassador, err := i.Storage.GetAmbassador(ctx, id)
	if err != nil {
		logger.Error("Error getting ambassador", zap.Error(err))
		return err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(ambassador.PasswordHash), []byte(request.OldPassword)); err != nil {
		logger.Warn("Invalid old password", id)
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", zap.Error(err))
		return err
	}

	return i.Storage.UpdateAmbassadorPassword(ctx, id, string(hashedPassword))
}

// SubmitLinks - амбассадор сохраняет свои реферальные ссылки
func (i *Identity) SubmitLinks(ctx context.Context, id string, request models.LinksRequest) (*models.AmbassadorData, error) {
	logger.Info("Submit links:", id)

	ambassador, err := i.Storage.UpdateAmbassadorLinks(ctx, id, request.ReferralLink, request.CustomFormLink)
	if err != nil {
		logger.Error("Error updating links", zap.Error(err))
		return nil, err
	}
	return ambassador, nil
}

// Создание строки JWT токена
func (i *Identity) GenerateJWT(subject string, role string) (string, error) {
	expirationTime := time.Now().Add(TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"sub":  subject,
		"role": role,
		"exp":  expirationTime,
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}

// generateOtp - шестизначный код из криптографического источника
func generateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skillotech/ambassador-api/internal/models"
)

type AmbassadorsStorage interface {
	AddAmbassador(ctx context.Context, ambassador models.AmbassadorData) error
	GetAmbassador(ctx context.Context, id string) (*models.AmbassadorData, error)
	GetAmbassadorByEmail(ctx context.Context, email string) (*models.AmbassadorData, error)
	GetAmbassadorsByStatus(ctx context.Context, status string) ([]models.AmbassadorData, error)
	UpdateAmbassadorStatus(ctx context.Context, id string, status string) (*models.AmbassadorData, error)
	UpdateAmbassadorProfile(ctx context.Context, id string, update models.ProfileUpdateRequest) (*models.AmbassadorData, error)
	UpdateAmbassadorContact(ctx context.Context, id string, fullName string, email string) error
	UpdateAmbassadorPassword(ctx context.Context, id string, passwordHash string) error
	UpdateAmbassadorLinks(ctx context.Context, id string, referralLink string, customFormLink string) (*models.AmbassadorData, error)
	UpdateAmbassadorActivitiesLink(ctx context.Context, id string, activitiesLink string) (*models.AmbassadorData, error)
	AssignFormLink(ctx context.Context, id string, formLink string) (*models.AmbassadorData, error)
}

type AdminsStorage interface {
	AddAdmin(ctx context.Context, admin models.AdminData) error
	GetAdmin(ctx context.Context, id string) (*models.AdminData, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.AdminData, error)
	SetAdminResetOtp(ctx context.Context, id string, otp string, expire time.Time) error
	GetAdminByResetOtp(ctx context.Context, email string, otp string) (*models.AdminData, error)
	UpdateAdminPassword(ctx context.Context, id string, passwordHash string) error
}

type OtpStorage interface {
	ReplaceOtp(ctx context.Context, email string, code string) error
	GetOtp(ctx context.Context, email string, code string, maxAge time.Duration) (*models.OtpData, error)
	HasOtp(ctx context.Context, email string) (bool, error)
	DeleteOtp(ctx context.Context, email string) error
}

type LedgersStorage interface {
	Credit(ctx context.Context, ambassadorID string, kind models.LedgerKind, count int) (*models.LedgerData, error)
	SetEarned(ctx context.Context, id string, kind models.LedgerKind, count int) (*models.LedgerData, error)
	GetLedgerByAmbassador(ctx context.Context, ambassadorID string, kind models.LedgerKind) (*models.LedgerData, error)
	GetLedger(ctx context.Context, id string, kind models.LedgerKind) (*models.LedgerData, error)
	GetLedgers(ctx context.Context, kind models.LedgerKind) ([]models.LedgerData, error)
}

type WithdrawalsStorage interface {
	AddWithdrawal(ctx context.Context, ambassadorID string, kind models.LedgerKind, count int) (*models.WithdrawalData, error)
	ApproveWithdrawal(ctx context.Context, requestID string, kind models.LedgerKind) (*models.WithdrawalData, *models.LedgerData, error)
	RejectWithdrawal(ctx context.Context, requestID string, kind models.LedgerKind) (*models.WithdrawalData, error)
	GetPendingWithdrawals(ctx context.Context, kind models.LedgerKind) ([]models.WithdrawalData, error)
}

type ReferralsStorage interface {
	AddReferral(ctx context.Context, referral models.ReferralData) (*models.ReferralData, error)
	GetReferral(ctx context.Context, id string) (*models.ReferralData, error)
	GetReferralsByAmbassador(ctx context.Context, ambassadorID string) ([]models.ReferralData, error)
	GetReferrals(ctx context.Context) ([]models.ReferralData, error)
	ReviewReferral(ctx context.Context, id string, status string, rejectionReason string) (*models.ReferralData, error)
}

type TemplatesStorage interface {
	AddTemplate(ctx context.Context, template models.TemplateData) (*models.TemplateData, error)
	GetTemplate(ctx context.Context, id string) (*models.TemplateData, error)
	GetTemplates(ctx context.Context, tag string, search string) ([]models.TemplateData, error)
	UpdateTemplate(ctx context.Context, template models.TemplateData) (*models.TemplateData, error)
	DeleteTemplate(ctx context.Context, id string) error
}

type NotificationsStorage interface {
	AddNotification(ctx context.Context, recipient string, subject string, body string) error
	ClaimNotificationsForSending(ctx context.Context, count int) ([]models.NotificationData, error)
	MarkNotificationSent(ctx context.Context, id string) error
	MarkNotificationFailed(ctx context.Context, id string) error
}

// IStorage - общий интерфейс хранилища сервиса
type IStorage interface {
	AmbassadorsStorage
	AdminsStorage
	OtpStorage
	LedgersStorage
	WithdrawalsStorage
	ReferralsStorage
	TemplatesStorage
	NotificationsStorage
}

type Storage struct {
	AmbassadorsStorage
	AdminsStorage
	OtpStorage
	LedgersStorage
	WithdrawalsStorage
	ReferralsStorage
	TemplatesStorage
	NotificationsStorage
}

// Создание хранилища
func NewStorage(db *Database) IStorage {
	return &Storage{
		AmbassadorsStorage:   NewAmbassadorsStorage(db),
		AdminsStorage:        NewAdminsStorage(db),
		OtpStorage:           NewOtpStorage(db),
		LedgersStorage:       NewLedgersStorage(db),
		WithdrawalsStorage:   NewWithdrawalsStorage(db),
		ReferralsStorage:     NewReferralsStorage(db),
		TemplatesStorage:     NewTemplatesStorage(db),
		NotificationsStorage: NewNotificationsStorage(db),
	}
}

var (
	ErrAmbassadorNotFound = errors.New("ambassador not found")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrLedgerNotFound     = errors.New("ledger not found")
	ErrRequestNotFound    = errors.New("withdrawal request not found")
	ErrReferralNotFound   = errors.New("referral not found")
	ErrTemplateNotFound   = errors.New("template not found")
	ErrOtpNotFound        = errors.New("otp not found or expired")

	ErrAlreadyExists = errors.New("already exists")

	// запрос на вывод уже обработан администратором
	ErrRequestProcessed = errors.New("request already processed")
	// запрос на вывод относится к другому виду копилки
	ErrKindMismatch = errors.New("request kind mismatch")
)

// NothingAvailableError - вывод невозможен: всё заработанное закрыто
// заблокированным минимумом
type NothingAvailableError struct {
	Kind   models.LedgerKind
	Locked int
}

func (e *NothingAvailableError) Error() string {
	return fmt.Sprintf("you cannot withdraw right now, at least %d %ss must always remain locked", e.Locked, e.Kind)
}

// WithdrawalLimitError - запрошено больше, чем доступно к выводу
type WithdrawalLimitError struct {
	Kind      models.LedgerKind
	Earned    int
	Locked    int
	Available int
}

func (e *WithdrawalLimitError) Error() string {
	return fmt.Sprintf("you have earned %d %ss, %d are locked, so you can withdraw only up to %d",
		e.Earned, e.Kind, e.Locked, e.Available)
}

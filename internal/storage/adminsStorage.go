package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/skillotech/ambassador-api/internal/models"
)

const (
	InsertAdmin = `INSERT INTO ADMINS (id, full_name, email, password, role, created_at)
				   VALUES ($1, $2, $3, $4, $5, $6)
				   ON CONFLICT (email) DO NOTHING
				   RETURNING email;`

	adminColumns = `id, full_name, email, password, role, reset_otp, reset_otp_expire, form_link, created_at`

	GetAdminByID    = `SELECT ` + adminColumns + ` FROM ADMINS WHERE id = $1;`
	GetAdminByEmail = `SELECT ` + adminColumns + ` FROM ADMINS WHERE email = $1;`

	SetAdminResetOtp = `UPDATE ADMINS SET reset_otp = $2, reset_otp_expire = $3 WHERE id = $1;`

	// OTP принимается только до истечения срока действия
	GetAdminByResetOtp = `SELECT ` + adminColumns + ` FROM ADMINS
						  WHERE email = $1 AND reset_otp = $2 AND reset_otp <> '' AND reset_otp_expire > NOW();`

	// Пароль и сброс OTP обновляются вместе
	UpdateAdminPassword = `UPDATE ADMINS SET password = $2, reset_otp = '', reset_otp_expire = NULL WHERE id = $1;`
)

type AdminDatabase struct {
	DB *Database
}

// Создание хранилища
func NewAdminsStorage(db *Database) AdminsStorage {
	return &AdminDatabase{DB: db}
}

func (s *AdminDatabase) AddAdmin(ctx context.Context, admin models.AdminData) error {
	var prevEmail string
	err := s.DB.Pool.QueryRow(ctx, InsertAdmin,
		admin.ID, admin.FullName, admin.Email, admin.PasswordHash, admin.Role, admin.CreatedAt).Scan(&prevEmail)

	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrAlreadyExists
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}

	return fmt.Errorf("failed to add admin: %w", err)
}

func (s *AdminDatabase) GetAdmin(ctx context.Context, id string) (*models.AdminData, error) {
	return s.getAdmin(ctx, GetAdminByID, id)
}

func (s *AdminDatabase) GetAdminByEmail(ctx context.Context, email string) (*models.AdminData, error) {
	return s.getAdmin(ctx, GetAdminByEmail, email)
}

func (s *AdminDatabase) SetAdminResetOtp(ctx context.Context, id string, otp string, expire time.Time) error {
	_, err := s.DB.Pool.Exec(ctx, SetAdminResetOtp, id, otp, expire)
	if err != nil {
		return fmt.Errorf("failed to set reset otp: %w", err)
	}
	return nil
}

func (s *AdminDatabase) GetAdminByResetOtp(ctx context.Context, email string, otp string) (*models.AdminData, error) {
	return s.getAdmin(ctx, GetAdminByResetOtp, email, otp)
}

func (s *AdminDatabase) UpdateAdminPassword(ctx context.Context, id string, passwordHash string) error {
	_, err := s.DB.Pool.Exec(ctx, UpdateAdminPassword, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *AdminDatabase) getAdmin(ctx context.Context, query string, args ...any) (*models.AdminData, error) {
	var (
		admin          models.AdminData
		resetOtpExpire *time.Time
	)
	err := s.DB.Pool.QueryRow(ctx, query, args...).Scan(
		&admin.ID, &admin.FullName, &admin.Email, &admin.PasswordHash, &admin.Role,
		&admin.ResetOtp, &resetOtpExpire, &admin.FormLink, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	admin.ResetOtpExpire = resetOtpExpire
	return &admin, nil
}

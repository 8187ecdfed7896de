package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/skillotech/ambassador-api/internal/models"
)

const (
	DeleteOtps = `DELETE FROM OTPS WHERE email = $1;`
	InsertOtp  = `INSERT INTO OTPS (email, code, created_at) VALUES ($1, $2, NOW());`

	// Код действителен ограниченное время с момента выдачи
	GetOtp = `SELECT email, code, created_at FROM OTPS
			  WHERE email = $1 AND code = $2 AND created_at > NOW() - $3::interval;`

	HasOtp = `SELECT EXISTS(SELECT 1 FROM OTPS WHERE email = $1 AND created_at > NOW() - $2::interval);`
)

// OtpTTL - срок действия кода подтверждения
const OtpTTL = 5 * time.Minute

type OtpDatabase struct {
	DB *Database
}

// Создание хранилища
func NewOtpStorage(db *Database) OtpStorage {
	return &OtpDatabase{DB: db}
}

// ReplaceOtp - замена кода: старые коды для адреса удаляются
func (s *OtpDatabase) ReplaceOtp(ctx context.Context, email string, code string) error {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, DeleteOtps, email); err != nil {
		return fmt.Errorf("failed to delete old otps: %w", err)
	}
	if _, err = tx.Exec(ctx, InsertOtp, email, code); err != nil {
		return fmt.Errorf("failed to insert otp: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

func (s *OtpDatabase) GetOtp(ctx context.Context, email string, code string, maxAge time.Duration) (*models.OtpData, error) {
	var otp models.OtpData
	err := s.DB.Pool.QueryRow(ctx, GetOtp, email, code, maxAge).Scan(&otp.Email, &otp.Code, &otp.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOtpNotFound
		}
		return nil, fmt.Errorf("failed to get otp: %w", err)
	}
	return &otp, nil
}

func (s *OtpDatabase) HasOtp(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.DB.Pool.QueryRow(ctx, HasOtp, email, OtpTTL).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check otp: %w", err)
	}
	return exists, nil
}

func (s *OtpDatabase) DeleteOtp(ctx context.Context, email string) error {
	_, err := s.DB.Pool.Exec(ctx, DeleteOtps, email)
	if err != nil {
		return fmt.Errorf("failed to delete otp: %w", err)
	}
	return nil
}

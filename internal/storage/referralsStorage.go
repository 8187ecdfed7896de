package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/skillotech/ambassador-api/internal/models"
)

const (
	InsertReferral = `INSERT INTO REFERRALS (id, ambassador_id, activity_type, campaign, notes,
						  whatsapp_groups_shared, students_gathered, google_form_submissions,
						  referral_link, proofs, status, created_at)
					  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'PENDING', NOW())
					  RETURNING created_at;`

	referralColumns = `r.id, r.ambassador_id, r.activity_type, r.campaign, r.notes,
					   r.whatsapp_groups_shared, r.students_gathered, r.google_form_submissions,
					   r.referral_link, r.proofs, r.status, r.rejection_reason, r.reviewed_at, r.created_at`

	GetReferralByID = `SELECT ` + referralColumns + `, a.full_name, a.username, a.email
					   FROM REFERRALS r
					   JOIN AMBASSADORS a ON a.id = r.ambassador_id
					   WHERE r.id = $1;`

	GetReferralsByAmbassador = `SELECT ` + referralColumns + `, a.full_name, a.username, a.email
								FROM REFERRALS r
								JOIN AMBASSADORS a ON a.id = r.ambassador_id
								WHERE r.ambassador_id = $1
								ORDER BY r.created_at DESC;`

	GetAllReferrals = `SELECT ` + referralColumns + `, a.full_name, a.username, a.email
					   FROM REFERRALS r
					   JOIN AMBASSADORS a ON a.id = r.ambassador_id
					   ORDER BY r.created_at DESC;`

	ReviewReferral = `UPDATE REFERRALS r
					  SET status = $2, rejection_reason = $3, reviewed_at = NOW()
					  FROM AMBASSADORS a
					  WHERE r.id = $1 AND a.id = r.ambassador_id
					  RETURNING ` + referralColumns + `, a.full_name, a.username, a.email;`
)

type ReferralDatabase struct {
	DB *Database
}

// Создание хранилища
func NewReferralsStorage(db *Database) ReferralsStorage {
	return &ReferralDatabase{DB: db}
}

func (s *ReferralDatabase) AddReferral(ctx context.Context, referral models.ReferralData) (*models.ReferralData, error) {
	referral.ID = uuid.New().String()
	referral.Status = "PENDING"
	err := s.DB.Pool.QueryRow(ctx, InsertReferral,
		referral.ID, referral.AmbassadorID, referral.ActivityType, referral.Campaign, referral.Notes,
		referral.WhatsappGroupsShared, referral.StudentsGathered, referral.GoogleFormSubmissions,
		referral.ReferralLink, referral.Proofs).Scan(&referral.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add referral: %w", err)
	}
	return &referral, nil
}

func (s *ReferralDatabase) GetReferral(ctx context.Context, id string) (*models.ReferralData, error) {
	referral, err := scanReferral(s.DB.Pool.QueryRow(ctx, GetReferralByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReferralNotFound
		}
		return nil, fmt.Errorf("failed to get referral: %w", err)
	}
	return referral, nil
}

func (s *ReferralDatabase) GetReferralsByAmbassador(ctx context.Context, ambassadorID string) ([]models.ReferralData, error) {
	return s.getReferrals(ctx, GetReferralsByAmbassador, ambassadorID)
}

func (s *ReferralDatabase) GetReferrals(ctx context.Context) ([]models.ReferralData, error) {
	return s.getReferrals(ctx, GetAllReferrals)
}

func (s *ReferralDatabase) ReviewReferral(ctx context.Context, id string, status string, rejectionReason string) (*models.ReferralData, error) {
	referral, err := scanReferral(s.DB.Pool.QueryRow(ctx, ReviewReferral, id, status, rejectionReason))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReferralNotFound
		}
		return nil, fmt.Errorf("failed to review referral: %w", err)
	}
	return referral, nil
}

func (s *ReferralDatabase) getReferrals(ctx context.Context, query string, args ...any) ([]models.ReferralData, error) {
	var referrals []models.ReferralData
	rows, err := s.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get referrals: %w", err)
	}
	for rows.Next() {
		referral, err := scanReferral(rows)
		if err != nil {
			return referrals, fmt.Errorf("failed scan referral data: %w", err)
		}
		referrals = append(referrals, *referral)
	}
	return referrals, err
}

// scanReferral - чтение строки отчёта об активности вместе с данными амбассадора
func scanReferral(row pgx.Row) (*models.ReferralData, error) {
	var (
		referral   models.ReferralData
		reviewedAt *time.Time
		fullName   string
		username   string
		email      string
	)
	err := row.Scan(&referral.ID, &referral.AmbassadorID, &referral.ActivityType, &referral.Campaign,
		&referral.Notes, &referral.WhatsappGroupsShared, &referral.StudentsGathered,
		&referral.GoogleFormSubmissions, &referral.ReferralLink, &referral.Proofs,
		&referral.Status, &referral.RejectionReason, &reviewedAt, &referral.CreatedAt,
		&fullName, &username, &email)
	if err != nil {
		return nil, err
	}
	referral.ReviewedAt = reviewedAt
	referral.Ambassador = models.AmbassadorRef{ID: referral.AmbassadorID, FullName: fullName, Username: username, Email: email}
	return &referral, nil
}

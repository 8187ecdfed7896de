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
	InsertAmbassador = `INSERT INTO AMBASSADORS (id, full_name, username, email, whatsapp, password, address, documents,
							dob, linkedin, college_id, course, semester, completion_year, bank_account, ifsc, upi_id,
							status, created_at)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
						ON CONFLICT (email) DO NOTHING
						RETURNING email;`

	ambassadorColumns = `id, full_name, username, email, whatsapp, password, address, documents,
						 dob, linkedin, college_id, course, semester, completion_year, bank_account, ifsc, upi_id,
						 status, form_link, referral_link, custom_form_link, activities_form_link, created_at`

	GetAmbassadorByID     = `SELECT ` + ambassadorColumns + ` FROM AMBASSADORS WHERE id = $1;`
	GetAmbassadorByEmail  = `SELECT ` + ambassadorColumns + ` FROM AMBASSADORS WHERE email = $1;`
	GetAmbassadorByStatus = `SELECT ` + ambassadorColumns + ` FROM AMBASSADORS WHERE status = $1 ORDER BY created_at DESC;`

	UpdateAmbassadorStatus = `UPDATE AMBASSADORS SET status = $2 WHERE id = $1
							  RETURNING ` + ambassadorColumns + `;`

	UpdateAmbassadorProfile = `UPDATE AMBASSADORS SET
								  full_name = CASE WHEN $2 <> '' THEN $2 ELSE full_name END,
								  dob = CASE WHEN $3 <> '' THEN $3 ELSE dob END,
								  linkedin = CASE WHEN $4 <> '' THEN $4 ELSE linkedin END,
								  course = CASE WHEN $5 <> '' THEN $5 ELSE course END,
								  address = COALESCE($6, address),
								  documents = CASE WHEN $7 <> '' THEN jsonb_set(documents, '{photo}', to_jsonb($7::text)) ELSE documents END
							   WHERE id = $1
							   RETURNING ` + ambassadorColumns + `;`

	UpdateAmbassadorContact = `UPDATE AMBASSADORS SET
								  full_name = CASE WHEN $2 <> '' THEN $2 ELSE full_name END,
								  email = CASE WHEN $3 <> '' THEN $3 ELSE email END
							   WHERE id = $1;`

	UpdateAmbassadorPassword = `UPDATE AMBASSADORS SET password = $2 WHERE id = $1;`

	UpdateAmbassadorLinks = `UPDATE AMBASSADORS SET referral_link = $2, custom_form_link = $3 WHERE id = $1
							 RETURNING ` + ambassadorColumns + `;`

	UpdateActivitiesLink = `UPDATE AMBASSADORS SET activities_form_link = $2 WHERE id = $1
							RETURNING ` + ambassadorColumns + `;`

	AssignAmbassadorFormLink = `UPDATE AMBASSADORS SET form_link = $2 WHERE id = $1
								RETURNING ` + ambassadorColumns + `;`
)

type AmbassadorDatabase struct {
	DB *Database
}

// Создание хранилища
func NewAmbassadorsStorage(db *Database) AmbassadorsStorage {
	return &AmbassadorDatabase{DB: db}
}

func (s *AmbassadorDatabase) AddAmbassador(ctx context.Context, ambassador models.AmbassadorData) error {
	var prevEmail string
	err := s.DB.Pool.QueryRow(ctx, InsertAmbassador,
		ambassador.ID, ambassador.FullName, ambassador.Username, ambassador.Email, ambassador.Whatsapp,
		ambassador.PasswordHash, ambassador.Address, ambassador.Documents,
		ambassador.DOB, ambassador.Linkedin, ambassador.CollegeID, ambassador.Course, ambassador.Semester,
		ambassador.CompletionYear, ambassador.BankAccount, ambassador.IFSC, ambassador.UpiID,
		models.AmbassadorStatusPending, ambassador.CreatedAt).Scan(&prevEmail)

	// Успешное добавление
	if err == nil {
		return nil
	}
	// ON CONFLICT DO NOTHING не возвращает строку для дубликата
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrAlreadyExists
	}

	// Проверяем именно нарушение уникальности (код 23505)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}

	// Все остальные ошибки
	return fmt.Errorf("failed to add ambassador: %w", err)
}

func (s *AmbassadorDatabase) GetAmbassador(ctx context.Context, id string) (*models.AmbassadorData, error) {
	return s.getAmbassador(ctx, GetAmbassadorByID, id)
}

func (s *AmbassadorDatabase) GetAmbassadorByEmail(ctx context.Context, email string) (*models.AmbassadorData, error) {
	return s.getAmbassador(ctx, GetAmbassadorByEmail, email)
}

func (s *AmbassadorDatabase) GetAmbassadorsByStatus(ctx context.Context, status string) ([]models.AmbassadorData, error) {
	var ambassadors []models.AmbassadorData
	rows, err := s.DB.Pool.Query(ctx, GetAmbassadorByStatus, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get ambassadors: %w", err)
	}
	for rows.Next() {
		ambassador, err := scanAmbassador(rows)
		if err != nil {
			return ambassadors, fmt.Errorf("failed scan ambassador data: %w", err)
		}
		ambassadors = append(ambassadors, *ambassador)
	}
	return ambassadors, err
}

func (s *AmbassadorDatabase) UpdateAmbassadorStatus(ctx context.Context, id string, status string) (*models.AmbassadorData, error) {
	return s.getAmbassador(ctx, UpdateAmbassadorStatus, id, status)
}

func (s *AmbassadorDatabase) UpdateAmbassadorProfile(ctx context.Context, id string, update models.ProfileUpdateRequest) (*models.AmbassadorData, error) {
	return s.getAmbassador(ctx, UpdateAmbassadorProfile, id,
		update.FullName, update.DOB, update.Linkedin, update.Course, update.Address, update.Photo)
}

func (s *AmbassadorDatabase) UpdateAmbassadorContact(ctx context.Context, id string, fullName string, email string) error {
	_, err := s.DB.Pool.Exec(ctx, UpdateAmbassadorContact, id, fullName, email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to update ambassador: %w", err)
	}
	return nil
}

func (s *AmbassadorDatabase) UpdateAmbassadorPassword(ctx context.Context, id string, passwordHash string) error {
	_, err := s.DB.Pool.Exec(ctx, UpdateAmbassadorPassword, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *AmbassadorDatabase) UpdateAmbassadorLinks(ctx context.Context, id string, referralLink string, customFormLink string) (*models.AmbassadorData, error) {
	return s.getAmbassador(ctx, UpdateAmbassadorLinks, id, referralLink, customFormLink)
}

func (s *AmbassadorDatabase) UpdateAmbassadorActivitiesLink(ctx context.Context, id string, activitiesLink string) (*models.AmbassadorData, error) {
	return s.getAmbassador(ctx, UpdateActivitiesLink, id, activitiesLink)
}

func (s *AmbassadorDatabase) AssignFormLink(ctx context.Context, id string, formLink string) (*models.AmbassadorData, error) {
	return s.getAmbassador(ctx, AssignAmbassadorFormLink, id, formLink)
}

func (s *AmbassadorDatabase) getAmbassador(ctx context.Context, query string, args ...any) (*models.AmbassadorData, error) {
	ambassador, err := scanAmbassador(s.DB.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAmbassadorNotFound
		}
		return nil, fmt.Errorf("failed to get ambassador: %w", err)
	}
	return ambassador, nil
}

// scanAmbassador - чтение строки амбассадора
func scanAmbassador(row pgx.Row) (*models.AmbassadorData, error) {
	var (
		ambassador models.AmbassadorData
		createdAt  time.Time
	)
	err := row.Scan(&ambassador.ID, &ambassador.FullName, &ambassador.Username, &ambassador.Email,
		&ambassador.Whatsapp, &ambassador.PasswordHash, &ambassador.Address, &ambassador.Documents,
		&ambassador.DOB, &ambassador.Linkedin, &ambassador.CollegeID, &ambassador.Course, &ambassador.Semester,
		&ambassador.CompletionYear, &ambassador.BankAccount, &ambassador.IFSC, &ambassador.UpiID,
		&ambassador.Status, &ambassador.FormLink, &ambassador.ReferralLink, &ambassador.CustomFormLink,
		&ambassador.ActivitiesLink, &createdAt)
	if err != nil {
		return nil, err
	}
	ambassador.CreatedAt = createdAt
	return &ambassador, nil
}

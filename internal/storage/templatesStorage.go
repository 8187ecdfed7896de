package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/skillotech/ambassador-api/internal/models"
)

const (
	InsertTemplate = `INSERT INTO TEMPLATES (id, title, caption, image_url, tags, created_at, updated_at)
					  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
					  RETURNING created_at, updated_at;`

	GetTemplateByID = `SELECT id, title, caption, image_url, tags, created_at, updated_at
					   FROM TEMPLATES WHERE id = $1;`

	// Фильтр по тегу и регистронезависимый поиск по заголовку и подписи
	GetTemplatesFiltered = `SELECT id, title, caption, image_url, tags, created_at, updated_at
							FROM TEMPLATES
							WHERE ($1 = '' OR $1 = ANY(tags))
							  AND ($2 = '' OR title ILIKE '%' || $2 || '%' OR caption ILIKE '%' || $2 || '%')
							ORDER BY created_at DESC;`

	UpdateTemplate = `UPDATE TEMPLATES
					  SET title = $2, caption = $3, image_url = $4, tags = $5, updated_at = NOW()
					  WHERE id = $1
					  RETURNING created_at, updated_at;`

	DeleteTemplate = `DELETE FROM TEMPLATES WHERE id = $1;`
)

type TemplateDatabase struct {
	DB *Database
}

// Создание хранилища
func NewTemplatesStorage(db *Database) TemplatesStorage {
	return &TemplateDatabase{DB: db}
}

func (s *TemplateDatabase) AddTemplate(ctx context.Context, template models.TemplateData) (*models.TemplateData, error) {
	template.ID = uuid.New().String()
	err := s.DB.Pool.QueryRow(ctx, InsertTemplate,
		template.ID, template.Title, template.Caption, template.ImageURL, template.Tags).
		Scan(&template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add template: %w", err)
	}
	return &template, nil
}

func (s *TemplateDatabase) GetTemplate(ctx context.Context, id string) (*models.TemplateData, error) {
	var template models.TemplateData
	err := s.DB.Pool.QueryRow(ctx, GetTemplateByID, id).Scan(
		&template.ID, &template.Title, &template.Caption, &template.ImageURL, &template.Tags,
		&template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return &template, nil
}

func (s *TemplateDatabase) GetTemplates(ctx context.Context, tag string, search string) ([]models.TemplateData, error) {
	var templates []models.TemplateData
	rows, err := s.DB.Pool.Query(ctx, GetTemplatesFiltered, tag, search)
	if err != nil {
		return nil, fmt.Errorf("failed to get templates: %w", err)
	}
	for rows.Next() {
		var template models.TemplateData
		err := rows.Scan(&template.ID, &template.Title, &template.Caption, &template.ImageURL,
			&template.Tags, &template.CreatedAt, &template.UpdatedAt)
		if err != nil {
			return templates, fmt.Errorf("failed scan template data: %w", err)
		}
		templates = append(templates, template)
	}
	return templates, err
}

func (s *TemplateDatabase) UpdateTemplate(ctx context.Context, template models.TemplateData) (*models.TemplateData, error) {
	err := s.DB.Pool.QueryRow(ctx, UpdateTemplate,
		template.ID, template.Title, template.Caption, template.ImageURL, template.Tags).
		Scan(&template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return &template, nil
}

func (s *TemplateDatabase) DeleteTemplate(ctx context.Context, id string) error {
	tag, err := s.DB.Pool.Exec(ctx, DeleteTemplate, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/skillotech/ambassador-api/internal/logger"
	"github.com/skillotech/ambassador-api/internal/models"
	"github.com/skillotech/ambassador-api/internal/storage"
	"go.uber.org/zap"
)

var (
	ErrInvalidTemplate = errors.New("title is required")
)

type TemplateService interface {
	Add(ctx context.Context, request models.TemplateRequest) (*models.TemplateData, error)
	Get(ctx context.Context, id string) (*models.TemplateData, error)
	GetAll(ctx context.Context, tag string, search string) ([]models.TemplateData, error)
	Update(ctx context.Context, id string, request models.TemplateRequest) (*models.TemplateData, error)
	Delete(ctx context.Context, id string) error
}

type Templates struct {
	Storage storage.IStorage
}

// Создание сервиса
func NewTemplates(storage storage.IStorage) TemplateService {
	return &Templates{Storage: storage}
}

// Add - добавление шаблона промо-материала
func (s *Templates) Add(ctx context.Context, request models.TemplateRequest) (*models.TemplateData, error) {
	logger.Info("Add template:", request.Title)

	if request.Title == "" {
		return nil, ErrInvalidTemplate
	}

	template := models.TemplateData{
		ID:       uuid.New().String(),
		Title:    request.Title,
		Caption:  request.Caption,
		ImageURL: request.ImageURL,
		Tags:     SplitTags(request.Tags),
	}

	added, err := s.Storage.AddTemplate(ctx, template)
	if err != nil {
		logger.Error("Failed to add template", zap.Error(err))
		return nil, err
	}
	return added, nil
}

// Get возвращает шаблон по идентификатору
func (s *Templates) Get(ctx context.Context, id string) (*models.TemplateData, error) {
	template, err := s.Storage.GetTemplate(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrTemplateNotFound) {
			logger.Warn("Template not found", id)
			return nil, storage.ErrTemplateNotFound
		}
		logger.Error("Failed to get template", zap.Error(err))
		return nil, err
	}
	return template, nil
}

// GetAll возвращает шаблоны с фильтрами по тегу и строке поиска
func (s *Templates) GetAll(ctx context.Context, tag string, search string) ([]models.TemplateData, error) {
	templates, err := s.Storage.GetTemplates(ctx, tag, search)
	if err != nil {
		logger.Error("Failed to get templates", zap.Error(err))
		return nil, err
	}
	return templates, nil
}

// Update - обновление шаблона целиком
func (s *Templates) Update(ctx context.Context, id string, request models.TemplateRequest) (*models.TemplateData, error) {
	logger.Info("Update template:", id)

	if request.Title == "" {
		return nil, ErrInvalidTemplate
	}

	template := models.TemplateData{
		ID:       id,
		Title:    request.Title,
		Caption:  request.Caption,
		ImageURL: request.ImageURL,
		Tags:     SplitTags(request.Tags),
	}

	updated, err := s.Storage.UpdateTemplate(ctx, template)
	if err != nil {
		if errors.Is(err, storage.ErrTemplateNotFound) {
			logger.Warn("Template not found", id)
			return nil, storage.ErrTemplateNotFound
		}
		logger.Error("Failed to update template", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// Delete удаляет шаблон
func (s *Templates) Delete(ctx context.Context, id string) error {
	logger.Info("Delete template:", id)

	if err := s.Storage.DeleteTemplate(ctx, id); err != nil {
		if errors.Is(err, storage.ErrTemplateNotFound) {
			logger.Warn("Template not found", id)
			return storage.ErrTemplateNotFound
		}
		logger.Error("Failed to delete template", zap.Error(err))
		return err
	}
	return nil
}

// SplitTags - разбор тегов из строки через запятую, пустые отбрасываются
func SplitTags(tags string) []string {
	var result []string
	for _, tag := range strings.Split(tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			result = append(result, tag)
		}
	}
	return result
}

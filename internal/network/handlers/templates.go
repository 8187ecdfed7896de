package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skillotech/ambassador-api/internal/logger"
	"github.com/skillotech/ambassador-api/internal/models"
	"github.com/skillotech/ambassador-api/internal/services"
	"github.com/skillotech/ambassador-api/internal/storage"
	"go.uber.org/zap"
)

// AddTemplateHandler — добавление шаблона промо-материала
func AddTemplateHandler(s services.TemplateService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.TemplateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		template, err := s.Add(r.Context(), request)
		if err != nil {
			if errors.Is(err, services.ErrInvalidTemplate) {
				http.Error(w, "Title is required", http.StatusBadRequest)
			} else {
				logger.Error("Failed to add template:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err = json.NewEncoder(w).Encode(models.NewTemplateResponse(*template)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetTemplatesHandler — шаблоны с фильтрами по тегу и строке поиска
func GetTemplatesHandler(s services.TemplateService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag := r.URL.Query().Get("tag")
		search := r.URL.Query().Get("search")

		templates, err := s.GetAll(r.Context(), tag, search)
		if err != nil {
			logger.Error("Failed to get templates:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		var response []models.TemplateResponse
		for _, template := range templates {
			response = append(response, models.NewTemplateResponse(template))
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetTemplateHandler — шаблон по идентификатору
func GetTemplateHandler(s services.TemplateService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		template, err := s.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrTemplateNotFound) {
				http.Error(w, "Template not found", http.StatusNotFound)
			} else {
				logger.Error("Failed to get template:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(models.NewTemplateResponse(*template)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// UpdateTemplateHandler — обновление шаблона целиком
func UpdateTemplateHandler(s services.TemplateService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var request models.TemplateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		template, err := s.Update(r.Context(), id, request)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidTemplate):
				http.Error(w, "Title is required", http.StatusBadRequest)
			case errors.Is(err, storage.ErrTemplateNotFound):
				http.Error(w, "Template not found", http.StatusNotFound)
			default:
				logger.Error("Failed to update template:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(models.NewTemplateResponse(*template)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// DeleteTemplateHandler — удаление шаблона
func DeleteTemplateHandler(s services.TemplateService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := s.Delete(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrTemplateNotFound) {
				http.Error(w, "Template not found", http.StatusNotFound)
			} else {
				logger.Error("Failed to delete template:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

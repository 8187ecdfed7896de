package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skillotech/ambassador-api/internal/helpers"
	"github.com/skillotech/ambassador-api/internal/logger"
	"github.com/skillotech/ambassador-api/internal/models"
	"github.com/skillotech/ambassador-api/internal/services"
	"github.com/skillotech/ambassador-api/internal/storage"
	"go.uber.org/zap"
)

// CreditHandler — начисление заработанных единиц амбассадору
func CreditHandler(l services.LedgerService, kind models.LedgerKind) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.CreditRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		ledger, err := l.Credit(r.Context(), kind, request)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCreditRequest):
				http.Error(w, "Email and a positive count are required", http.StatusBadRequest)
			case errors.Is(err, storage.ErrAmbassadorNotFound):
				http.Error(w, "Ambassador not found", http.StatusNotFound)
			default:
				logger.Error("Failed to credit ledger:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err = json.NewEncoder(w).Encode(models.NewLedgerResponse(*ledger)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetOwnLedgerHandler — копилка авторизованного амбассадора
func GetOwnLedgerHandler(l services.LedgerService, kind models.LedgerKind) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := helpers.GetSubject(r.Context())
		if err != nil {
			logger.Warn("Failed to get subject:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		ledger, err := l.GetOwn(r.Context(), subject, kind)
		if err != nil {
			if errors.Is(err, storage.ErrLedgerNotFound) {
				http.Error(w, "Ledger not found", http.StatusNotFound)
			} else {
				logger.Error("Failed to get ledger:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(models.NewLedgerResponse(*ledger)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetLedgersHandler — все копилки данного вида для администратора
func GetLedgersHandler(l services.LedgerService, kind models.LedgerKind) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ledgers, err := l.GetAll(r.Context(), kind)
		if err != nil {
			logger.Error("Failed to get ledgers:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		var response []models.LedgerResponse
		for _, ledger := range ledgers {
			response = append(response, models.NewLedgerResponse(ledger))
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetLedgerHandler — копилка по идентификатору
func GetLedgerHandler(l services.LedgerService, kind models.LedgerKind) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		ledger, err := l.Get(r.Context(), id, kind)
		if err != nil {
			if errors.Is(err, storage.ErrLedgerNotFound) {
				http.Error(w, "Ledger not found", http.StatusNotFound)
			} else {
				logger.Error("Failed to get ledger:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(models.NewLedgerResponse(*ledger)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// UpdateLedgerHandler — административная корректировка копилки
func UpdateLedgerHandler(l services.LedgerService, kind models.LedgerKind) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var request models.LedgerUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		ledger, err := l.Update(r.Context(), id, kind, request)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCount):
				http.Error(w, "Invalid count", http.StatusBadRequest)
			case errors.Is(err, storage.ErrLedgerNotFound):
				http.Error(w, "Ledger not found", http.StatusNotFound)
			default:
				logger.Error("Failed to update ledger:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(models.NewLedgerResponse(*ledger)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

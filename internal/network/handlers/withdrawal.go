package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skillotech/ambassador-api/internal/helpers"
	"github.com/skillotech/ambassador-api/internal/logger"
	"github.com/skillotech/ambassador-api/internal/models"
	"github.com/skillotech/ambassador-api/internal/services"
	"github.com/skillotech/ambassador-api/internal/storage"
	"go.uber.org/zap"
)

// WithdrawHandler — запрос амбассадора на вывод
func WithdrawHandler(s services.WithdrawalService, kind models.LedgerKind) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := helpers.GetSubject(r.Context())
		if err != nil {
			logger.Warn("Failed to get subject:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		var request models.WithdrawalRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		withdrawal, err := s.Request(r.Context(), subject, kind, request.Count)
		if err != nil {
			var nothing *storage.NothingAvailableError
			var limit *storage.WithdrawalLimitError
			switch {
			case errors.Is(err, services.ErrInvalidWithdrawalCount):
				http.Error(w, "Invalid withdrawal count", http.StatusBadRequest)
			case errors.As(err, &nothing), errors.As(err, &limit):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, storage.ErrLedgerNotFound):
				http.Error(w, "Ledger not found", http.StatusNotFound)
			default:
				logger.Error("Failed to process withdrawal:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err = json.NewEncoder(w).Encode(models.NewWithdrawalResponse(*withdrawal)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetPendingWithdrawalsHandler — необработанные запросы для администратора
func GetPendingWithdrawalsHandler(s services.WithdrawalService, kind models.LedgerKind) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		withdrawals, err := s.GetPending(r.Context(), kind)
		if err != nil {
			logger.Error("Failed to get pending withdrawals:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		var response []models.WithdrawalResponse
		for _, withdrawal := range withdrawals {
			response = append(response, models.NewWithdrawalResponse(withdrawal))
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// ApproveWithdrawalHandler — одобрение запроса на вывод администратором.
// В ответе и сам запрос, и копилка после списания.
func ApproveWithdrawalHandler(s services.WithdrawalService, kind models.LedgerKind) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		withdrawal, ledger, err := s.Approve(r.Context(), id, kind)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrRequestNotFound):
				http.Error(w, "Withdrawal request not found", http.StatusNotFound)
			case errors.Is(err, storage.ErrRequestProcessed):
				http.Error(w, "Request already processed", http.StatusBadRequest)
			case errors.Is(err, storage.ErrKindMismatch):
				http.Error(w, fmt.Sprintf("Not a %s request", kind), http.StatusBadRequest)
			default:
				logger.Error("Failed to approve withdrawal:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		response := struct {
			Request models.WithdrawalResponse `json:"request"`
			Ledger  models.LedgerResponse     `json:"ledger"`
		}{
			Request: models.NewWithdrawalResponse(*withdrawal),
			Ledger:  models.NewLedgerResponse(*ledger),
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// RejectWithdrawalHandler — отклонение запроса на вывод администратором
func RejectWithdrawalHandler(s services.WithdrawalService, kind models.LedgerKind) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		withdrawal, err := s.Reject(r.Context(), id, kind)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrRequestNotFound):
				http.Error(w, "Withdrawal request not found", http.StatusNotFound)
			case errors.Is(err, storage.ErrRequestProcessed):
				http.Error(w, "Request already processed", http.StatusBadRequest)
			case errors.Is(err, storage.ErrKindMismatch):
				http.Error(w, fmt.Sprintf("Not a %s request", kind), http.StatusBadRequest)
			default:
				logger.Error("Failed to reject withdrawal:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(models.NewWithdrawalResponse(*withdrawal)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

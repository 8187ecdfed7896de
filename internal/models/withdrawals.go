package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы запросов на вывод
const (
	WithdrawalStatusPending  = "pending"
	WithdrawalStatusApproved = "approved"
	WithdrawalStatusRejected = "rejected"
)

// WithdrawalData - модель запроса на вывод средств из хранилища
type WithdrawalData struct {
	ID           string
	AmbassadorID string
	Kind         LedgerKind
	Requested    int
	Amount       decimal.Decimal
	Status       string
	Ambassador   AmbassadorRef
	CreatedAt    time.Time
	ApprovedAt   *time.Time
}

// WithdrawalRequest - модель запроса на вывод, приходит извне
type WithdrawalRequest struct {
	Count int `json:"count"`
}

// WithdrawalResponse - модель запроса на вывод для выдачи.
// Поле с числом запрошенных единиц зависит от вида копилки:
// couponsRequested либо rewardsRequested.
type WithdrawalResponse struct {
	ID               string  `json:"id"`
	AmbassadorID     string  `json:"ambassadorId"`
	AmbassadorName   string  `json:"ambassadorName,omitempty"`
	Email            string  `json:"email,omitempty"`
	CouponsRequested int     `json:"couponsRequested,omitempty"`
	RewardsRequested int     `json:"rewardsRequested,omitempty"`
	Amount           float64 `json:"amount"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"createdAt,omitempty"`
	ApprovedAt       string  `json:"approvedAt,omitempty"`
}

// NewWithdrawalResponse - выдача запроса на вывод с учётом вида копилки
func NewWithdrawalResponse(w WithdrawalData) WithdrawalResponse {
	amount, _ := w.Amount.Float64()
	response := WithdrawalResponse{
		ID:             w.ID,
		AmbassadorID:   w.AmbassadorID,
		AmbassadorName: w.Ambassador.DisplayName(),
		Email:          w.Ambassador.Email,
		Amount:         amount,
		Status:         w.Status,
		CreatedAt:      w.CreatedAt.Format(time.RFC3339),
	}
	if w.Kind == KindReward {
		response.RewardsRequested = w.Requested
	} else {
		response.CouponsRequested = w.Requested
	}
	if w.ApprovedAt != nil {
		response.ApprovedAt = w.ApprovedAt.Format(time.RFC3339)
	}
	return response
}

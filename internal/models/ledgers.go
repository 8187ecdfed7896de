package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Виды копилок амбассадора
const (
	KindCoupon LedgerKind = "coupon"
	KindReward LedgerKind = "reward"
)

// DefaultLocked - число единиц, которое всегда остаётся заблокированным
const DefaultLocked = 2

// LedgerKind - вид копилки (купоны или вознаграждения)
type LedgerKind string

// UnitValue - денежная стоимость одной единицы данного вида
func (k LedgerKind) UnitValue() decimal.Decimal {
	if k == KindReward {
		return decimal.NewFromInt(300)
	}
	return decimal.NewFromInt(200)
}

// Valid - проверка корректности вида копилки
func (k LedgerKind) Valid() bool {
	return k == KindCoupon || k == KindReward
}

// AmbassadorRef - краткие данные амбассадора из join-запросов
type AmbassadorRef struct {
	ID       string
	FullName string
	Username string
	Email    string
}

// DisplayName - выбор отображаемого имени с цепочкой запасных вариантов
func (r AmbassadorRef) DisplayName() string {
	if r.FullName != "" {
		return r.FullName
	}
	if r.Username != "" {
		return r.Username
	}
	return "Unknown"
}

// LedgerData - модель копилки амбассадора из хранилища
type LedgerData struct {
	ID           string
	AmbassadorID string
	Kind         LedgerKind
	Earned       int
	Withdrawn    int
	Locked       int
	Available    int
	AmountLeft   decimal.Decimal
	Ambassador   AmbassadorRef
	UpdatedAt    time.Time
}

// MaxWithdrawable - число единиц, доступных к выводу
func (l *LedgerData) MaxWithdrawable() int {
	max := l.Earned - l.Withdrawn - l.Locked
	if max < 0 {
		return 0
	}
	return max
}

// Recalc - пересчёт производных полей после изменения счётчиков
func (l *LedgerData) Recalc() {
	l.Available = l.MaxWithdrawable()
	l.AmountLeft = decimal.NewFromInt(int64(l.Available)).Mul(l.Kind.UnitValue())
}

// CreditRequest - модель запроса начисления единиц амбассадору, приходит извне
type CreditRequest struct {
	AmbassadorName string `json:"ambassadorName,omitempty"`
	Email          string `json:"email"`
	Count          int    `json:"count"`
}

// LedgerUpdateRequest - модель административной корректировки копилки
type LedgerUpdateRequest struct {
	AmbassadorName string `json:"ambassadorName,omitempty"`
	Email          string `json:"email,omitempty"`
	Count          *int   `json:"count,omitempty"`
}

// NewLedgerResponse - выдача копилки
func NewLedgerResponse(l LedgerData) LedgerResponse {
	amountLeft, _ := l.AmountLeft.Float64()
	return LedgerResponse{
		ID:             l.ID,
		AmbassadorID:   l.AmbassadorID,
		AmbassadorName: l.Ambassador.DisplayName(),
		Email:          l.Ambassador.Email,
		Earned:         l.Earned,
		Withdrawn:      l.Withdrawn,
		Locked:         l.Locked,
		Available:      l.Available,
		Left:           l.Available,
		AmountLeft:     amountLeft,
		UpdatedAt:      l.UpdatedAt.Format(time.RFC3339),
	}
}

// LedgerResponse - модель копилки для выдачи
type LedgerResponse struct {
	ID             string  `json:"id"`
	AmbassadorID   string  `json:"ambassadorId"`
	AmbassadorName string  `json:"ambassadorName"`
	Email          string  `json:"email"`
	Earned         int     `json:"earned"`
	Withdrawn      int     `json:"withdrawn"`
	Locked         int     `json:"locked"`
	Available      int     `json:"available"`
	Left           int     `json:"left"`
	AmountLeft     float64 `json:"amountLeft"`
	UpdatedAt      string  `json:"updatedAt"`
}

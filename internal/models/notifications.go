package models

import "time"

// Статусы почтовых уведомлений
const (
	NotificationStatusQueued  = "QUEUED"
	NotificationStatusSending = "SENDING"
	NotificationStatusSent    = "SENT"
	NotificationStatusFailed  = "FAILED"
)

// NotificationData - модель почтового уведомления из хранилища
type NotificationData struct {
	ID        string
	Recipient string
	Subject   string
	Body      string
	Status    string
	CreatedAt time.Time
	SentAt    *time.Time
}

// OtpRequest - модель запроса кода подтверждения, приходит извне
type OtpRequest struct {
	Email string `json:"email"`
}

// OtpVerifyRequest - модель проверки кода подтверждения
type OtpVerifyRequest struct {
	Email string `json:"email"`
	Otp   string `json:"otp"`
}

// OtpData - модель кода подтверждения из хранилища
type OtpData struct {
	Email     string
	Code      string
	CreatedAt time.Time
}

package models

import "time"

// Роли администраторов
const (
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAmbassador = "AMBASSADOR"
)

// AdminData - модель администратора из хранилища
type AdminData struct {
	ID             string
	FullName       string
	Email          string
	PasswordHash   string
	Role           string
	ResetOtp       string
	ResetOtpExpire *time.Time
	FormLink       string
	CreatedAt      time.Time
}

// AdminRegisterRequest - модель регистрации администратора, приходит извне
type AdminRegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// AdminResponse - модель администратора для выдачи
type AdminResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ResetPasswordRequest - модель сброса пароля администратора по OTP
type ResetPasswordRequest struct {
	Email           string `json:"email"`
	Otp             string `json:"otp"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// RejectRequest - модель отклонения с причиной
type RejectRequest struct {
	Reason string `json:"reason,omitempty"`
}

// FormLinkRequest - модель закрепления формы за амбассадором
type FormLinkRequest struct {
	FormLink string `json:"formLink"`
}

// ActivitiesLinkRequest - модель закрепления формы отчётов об активностях
type ActivitiesLinkRequest struct {
	ActivitiesLink string `json:"activitiesLink"`
}

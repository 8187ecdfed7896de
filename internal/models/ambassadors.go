package models

import "time"

// Статусы заявок амбассадоров
const (
	AmbassadorStatusPending  = "PENDING"
	AmbassadorStatusApproved = "APPROVED"
	AmbassadorStatusRejected = "REJECTED"
)

// Address - почтовый адрес амбассадора
type Address struct {
	Area     string `json:"area,omitempty"`
	District string `json:"district,omitempty"`
	Police   string `json:"police,omitempty"`
	State    string `json:"state,omitempty"`
	Pincode  string `json:"pincode,omitempty"`
}

// Documents - ссылки на загруженные документы амбассадора
type Documents struct {
	CollegeIDCard string `json:"collegeIdCard,omitempty"`
	AadharCard    string `json:"aadharCard,omitempty"`
	Photo         string `json:"photo,omitempty"`
	BankPassbook  string `json:"bankPassbook,omitempty"`
	UpiQr         string `json:"upiQr,omitempty"`
}

// AmbassadorData - модель амбассадора из хранилища
type AmbassadorData struct {
	ID             string
	FullName       string
	Username       string
	Email          string
	Whatsapp       string
	PasswordHash   string
	Address        Address
	Documents      Documents
	DOB            string
	Linkedin       string
	CollegeID      string
	Course         string
	Semester       string
	CompletionYear string
	BankAccount    string
	IFSC           string
	UpiID          string
	Status         string
	FormLink       string
	ReferralLink   string
	CustomFormLink string
	ActivitiesLink string
	CreatedAt      time.Time
}

// Ref - краткие данные амбассадора для join-выдачи
func (a *AmbassadorData) Ref() AmbassadorRef {
	return AmbassadorRef{ID: a.ID, FullName: a.FullName, Username: a.Username, Email: a.Email}
}

// RegisterRequest - модель регистрации амбассадора, приходит извне
type RegisterRequest struct {
	FullName       string    `json:"fullName"`
	Username       string    `json:"username,omitempty"`
	Email          string    `json:"email"`
	Whatsapp       string    `json:"whatsapp"`
	Password       string    `json:"password"`
	Address        Address   `json:"address,omitempty"`
	Documents      Documents `json:"documents,omitempty"`
	DOB            string    `json:"dob,omitempty"`
	Linkedin       string    `json:"linkedin,omitempty"`
	CollegeID      string    `json:"collegeId,omitempty"`
	Course         string    `json:"course,omitempty"`
	Semester       string    `json:"semester,omitempty"`
	CompletionYear string    `json:"completionYear,omitempty"`
	BankAccount    string    `json:"bankAccount,omitempty"`
	IFSC           string    `json:"ifsc,omitempty"`
	UpiID          string    `json:"upiId,omitempty"`
}

// LoginRequest - модель аутентификации, приходит извне
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdateRequest - модель обновления профиля амбассадора
type ProfileUpdateRequest struct {
	FullName string   `json:"fullName,omitempty"`
	DOB      string   `json:"dob,omitempty"`
	Linkedin string   `json:"linkedin,omitempty"`
	Course   string   `json:"course,omitempty"`
	Address  *Address `json:"address,omitempty"`
	Photo    string   `json:"photo,omitempty"`
}

// PasswordChangeRequest - модель смены пароля
type PasswordChangeRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LinksRequest - модель отправки реферальных ссылок амбассадором
type LinksRequest struct {
	ReferralLink   string `json:"referralLink"`
	CustomFormLink string `json:"customFormLink"`
}

// ProfileResponse - модель профиля амбассадора для выдачи
type ProfileResponse struct {
	ID             string  `json:"id"`
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	Whatsapp       string  `json:"whatsapp"`
	Address        Address `json:"address"`
	DOB            string  `json:"dob,omitempty"`
	Linkedin       string  `json:"linkedin,omitempty"`
	Course         string  `json:"course,omitempty"`
	Photo          string  `json:"photo,omitempty"`
	Status         string  `json:"status"`
	FormLink       string  `json:"formLink,omitempty"`
	ReferralLink   string  `json:"referralLink,omitempty"`
	CustomFormLink string  `json:"customFormLink,omitempty"`
	ActivitiesLink string  `json:"activitiesLink,omitempty"`
}

// NewProfileResponse - выдача профиля амбассадора
func NewProfileResponse(a *AmbassadorData) ProfileResponse {
	return ProfileResponse{
		ID:             a.ID,
		FullName:       a.FullName,
		Email:          a.Email,
		Whatsapp:       a.Whatsapp,
		Address:        a.Address,
		DOB:            a.DOB,
		Linkedin:       a.Linkedin,
		Course:         a.Course,
		Photo:          a.Documents.Photo,
		Status:         a.Status,
		FormLink:       a.FormLink,
		ReferralLink:   a.ReferralLink,
		CustomFormLink: a.CustomFormLink,
		ActivitiesLink: a.ActivitiesLink,
	}
}

package models

import "time"

// ReferralData - модель отчёта о реферальной активности из хранилища
type ReferralData struct {
	ID                    string
	AmbassadorID          string
	ActivityType          string
	Campaign              string
	Notes                 string
	WhatsappGroupsShared  int
	StudentsGathered      int
	GoogleFormSubmissions int
	ReferralLink          string
	Proofs                []string
	Status                string
	RejectionReason       string
	Ambassador            AmbassadorRef
	ReviewedAt            *time.Time
	CreatedAt             time.Time
}

// ReferralRequest - модель отчёта об активности, приходит извне
type ReferralRequest struct {
	ActivityType          string   `json:"activityType"`
	Campaign              string   `json:"campaign,omitempty"`
	Notes                 string   `json:"notes,omitempty"`
	WhatsappGroupsShared  int      `json:"whatsappGroupsShared,omitempty"`
	StudentsGathered      int      `json:"studentsGathered,omitempty"`
	GoogleFormSubmissions int      `json:"googleFormSubmissions,omitempty"`
	ReferralLink          string   `json:"referralLink,omitempty"`
	Proofs                []string `json:"proofs,omitempty"`
}

// ReviewRequest - модель модерации отчёта, приходит извне
type ReviewRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// ReferralResponse - модель отчёта об активности для выдачи
type ReferralResponse struct {
	ID                    string   `json:"id"`
	AmbassadorID          string   `json:"ambassadorId"`
	AmbassadorName        string   `json:"ambassadorName,omitempty"`
	Email                 string   `json:"email,omitempty"`
	ActivityType          string   `json:"activityType"`
	Campaign              string   `json:"campaign,omitempty"`
	Notes                 string   `json:"notes,omitempty"`
	WhatsappGroupsShared  int      `json:"whatsappGroupsShared"`
	StudentsGathered      int      `json:"studentsGathered"`
	GoogleFormSubmissions int      `json:"googleFormSubmissions"`
	ReferralLink          string   `json:"referralLink,omitempty"`
	Proofs                []string `json:"proofs,omitempty"`
	Status                string   `json:"status"`
	RejectionReason       string   `json:"rejectionReason,omitempty"`
	ReviewedAt            string   `json:"reviewedAt,omitempty"`
	CreatedAt             string   `json:"createdAt"`
}

// NewReferralResponse - выдача отчёта об активности
func NewReferralResponse(r ReferralData) ReferralResponse {
	response := ReferralResponse{
		ID:                    r.ID,
		AmbassadorID:          r.AmbassadorID,
		AmbassadorName:        r.Ambassador.DisplayName(),
		Email:                 r.Ambassador.Email,
		ActivityType:          r.ActivityType,
		Campaign:              r.Campaign,
		Notes:                 r.Notes,
		WhatsappGroupsShared:  r.WhatsappGroupsShared,
		StudentsGathered:      r.StudentsGathered,
		GoogleFormSubmissions: r.GoogleFormSubmissions,
		ReferralLink:          r.ReferralLink,
		Proofs:                r.Proofs,
		Status:                r.Status,
		RejectionReason:       r.RejectionReason,
		CreatedAt:             r.CreatedAt.Format(time.RFC3339),
	}
	if r.ReviewedAt != nil {
		response.ReviewedAt = r.ReviewedAt.Format(time.RFC3339)
	}
	return response
}

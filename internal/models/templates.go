package models

import "time"

// TemplateData - модель шаблона промо-материала из хранилища
type TemplateData struct {
	ID        string
	Title     string
	Caption   string
	ImageURL  string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TemplateRequest - модель добавления/обновления шаблона, приходит извне.
// Теги передаются одной строкой через запятую.
type TemplateRequest struct {
	Title    string `json:"title"`
	Caption  string `json:"caption,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Tags     string `json:"tags,omitempty"`
}

// TemplateResponse - модель шаблона для выдачи
type TemplateResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Caption   string   `json:"caption,omitempty"`
	ImageURL  string   `json:"imageUrl,omitempty"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// NewTemplateResponse - выдача шаблона
func NewTemplateResponse(t TemplateData) TemplateResponse {
	return TemplateResponse{
		ID:        t.ID,
		Title:     t.Title,
		Caption:   t.Caption,
		ImageURL:  t.ImageURL,
		Tags:      t.Tags,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}

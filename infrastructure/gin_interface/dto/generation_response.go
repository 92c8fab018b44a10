package dto

import "time"

type PreviewResponse struct {
	TextModifications map[string]interface{} `json:"text_modifications"`
	Images            []string               `json:"images"`
}

type GenerationResponse struct {
	GenerationID string           `json:"generation_id"`
	Prompt       string           `json:"prompt"`
	Phase        string           `json:"phase"`
	Message      string           `json:"message"`
	Loading      bool             `json:"loading"`
	Preview      *PreviewResponse `json:"preview,omitempty"`
	VideoURL     string           `json:"video_url,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

package dto

type CreateGenerationRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

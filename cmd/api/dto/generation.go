package dto

import (
	"editorial-cms/aigateway"
	"editorial-cms/generation"
	"editorial-cms/images"
)

// GenerateStreamRequestDTO starts a streamed completion. Messages wins over Prompt.
type GenerateStreamRequestDTO struct {
	Prompt       string              `json:"prompt"`
	Messages     []aigateway.Message `json:"messages"`
	SystemPrompt string              `json:"system_prompt"`
	Model        string              `json:"model"`
	MaxTokens    int                 `json:"max_tokens"`
	Temperature  *float64            `json:"temperature"`
}

func (r GenerateStreamRequestDTO) ToChatRequest() aigateway.ChatRequest {
	msgs := r.Messages
	if len(msgs) == 0 {
		msgs = []aigateway.Message{{Role: aigateway.RoleUser, Content: r.Prompt}}
	}
	return aigateway.ChatRequest{
		Messages: msgs,
		Options: aigateway.Options{
			Model:        r.Model,
			MaxTokens:    r.MaxTokens,
			Temperature:  r.Temperature,
			SystemPrompt: r.SystemPrompt,
		},
	}
}

type TextResponseDTO struct {
	Text string `json:"text"`
}

type CategorizeBatchRequestDTO struct {
	Items []generation.CategorizeInput `json:"items"`
}

// CategorizeBatchItemDTO carries either a suggestion or an error code.
type CategorizeBatchItemDTO struct {
	Input      generation.CategorizeInput     `json:"input"`
	Suggestion *generation.CategorySuggestion `json:"suggestion,omitempty"`
	Error      string                         `json:"error,omitempty"`
}

type VisualKeywordsRequestDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type VisualKeywordsResponseDTO struct {
	Keywords []string `json:"keywords"`
}

type AutoImageSearchRequestDTO struct {
	Title       string             `json:"title"`
	Content     string             `json:"content"`
	Provider    string             `json:"provider"`
	Orientation images.Orientation `json:"orientation"`
	Page        int                `json:"page"`
	PerPage     int                `json:"per_page"`
}

func (r AutoImageSearchRequestDTO) Params() images.SearchParams {
	return images.SearchParams{
		Provider:    r.Provider,
		Orientation: r.Orientation,
		Page:        r.Page,
		PerPage:     r.PerPage,
	}
}

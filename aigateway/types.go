package aigateway

import "context"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Options are per-call overrides; zero values fall back to the client defaults.
type Options struct {
	Model        string
	MaxTokens    int
	Temperature  *float64
	SystemPrompt string
	JSONMode     bool
}

// Temperature is a helper for Options.Temperature.
func Temperature(t float64) *float64 { return &t }

type ChatRequest struct {
	Messages []Message
	Options  Options
}

type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
}

func (u Usage) Total() int64 { return u.PromptTokens + u.CompletionTokens }

type ChatResponse struct {
	Content string
	Model   string
	Usage   Usage
	// Cost is an estimate in USD, 0 for models without a known price.
	Cost float64
}

// Generator is the narrow contract generation services depend on.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AILog stores LLM usage logs (system monitoring purpose)
// Collection: ai_logs
type AILog struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID        string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Provider         string             `bson:"provider" json:"provider"`
	ModelName        string             `bson:"model_name" json:"model_name"`
	PromptTokens     int64              `bson:"prompt_tokens" json:"prompt_tokens"`
	CompletionTokens int64              `bson:"completion_tokens" json:"completion_tokens"`
	TotalTokens      int64              `bson:"total_tokens" json:"total_tokens"`
	CostUSD          float64            `bson:"cost_usd" json:"cost_usd"`
	DurationMs       int64              `bson:"duration_ms" json:"duration_ms"`
	JSONMode         bool               `bson:"json_mode" json:"json_mode"`
	ErrorMessage     *string            `bson:"error_message,omitempty" json:"error_message,omitempty"`
	InputPrompt      string             `bson:"input_prompt" json:"input_prompt"`
	OutputResponse   string             `bson:"output_response" json:"output_response"`
	RequestedAt      time.Time          `bson:"requested_at" json:"requested_at"`
	CompletedAt      time.Time          `bson:"completed_at" json:"completed_at"`
}

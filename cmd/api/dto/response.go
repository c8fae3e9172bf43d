package dto

import "editorial-cms/validation"

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
// Error 는 클라이언트가 분기할 수 있는 고정 코드다 (validation_failed, ai_not_configured, ...).
type ErrorResponseDTO struct {
	Error   string                  `json:"error" example:"validation_failed"`
	Details []validation.FieldError `json:"details,omitempty"`
}

// MessageResponseDTO는 단순 메시지 응답 형식을 통일하기 위한 DTO이다.
type MessageResponseDTO struct {
	Message string `json:"message" example:"ok"`
}

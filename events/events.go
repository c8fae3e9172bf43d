package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	PostCreated       EventType = "post.created"
	PostUpdated       EventType = "post.updated"
	PostPublished     EventType = "post.published"
	PostSlugCollision EventType = "post.slug_collision"
)

// Version 은 페이로드 스키마 버전이다.
const Version = "1.0"

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

func NewBaseEvent(t EventType, source string, at time.Time) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: at,
		Source:    source,
		Version:   Version,
	}
}

// PostChangedEvent 는 포스트가 저장된 뒤 발행된다 (created/updated/published 공용).
type PostChangedEvent struct {
	BaseEvent
	PostID       primitive.ObjectID `json:"post_id"`
	Title        string             `json:"title"`
	Slug         string             `json:"slug"`
	Status       string             `json:"status"`
	State        string             `json:"state"`
	PublishedAt  *time.Time         `json:"published_at,omitempty"`
	SlugVerified bool               `json:"slug_verified"`
}

// SlugCollisionEvent 는 비동기 슬러그 재검증에서 중복이 발견되었을 때 발행된다.
type SlugCollisionEvent struct {
	BaseEvent
	PostID primitive.ObjectID `json:"post_id"`
	Slug   string             `json:"slug"`
	Count  int64              `json:"count"`
}

// SerializeEvent 이벤트를 JSON으로 직렬화하고 타입 정보 반환
func SerializeEvent(event any) ([]byte, EventType, error) {
	var eventType EventType

	switch e := event.(type) {
	case PostChangedEvent:
		eventType = e.Type
	case SlugCollisionEvent:
		eventType = e.Type
	default:
		return nil, "", fmt.Errorf("unknown event type: %T", event)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal event: %w", err)
	}

	return data, eventType, nil
}

// DeserializeEvent 이벤트 타입에 따라 적절한 구조체로 역직렬화
func DeserializeEvent(eventType EventType, data []byte) (any, error) {
	var event any

	switch eventType {
	case PostCreated, PostUpdated, PostPublished:
		event = &PostChangedEvent{}
	case PostSlugCollision:
		event = &SlugCollisionEvent{}
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}

	if err := json.Unmarshal(data, event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return event, nil
}

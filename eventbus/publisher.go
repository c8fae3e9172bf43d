package eventbus

import (
	"context"
	"fmt"

	"editorial-cms/events"
)

// Publisher 는 도메인 이벤트를 직렬화해 하나의 토픽으로 발행한다.
// lifecycle 의 감사(audit) 훅이 이 타입을 사용한다.
type Publisher struct {
	bus   EventBus
	topic Topic
}

func NewPublisher(bus EventBus, topic Topic) *Publisher {
	return &Publisher{bus: bus, topic: topic}
}

// Record 는 events 패키지의 이벤트 값을 받아 발행한다.
func (p *Publisher) Record(ctx context.Context, event any) error {
	data, eventType, err := events.SerializeEvent(event)
	if err != nil {
		return err
	}
	id := ""
	switch e := event.(type) {
	case events.PostChangedEvent:
		id = e.ID
	case events.SlugCollisionEvent:
		id = e.ID
	}
	if err := p.bus.Publish(ctx, p.topic.Base(), Event{ID: id, Type: string(eventType), Payload: data}); err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}
	return nil
}

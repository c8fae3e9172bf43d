package eventbus

import (
	"strings"

	"editorial-cms/config"
)

// Enabled 는 브로커 주소가 설정되어 있을 때만 true 이다.
// 비어 있으면 API 는 감사 이벤트를 로그로만 남긴다.
func Enabled(cfg config.KafkaConfig) bool {
	return strings.TrimSpace(cfg.BootstrapServers) != ""
}

// TopicFromConfig returns the configured post events topic, or TopicPostEvents.
func TopicFromConfig(cfg config.KafkaConfig) Topic {
	if t := strings.TrimSpace(cfg.Topic); t != "" {
		return NewTopic(t)
	}
	return TopicPostEvents
}

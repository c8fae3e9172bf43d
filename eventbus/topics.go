package eventbus

// TopicPostEvents 는 설정에 토픽이 없을 때 쓰는 기본 포스트 이벤트 토픽이다.
var TopicPostEvents = NewTopic("editorial.post.events")

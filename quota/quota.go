package quota

import (
	"context"
	"sync"
	"time"

	"editorial-cms/config"
)

// Limiter 는 외부 호출 직전에 한도를 예약한다.
// (false, nil) 은 일일 한도 소진, (false, err) 는 대기 중 컨텍스트 취소를 뜻한다.
type Limiter interface {
	WaitAndReserve(ctx context.Context) (bool, error)
}

// RequestLimiter 는 LLM 게이트웨이 호출에 대한 분당 간격과 일일 한도를 인메모리로 관리한다.
// API 프로세스가 하나라는 전제이며 재시작하면 카운터가 초기화된다.
type RequestLimiter struct {
	mu  sync.Mutex
	now func() time.Time

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time
}

// New 는 0 이하의 값을 "제한 없음"으로 해석한다.
func New(requestsPerMinute, requestsPerDay int) *RequestLimiter {
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}
	var interval time.Duration
	if requestsPerMinute > 0 {
		interval = time.Minute / time.Duration(requestsPerMinute)
	}
	return &RequestLimiter{
		now:        time.Now,
		dailyLimit: requestsPerDay,
		interval:   interval,
	}
}

func NewFromConfig(cfg config.QuotaConfig) *RequestLimiter {
	return New(cfg.RequestsPerMinute, cfg.RequestsPerDay)
}

// WithClock replaces the time source. Tests only.
func (l *RequestLimiter) WithClock(now func() time.Time) *RequestLimiter {
	l.now = now
	return l
}

func (l *RequestLimiter) WaitAndReserve(ctx context.Context) (bool, error) {
	for {
		l.mu.Lock()

		now := l.now().UTC()
		todayKey := now.Format("2006-01-02")
		if l.dayKey != todayKey {
			l.dayKey = todayKey
			l.usedToday = 0
		}

		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return false, nil
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			delay = l.lastCall.Add(l.interval).Sub(now)
		}

		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return true, nil
		}

		// 락을 풀고 기다린 뒤 상태를 다시 평가한다.
		l.mu.Unlock()
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return false, ctx.Err()
		}
	}
}

// Remaining 은 오늘 남은 호출 수를 반환한다. 일일 한도가 없으면 -1.
func (l *RequestLimiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.dailyLimit <= 0 {
		return -1
	}
	if l.dayKey != l.now().UTC().Format("2006-01-02") {
		return l.dailyLimit
	}
	return l.dailyLimit - l.usedToday
}

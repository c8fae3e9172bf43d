package quota_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"editorial-cms/config"
	"editorial-cms/quota"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func TestDailyLimit(t *testing.T) {
	c := &clock{t: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
	l := quota.New(0, 2).WithClock(c.Now)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.WaitAndReserve(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.WaitAndReserve(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, l.Remaining())

	c.Set(c.Now().Add(24 * time.Hour))
	assert.Equal(t, 2, l.Remaining())
	ok, err = l.WaitAndReserve(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUnlimited(t *testing.T) {
	l := quota.NewFromConfig(config.QuotaConfig{})
	for i := 0; i < 100; i++ {
		ok, err := l.WaitAndReserve(context.Background())
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.Equal(t, -1, l.Remaining())
}

func TestIntervalWaitHonorsContext(t *testing.T) {
	c := &clock{t: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
	// one call per minute; the frozen clock forces the second call to wait
	l := quota.New(1, 0).WithClock(c.Now)

	ok, err := l.WaitAndReserve(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	ok, err = l.WaitAndReserve(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestIntervalElapsed(t *testing.T) {
	c := &clock{t: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
	l := quota.New(60, 0).WithClock(c.Now)

	ok, _ := l.WaitAndReserve(context.Background())
	require.True(t, ok)
	c.Set(c.Now().Add(2 * time.Second))
	ok, err := l.WaitAndReserve(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

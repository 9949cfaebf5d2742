package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInterval(t *testing.T) {
	require.Equal(t, time.Minute, Minute.Duration())
	require.Equal(t, time.Hour, Hour.Duration())
	require.Equal(t, "minute", Minute.String())
	require.Equal(t, "hour", Hour.String())
}

func TestLimitIsUnlimited(t *testing.T) {
	require.True(t, Limit{}.IsUnlimited())
	require.False(t, Limit{Value: 1, Interval: Hour}.IsUnlimited())
}

func TestFakeRateLimiterRecordsKeys(t *testing.T) {
	rl := NewFakeRateLimiter(false)
	result := rl.CheckLimit(context.Background(), "a", Limit{Value: 1})
	require.False(t, result.IsAllowed)

	rl.IsAllowed = true
	result = rl.CheckLimit(context.Background(), "b", Limit{Value: 1})
	require.True(t, result.IsAllowed)
	require.Equal(t, []string{"a", "b"}, rl.Keys)
}

package ratelim

import (
	"testing"
	"time"
)

func TestLimiterReusedPerVisitor(t *testing.T) {
	rl := NewRateLimiter()

	first := rl.getLimiter("10.0.0.1:1234")
	second := rl.getLimiter("10.0.0.1:1234")
	if first != second {
		t.Error("same visitor should keep the same limiter")
	}
	if first == rl.getLimiter("10.0.0.2:1234") {
		t.Error("distinct visitors must not share a limiter")
	}
}

func TestEvictIdleKeepsActiveVisitors(t *testing.T) {
	rl := NewRateLimiter()

	active := rl.getLimiter("10.0.0.1:1234")
	rl.getLimiter("10.0.0.2:1234")
	rl.visitors["10.0.0.2:1234"].lastSeen = time.Now().Add(-idleEviction - time.Minute)

	rl.evictIdle(time.Now().Add(-idleEviction))

	if _, ok := rl.visitors["10.0.0.2:1234"]; ok {
		t.Error("idle visitor should be evicted")
	}
	if rl.getLimiter("10.0.0.1:1234") != active {
		t.Error("active visitor must keep its bucket across cleanup")
	}
}

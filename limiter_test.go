package website

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginLimiterBlocksAfterMaxFailures(t *testing.T) {
	l := NewLoginLimiter(2, time.Minute)
	defer l.Stop()
	ip := "203.0.113.10"

	assert.True(t, l.Check(ip))
	l.Record(ip)
	assert.True(t, l.Check(ip))
	l.Record(ip)
	assert.False(t, l.Check(ip), "third attempt should be blocked")
}

func TestLoginLimiterCheckDoesNotRecord(t *testing.T) {
	l := NewLoginLimiter(1, time.Minute)
	defer l.Stop()

	for i := 0; i < 5; i++ {
		assert.True(t, l.Check("203.0.113.11"))
	}
}

func TestLoginLimiterResetsAfterWindow(t *testing.T) {
	l := NewLoginLimiter(1, 100*time.Millisecond)
	defer l.Stop()
	ip := "203.0.113.20"

	l.Record(ip)
	assert.False(t, l.Check(ip))

	time.Sleep(150 * time.Millisecond)
	assert.True(t, l.Check(ip))
}

func TestLoginLimiterIsPerIP(t *testing.T) {
	l := NewLoginLimiter(1, time.Minute)
	defer l.Stop()

	l.Record("203.0.113.30")
	assert.False(t, l.Check("203.0.113.30"))
	assert.True(t, l.Check("203.0.113.31"))
}

func TestLoginLimiterPrune(t *testing.T) {
	l := NewLoginLimiter(1, 50*time.Millisecond)
	defer l.Stop()

	l.Record("203.0.113.40")
	time.Sleep(80 * time.Millisecond)
	l.prune()

	l.mu.Lock()
	_, ok := l.failures["203.0.113.40"]
	l.mu.Unlock()
	assert.False(t, ok)
}

func TestLoginLimiterStopTwice(t *testing.T) {
	l := NewLoginLimiter(1, time.Minute)
	l.Stop()
	l.Stop()
}

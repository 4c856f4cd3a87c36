package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/farplay/blackjack/internal/domain"
	"github.com/farplay/blackjack/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

func newTestManager() *PlayerLockManager {
	return NewPlayerLockManager(logger.NewLogger("test", "error"))
}

func TestLockSerializesSameAddress(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	var inCritical int
	var maxInCritical int
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, m.Lock(ctx, "0xabc"))
			mu.Lock()
			inCritical++
			if inCritical > maxInCritical {
				maxInCritical = inCritical
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inCritical--
			mu.Unlock()
			m.Unlock("0xabc")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInCritical, "critical section must be exclusive per address")
}

func TestLockDifferentAddressesDoNotContend(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	assert.NoError(t, m.Lock(ctx, "0xaaa"))
	assert.NoError(t, m.Lock(ctx, "0xbbb"))

	m.Unlock("0xaaa")
	m.Unlock("0xbbb")
}

func TestLockCancelledContext(t *testing.T) {
	m := newTestManager()

	assert.NoError(t, m.Lock(context.Background(), "0xheld"))
	defer m.Unlock("0xheld")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := m.Lock(ctx, "0xheld")
	assert.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeLockTimeout))
}

func TestTryLock(t *testing.T) {
	m := newTestManager()

	assert.True(t, m.TryLock("0xccc"))
	assert.False(t, m.TryLock("0xccc"))

	m.Unlock("0xccc")
	assert.True(t, m.TryLock("0xccc"))
	m.Unlock("0xccc")
}

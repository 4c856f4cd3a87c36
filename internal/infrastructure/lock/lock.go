package lock

import (
	"context"
	"sync"
	"time"

	"github.com/farplay/blackjack/internal/domain"
	"github.com/farplay/blackjack/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const acquireTimeout = 5 * time.Second

// PlayerLockManager serializes game actions per player address. Two rapid
// requests for the same address (a double-tap) take turns; requests for
// different addresses never contend.
type PlayerLockManager struct {
	locks  sync.Map // map[string]*sync.Mutex
	logger *logger.Logger
}

// NewPlayerLockManager creates a new player lock manager
func NewPlayerLockManager(log *logger.Logger) *PlayerLockManager {
	return &PlayerLockManager{logger: log}
}

// Lock acquires the lock for the given address, bounded by the context and a
// hard timeout. A timed-out acquisition surfaces as a retryable failure
// instead of hanging the request.
func (m *PlayerLockManager) Lock(ctx context.Context, address string) error {
	mu := m.getOrCreateMutex(address)

	lockChan := make(chan struct{})
	go func() {
		mu.Lock()
		close(lockChan)
	}()

	select {
	case <-lockChan:
		m.logger.Debug("Acquired player lock", zap.String("address", address))
		return nil
	case <-ctx.Done():
		m.logger.Warn("Failed to acquire player lock: context cancelled", zap.String("address", address), zap.Error(ctx.Err()))
		go func() {
			// The pending goroutine will still grab the mutex; release it
			// once it does so the next caller is not blocked forever.
			<-lockChan
			mu.Unlock()
		}()
		return domain.NewAppError(domain.ErrCodeLockTimeout, "Failed to acquire player lock", 503, ctx.Err())
	case <-time.After(acquireTimeout):
		m.logger.Warn("Failed to acquire player lock: timeout", zap.String("address", address), zap.Duration("timeout", acquireTimeout))
		go func() {
			<-lockChan
			mu.Unlock()
		}()
		return domain.NewAppError(domain.ErrCodeLockTimeout, "Failed to acquire player lock", 503, nil)
	}
}

// Unlock releases the lock for the given address
func (m *PlayerLockManager) Unlock(address string) {
	muInterface, ok := m.locks.Load(address)
	if !ok {
		m.logger.Warn("No lock found during unlock", zap.String("address", address))
		return
	}
	muInterface.(*sync.Mutex).Unlock()
	m.logger.Debug("Released player lock", zap.String("address", address))
}

// TryLock attempts to acquire the lock without blocking
func (m *PlayerLockManager) TryLock(address string) bool {
	return m.getOrCreateMutex(address).TryLock()
}

func (m *PlayerLockManager) getOrCreateMutex(address string) *sync.Mutex {
	if mu, ok := m.locks.Load(address); ok {
		return mu.(*sync.Mutex)
	}
	actual, _ := m.locks.LoadOrStore(address, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

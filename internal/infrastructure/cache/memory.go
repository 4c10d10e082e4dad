package cache

import (
	"sync"
	"time"
)

// MemoryStore is a simple in-memory key-value store with expiration
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*memoryItem

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

type memoryItem struct {
	value      string
	expireTime time.Time
}

func (i *memoryItem) expired(now time.Time) bool {
	return now.After(i.expireTime)
}

// NewMemoryStore creates a new in-memory store.
// Expired items are swept every cleanupInterval until Close is called.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	if cleanupInterval <= 0 {
		cleanupInterval = 5 * time.Minute
	}
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}

	go store.cleanupExpired(cleanupInterval)

	return store
}

// SetNX stores the pair only when key is absent or expired
func (ms *MemoryStore) SetNX(key string, value string, expiration time.Duration) bool {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	if item, exists := ms.items[key]; exists && !item.expired(now) {
		return false
	}
	ms.items[key] = &memoryItem{
		value:      value,
		expireTime: now.Add(expiration),
	}
	return true
}

// CompareAndDelete removes key only while it still holds value
func (ms *MemoryStore) CompareAndDelete(key string, value string) bool {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	item, exists := ms.items[key]
	if !exists || item.value != value || item.expired(time.Now()) {
		return false
	}
	delete(ms.items, key)
	return true
}

// Close stops the cleanup goroutine
func (ms *MemoryStore) Close() {
	ms.stopOnce.Do(func() { close(ms.stop) })
	<-ms.done
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired(interval time.Duration) {
	defer close(ms.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ms.stop:
			return
		case <-ticker.C:
			ms.mu.Lock()
			now := time.Now()
			for key, item := range ms.items {
				if item.expired(now) {
					delete(ms.items, key)
				}
			}
			ms.mu.Unlock()
		}
	}
}

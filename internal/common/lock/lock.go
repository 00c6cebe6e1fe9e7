// Package lock provides per-key mutual exclusion. The session orchestrator
// uses it to serialize moves within one session, and the matchmaking service
// uses it to serialize membership mutations within one lobby.
package lock

import (
	"sync"
)

// keyMutex wraps a mutex so it can live in the sync.Map.
type keyMutex struct {
	mu sync.Mutex
}

// KeyedLock provides one mutex per string key. Callers queue in arrival
// order; no ordering exists across different keys.
type KeyedLock struct {
	locks sync.Map // map[string]*keyMutex
}

// New creates a new KeyedLock.
func New() *KeyedLock {
	return &KeyedLock{}
}

// getLock retrieves or creates the mutex for a key.
func (kl *KeyedLock) getLock(key string) *keyMutex {
	if v, ok := kl.locks.Load(key); ok {
		return v.(*keyMutex)
	}
	actual, _ := kl.locks.LoadOrStore(key, &keyMutex{})
	return actual.(*keyMutex)
}

// Lock acquires the lock for a key, blocking until it is available.
func (kl *KeyedLock) Lock(key string) {
	kl.getLock(key).mu.Lock()
}

// Unlock releases the lock for a key.
func (kl *KeyedLock) Unlock(key string) {
	if v, ok := kl.locks.Load(key); ok {
		v.(*keyMutex).mu.Unlock()
	}
}

// Forget drops the mutex for a key. Call only after the keyed entity is
// retired and no caller can still be queued on it.
func (kl *KeyedLock) Forget(key string) {
	kl.locks.Delete(key)
}

// WithLock runs fn while holding the key's lock.
func (kl *KeyedLock) WithLock(key string, fn func() error) error {
	kl.Lock(key)
	defer kl.Unlock(key)
	return fn()
}

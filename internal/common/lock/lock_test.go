package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLockSerializes(t *testing.T) {
	kl := New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = kl.WithLock("session-1", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestIndependentKeysDoNotBlock(t *testing.T) {
	kl := New()

	kl.Lock("a")
	defer kl.Unlock("a")

	done := make(chan struct{})
	go func() {
		kl.Lock("b")
		kl.Unlock("b")
		close(done)
	}()

	<-done
}

func TestForget(t *testing.T) {
	kl := New()
	kl.Lock("gone")
	kl.Unlock("gone")
	kl.Forget("gone")

	// A fresh mutex must be usable after Forget.
	err := kl.WithLock("gone", func() error { return nil })
	assert.NoError(t, err)
}

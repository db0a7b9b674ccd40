package xor

import (
	"fmt"
	"sync"

	"github.com/awnumar/memcall"
	"github.com/awnumar/memguard"
)

// Allocation is done through memcall directly rather than memguard.NewBuffer, since memguard purges every buffer in the process when it fails to lock memory.
var (
	allocMemory = memcall.Alloc
	lockMemory  = memcall.Lock
)

// lockedKey holds key bytes in an mmap region outside the Go heap, locked against swapping and read-only while alive.
type lockedKey struct {
	mu   sync.Mutex
	data []byte
}

func newLockedKey(key []byte) (*lockedKey, error) {
	data, err := allocMemory(len(key))
	if err != nil {
		return nil, fmt.Errorf("%w: allocation failed: %w", ErrKeyStorage, err)
	}
	if err := lockMemory(data); err != nil {
		_ = memcall.Free(data)
		return nil, fmt.Errorf("%w: mlock failed: %w", ErrKeyStorage, err)
	}
	copy(data, key)
	if err := memcall.Protect(data, memcall.ReadOnly()); err != nil {
		wipeAndFree(data)
		return nil, fmt.Errorf("%w: protect failed: %w", ErrKeyStorage, err)
	}
	return &lockedKey{data: data}, nil
}

// use calls fn with the key while holding it alive.
// ErrUseAfterDestroy is returned if the key has already been released.
func (k *lockedKey) use(fn func(key []byte) error) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.data == nil {
		return ErrUseAfterDestroy
	}
	return fn(k.data)
}

func (k *lockedKey) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.data)
}

func (k *lockedKey) alive() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.data != nil
}

// destroy zeroes the key and returns its memory. Only the first call has any effect.
func (k *lockedKey) destroy() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.data == nil {
		return
	}
	wipeAndFree(k.data)
	k.data = nil
}

func wipeAndFree(data []byte) {
	if err := memcall.Protect(data, memcall.ReadWrite()); err == nil {
		memguard.WipeBytes(data)
	}
	_ = memcall.Unlock(data)
	_ = memcall.Free(data)
}

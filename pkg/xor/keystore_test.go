package xor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCipher_LockFailure(t *testing.T) {
	survivor, err := NewCipher([]byte("AB"))
	require.NoError(t, err)
	defer survivor.Destroy()

	limitErr := errors.New("could not acquire lock, limit reached?")
	orig := lockMemory
	defer func() {
		lockMemory = orig
	}()
	lockMemory = func([]byte) error {
		return limitErr
	}

	for i := 0; i < 3; i++ {
		_, err = NewCipher([]byte("another key"))
		assert.ErrorIs(t, err, ErrKeyStorage)
		assert.ErrorIs(t, err, limitErr)
	}

	// Failing to lock a new key must leave existing keys alone.
	assert.False(t, survivor.Destroyed())
	out, err := survivor.Encrypt([]byte{0x10, 0x20, 0x30})
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x51, 0x62, 0x71}, out)
}

func TestNewCipher_AllocFailure(t *testing.T) {
	orig := allocMemory
	defer func() {
		allocMemory = orig
	}()
	allocMemory = func(int) ([]byte, error) {
		return nil, errors.New("out of memory")
	}

	_, err := NewCipher([]byte("key"))
	assert.ErrorIs(t, err, ErrKeyStorage)
}

func TestLockedKey_Destroy(t *testing.T) {
	k, err := newLockedKey([]byte("secret"))
	require.NoError(t, err)
	assert.True(t, k.alive())
	assert.Equal(t, 6, k.size())

	var seen []byte
	assert.NoError(t, k.use(func(key []byte) error {
		seen = append(seen, key...)
		return nil
	}))
	assert.Equal(t, []byte("secret"), seen)

	k.destroy()
	assert.False(t, k.alive())
	assert.Equal(t, 0, k.size())
	assert.NotPanics(t, k.destroy)
	assert.ErrorIs(t, k.use(func([]byte) error {
		return nil
	}), ErrUseAfterDestroy)
}

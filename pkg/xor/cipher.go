package xor

import (
	"fmt"
)

// Cipher is a repeating-key XOR stream cipher holding its own copy of the key.
//
// The key is stored in locked memory outside the Go heap, so it's kept out of swap and is wiped when Destroy is called.
// A Cipher is immutable between construction and Destroy, and may be shared between goroutines during that time.
// Destroy should only be called once nothing else will use the Cipher, typically from a finalizer or a Close method.
type Cipher struct {
	key *lockedKey
}

// NewCipher copies key into locked memory and returns a live Cipher.
// The caller's slice is neither retained nor modified, so it may be reused or wiped as soon as NewCipher returns.
// If locked memory isn't available, ErrKeyStorage is returned and no other Cipher is affected.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: key cannot be empty", ErrInvalidArgument)
	}
	stored, err := newLockedKey(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{key: stored}, nil
}

// Encrypt screens plaintext with the key, returning a new slice of the same length.
// An empty plaintext is rejected with ErrInvalidArgument, and using a destroyed Cipher returns ErrUseAfterDestroy.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	if c == nil || c.key == nil {
		return nil, ErrUseAfterDestroy
	}
	var out []byte
	err := c.key.use(func(key []byte) error {
		if len(plaintext) == 0 {
			return fmt.Errorf("%w: plaintext cannot be empty", ErrInvalidArgument)
		}
		var err error
		out, err = Transform(key, plaintext)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Decrypt is Encrypt.
// XOR with the same key is its own inverse, so there's no separate decryption routine.
func (c *Cipher) Decrypt(ciphertext []byte) ([]byte, error) {
	return c.Encrypt(ciphertext)
}

// Destroy wipes the key and releases its memory.
// It's safe to call more than once, and on a nil or zero value Cipher.
func (c *Cipher) Destroy() {
	if c == nil || c.key == nil {
		return
	}
	c.key.destroy()
}

// Destroyed reports whether the key has been released.
func (c *Cipher) Destroyed() bool {
	return c == nil || c.key == nil || !c.key.alive()
}

// KeyLen returns the length of the stored key, which is 0 once the Cipher is destroyed.
func (c *Cipher) KeyLen() int {
	if c == nil || c.key == nil {
		return 0
	}
	return c.key.size()
}

// String describes the Cipher without revealing any key material.
func (c *Cipher) String() string {
	if c.Destroyed() {
		return "xor.Cipher(destroyed)"
	}
	return fmt.Sprintf("xor.Cipher(%d byte key)", c.KeyLen())
}

package xor

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	// DeriveIterations is the scrypt cost factor used by DeriveKey.
	DeriveIterations = 1 << 17
	// DeriveRelBlockSize is the scrypt relative block size used by DeriveKey.
	DeriveRelBlockSize = 8
	// DeriveCPUCost is the scrypt parallelism factor used by DeriveKey.
	DeriveCPUCost = 1
	// MaxKeyLen is the largest key GenKey or DeriveKey will produce.
	MaxKeyLen = 1 << 20
)

// GenKey will generate an XOR key with the given length.
func GenKey(length int) ([]byte, error) {
	if length <= 0 || length > MaxKeyLen {
		return nil, fmt.Errorf("%w: key length %d must be between 1 and %d", ErrInvalidArgument, length, MaxKeyLen)
	}
	buf := make([]byte, length)
	n, err := rand.Read(buf)
	if n < length {
		return nil, fmt.Errorf("failed to read requested bytes: %v", err)
	}
	return buf, nil
}

// DeriveKey stretches a passphrase into an XOR key of the given length with scrypt.
// The same passphrase and salt always produce the same key, so the salt must be kept alongside anything screened with it.
func DeriveKey(pass, salt []byte, length int) ([]byte, error) {
	if len(pass) == 0 {
		return nil, fmt.Errorf("%w: cannot use an empty passphrase", ErrInvalidArgument)
	}
	if length <= 0 || length > MaxKeyLen {
		return nil, fmt.Errorf("%w: key length %d must be between 1 and %d", ErrInvalidArgument, length, MaxKeyLen)
	}
	return scrypt.Key(pass, salt, DeriveIterations, DeriveRelBlockSize, DeriveCPUCost, length)
}

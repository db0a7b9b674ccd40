package xor

import "errors"

var (
	// ErrInvalidArgument is returned when a key or payload can't be used, like an empty key or message.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUseAfterDestroy is returned when a Cipher is used after Destroy has released its key.
	ErrUseAfterDestroy = errors.New("cipher used after destroy")
	// ErrKeyStorage is returned when locked memory for a key can't be set up, like when RLIMIT_MEMLOCK is exhausted.
	ErrKeyStorage = errors.New("unable to store key")
)

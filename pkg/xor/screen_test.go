package xor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewXorScreenNeg(t *testing.T) {
	_, err := newXorScreen(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = newXorScreen([]byte{0}, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = newXorScreen([]byte{0}, 1)
	assert.Error(t, err)
	_, err = newXorScreen([]byte{0}, 2)
	assert.Error(t, err)
}

func TestXorScreen_WrapsAround(t *testing.T) {
	scr, err := newXorScreen([]byte{0x1, 0x2}, 1)
	assert.NoError(t, err)

	out := make([]byte, 3)
	scr.screenAll(out, []byte{0x0, 0x0, 0x0})
	assert.Equal(t, []byte{0x2, 0x1, 0x2}, out)

	scr.reset()
	assert.Equal(t, byte(0x2), scr.screen(0x0))
}

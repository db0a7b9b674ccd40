package xor

import (
	"fmt"
)

type xorScreen struct {
	key  []byte
	init int
	cur  int
}

func newXorScreen(key []byte, offset ...int) (*xorScreen, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: cannot use empty key", ErrInvalidArgument)
	}
	s := &xorScreen{
		key: key,
	}
	if len(offset) > 0 {
		if err := s.restart(offset[0]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// restart moves the starting position of the screen to offset.
func (s *xorScreen) restart(offset int) error {
	if offset < 0 || offset >= len(s.key) {
		return fmt.Errorf("%w: offset %d out of range for provided key of len %d", ErrInvalidArgument, offset, len(s.key))
	}
	s.init = offset
	s.cur = offset
	return nil
}

func (s *xorScreen) screen(b byte) byte {
	b ^= s.key[s.cur]
	s.cur = (s.cur + 1) % len(s.key)
	return b
}

func (s *xorScreen) reset() {
	s.cur = s.init
}

// screenAll applies the screen to every byte of in, writing the results to out.
// out must be at least as long as in.
func (s *xorScreen) screenAll(out, in []byte) {
	for i := 0; i < len(in); i++ {
		out[i] = s.screen(in[i])
	}
}

package xor

import (
	"io"
)

// Reader screens every byte read from its source with a repeating key.
// Since screening is symmetric, the same Reader type both applies and removes a screen.
type Reader interface {
	io.Reader
	// Reset switches to reading from source and rewinds to the start of the key.
	// If an offset is given it becomes the new starting position, and is validated against the key length.
	Reset(source io.Reader, offset ...int) error
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	scr    *xorScreen
}

func (r *reader) Read(out []byte) (n int, err error) {
	n, err = r.source.Read(out)
	r.scr.screenAll(out[:n], out[:n])
	return n, err
}

func (r *reader) Reset(source io.Reader, offset ...int) error {
	if len(offset) > 0 {
		if err := r.scr.restart(offset[0]); err != nil {
			return err
		}
	}
	r.source = source
	r.scr.reset()
	return nil
}

// NewReader constructs a Reader that screens everything read from r with key, starting at offset.
// The key slice is used as-is, so it must not be modified while the Reader is in use.
func NewReader(r io.Reader, key []byte, offset ...int) (Reader, error) {
	scr, err := newXorScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return &reader{
		source: r,
		scr:    scr,
	}, nil
}

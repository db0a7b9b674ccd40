package xor

// Transform applies the repeating key to input and returns a newly allocated result of the same length.
// Byte i of the output is input[i] ^ key[i%len(key)], so applying Transform twice with the same key yields the original input.
//
// An empty key returns ErrInvalidArgument. An empty input is valid and produces an empty output.
func Transform(key, input []byte) ([]byte, error) {
	scr, err := newXorScreen(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(input))
	scr.screenAll(out, input)
	return out, nil
}

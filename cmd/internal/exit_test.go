package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	Logger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	Logger(&buf, true).Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

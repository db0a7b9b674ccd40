package main

import (
	"bytes"
	"encoding/hex"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lua")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	return path
}

func TestRunScript(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	path := writeScript(t, `
		local lxor = require("lxor")
		local c = lxor.new(arg[1])
		assert(c:decrypt(c:encrypt(arg[2])) == arg[2])
	`)

	assert.NoError(t, runScript(logger, path, "key", "message"))
	assert.Contains(t, buf.String(), "registry closed")
}

func TestRunScript_Error(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := writeScript(t, `require("lxor").new("")`)
	assert.ErrorContains(t, runScript(logger, path), "key cannot be empty")

	assert.Error(t, runScript(logger, filepath.Join(t.TempDir(), "missing.lua")))
}

func TestScreen(t *testing.T) {
	var (
		screened bytes.Buffer
		restored bytes.Buffer
		key      = hex.EncodeToString([]byte("AB"))
	)
	require.NoError(t, screen(bytes.NewReader([]byte{0x10, 0x20, 0x30}), &screened, key, 0))
	assert.Equal(t, []byte{0x51, 0x62, 0x71}, screened.Bytes())

	require.NoError(t, screen(&screened, &restored, key, 0))
	assert.Equal(t, []byte{0x10, 0x20, 0x30}, restored.Bytes())
}

func TestScreen_Neg(t *testing.T) {
	assert.Error(t, screen(strings.NewReader("data"), io.Discard, "", 0))
	assert.Error(t, screen(strings.NewReader("data"), io.Discard, "not hex", 0))
	assert.Error(t, screen(strings.NewReader("data"), io.Discard, "0102", 2))
}

func TestScreenFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.bin")
	require.NoError(t, os.WriteFile(in, []byte("A string with some text"), 0600))

	require.NoError(t, screenFiles("deadbeef", 1, in, out))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, data, len("A string with some text"))
	assert.NotEqual(t, "A string with some text", string(data))

	assert.Error(t, screenFiles("deadbeef", 0, filepath.Join(dir, "missing")))
}

func TestGenKey(t *testing.T) {
	key, err := genKey("16")
	assert.NoError(t, err)
	assert.Len(t, key, 32)

	_, err = genKey("sixteen")
	assert.Error(t, err)
	_, err = genKey("0")
	assert.Error(t, err)
}

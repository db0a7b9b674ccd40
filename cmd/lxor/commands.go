package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/saylorsolutions/luaxor/pkg/lxor"
	"github.com/saylorsolutions/luaxor/pkg/xor"
	lua "github.com/yuin/gopher-lua"
)

// runScript executes the script at path in a fresh LState.
// Every cipher handle is destroyed before runScript returns, whether or not the script succeeded.
func runScript(logger *slog.Logger, path string, args ...string) error {
	L := lua.NewState()
	reg := lxor.Preload(L, lxor.WithLogger(logger))
	defer func() {
		reg.Close()
		L.Close()
	}()

	argTable := L.NewTable()
	argTable.RawSetInt(0, lua.LString(path))
	for i, arg := range args {
		argTable.RawSetInt(i+1, lua.LString(arg))
	}
	L.SetGlobal("arg", argTable)

	logger.Debug("running script", "path", path, "args", len(args))
	return L.DoFile(path)
}

// screen copies in to out through an XOR screen.
func screen(in io.Reader, out io.Writer, hexKey string, offset int) error {
	if len(hexKey) == 0 {
		return errors.New("a key is required, use the --key flag")
	}
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return fmt.Errorf("key must be a hex string with only the characters a-f, A-F, or 0-9: %w", err)
	}
	r, err := xor.NewReader(in, key, offset)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, r)
	return err
}

// screenFiles resolves the optional IN and OUT arguments of the screen command, defaulting to stdin and stdout.
func screenFiles(hexKey string, offset int, paths ...string) error {
	var (
		in  io.Reader = os.Stdin
		out io.Writer = os.Stdout
	)
	if len(paths) > 0 && paths[0] != "-" {
		f, err := os.Open(paths[0])
		if err != nil {
			return err
		}
		defer func() {
			_ = f.Close()
		}()
		in = f
	}
	if len(paths) > 1 && paths[1] != "-" {
		f, err := os.Create(paths[1])
		if err != nil {
			return err
		}
		defer func() {
			_ = f.Close()
		}()
		out = f
	}
	return screen(in, out, hexKey, offset)
}

func genKey(length string) (string, error) {
	n, err := strconv.Atoi(length)
	if err != nil {
		return "", fmt.Errorf("invalid LENGTH '%s': %w", length, err)
	}
	key, err := xor.GenKey(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}

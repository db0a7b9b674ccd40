package lxor

import (
	"fmt"

	"github.com/awnumar/memguard"
	"github.com/saylorsolutions/luaxor/pkg/xor"
	lua "github.com/yuin/gopher-lua"
)

func (r *Registry) open(L *lua.LState) *lua.LTable {
	mt := L.NewTypeMetatable(TypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"encrypt": cipherEncrypt,
		"decrypt": cipherDecrypt,
	}))
	L.SetField(mt, "__tostring", L.NewFunction(cipherToString))
	L.SetField(mt, "__metatable", lua.LString(TypeName))

	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"new":    r.cipherNew,
		"genkey": genKey,
		"derive": deriveKey,
	})
}

// Loader is the lua.LGFunction that require invokes to load the module.
func (r *Registry) Loader(L *lua.LState) int {
	L.Push(r.open(L))
	return 1
}

// raise aborts the running script call with err.
// This is the only place an error from this module crosses into Lua.
func raise(L *lua.LState, err error) {
	L.RaiseError("%s", err.Error())
}

// pushBytes copies out into a Lua string, then wipes out.
func pushBytes(L *lua.LState, out []byte) {
	L.Push(lua.LString(out))
	memguard.WipeBytes(out)
}

// cipherOf verifies that v is a handle created by this module before touching the Cipher inside it.
func cipherOf(L *lua.LState, v lua.LValue) (*xor.Cipher, error) {
	ud, ok := v.(*lua.LUserData)
	if !ok {
		return nil, fmt.Errorf("%w: %s expected, got %s", ErrTypeMismatch, TypeName, v.Type().String())
	}
	mt, ok := L.GetTypeMetatable(TypeName).(*lua.LTable)
	if !ok || ud.Metatable != mt {
		return nil, fmt.Errorf("%w: %s expected, got foreign userdata", ErrTypeMismatch, TypeName)
	}
	c, ok := ud.Value.(*xor.Cipher)
	if !ok || c == nil {
		return nil, fmt.Errorf("%w: %s handle holds %T", ErrTypeMismatch, TypeName, ud.Value)
	}
	return c, nil
}

func checkCipher(L *lua.LState, n int) *xor.Cipher {
	c, err := cipherOf(L, L.Get(n))
	if err != nil {
		L.ArgError(n, err.Error())
		return nil
	}
	return c
}

// lxor.new(key)
func (r *Registry) cipherNew(L *lua.LState) int {
	key := []byte(L.CheckString(1))
	defer memguard.WipeBytes(key)

	c, err := xor.NewCipher(key)
	if err != nil {
		raise(L, err)
		return 0
	}
	ud := L.NewUserData()
	ud.Value = c
	L.SetMetatable(ud, L.GetTypeMetatable(TypeName))
	if err := r.track(ud, c); err != nil {
		c.Destroy()
		raise(L, err)
		return 0
	}
	L.Push(ud)
	return 1
}

// cipher:encrypt(plaintext)
func cipherEncrypt(L *lua.LState) int {
	c := checkCipher(L, 1)
	msg := []byte(L.CheckString(2))
	defer memguard.WipeBytes(msg)
	out, err := c.Encrypt(msg)
	if err != nil {
		raise(L, err)
		return 0
	}
	pushBytes(L, out)
	return 1
}

// cipher:decrypt(ciphertext)
func cipherDecrypt(L *lua.LState) int {
	return cipherEncrypt(L)
}

func cipherToString(L *lua.LState) int {
	c := checkCipher(L, 1)
	if c.Destroyed() {
		L.Push(lua.LString(TypeName + "(destroyed)"))
		return 1
	}
	L.Push(lua.LString(fmt.Sprintf("%s(%d byte key)", TypeName, c.KeyLen())))
	return 1
}

// lxor.genkey(n)
func genKey(L *lua.LState) int {
	key, err := xor.GenKey(L.CheckInt(1))
	if err != nil {
		raise(L, err)
		return 0
	}
	pushBytes(L, key)
	return 1
}

// lxor.derive(passphrase, salt[, n])
func deriveKey(L *lua.LState) int {
	pass := []byte(L.CheckString(1))
	defer memguard.WipeBytes(pass)
	salt := L.CheckString(2)
	key, err := xor.DeriveKey(pass, []byte(salt), L.OptInt(3, DefaultDeriveLen))
	if err != nil {
		raise(L, err)
		return 0
	}
	pushBytes(L, key)
	return 1
}

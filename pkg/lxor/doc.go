/*
Package lxor exposes xor.Cipher to Lua scripts running in a gopher-lua LState.

# Script surface:

	local lxor = require("lxor")
	local c = lxor.new("key")
	local screened = c:encrypt("message")
	assert(c:decrypt(screened) == "message")

The module table also provides genkey(n) for random keys and derive(passphrase, salt[, n]) for scrypt derived keys.
Argument errors abort the calling script with a descriptive message, the same way Lua's own library functions do.

# Lifecycle:

gopher-lua never calls __gc metamethods, so handle reclamation is owned by a Registry instead.
Each handle is tracked by the Registry that created it, and a Go finalizer on the handle destroys its Cipher once the LState no longer references it.
Registry.Close destroys every Cipher that's still alive, and should be called when the host is done with the LState.
*/
package lxor

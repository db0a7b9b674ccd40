/*
Package xor provides a repeating-key XOR stream cipher, along with streaming and key generation helpers.

Note that XOR with a repeating key is easily reversible by anyone who can guess part of the plaintext.
It's useful for preventing passive observation of plain text information, but it is NOT recommended for security critical use.

# How it works:

Every byte of the input is XOR'd with a byte of the key.
Once a key byte is used, the screen will progress to the next byte in the key.
When the last byte is used, the first will be used again, operating like a ring buffer.
Applying the same key a second time restores the original bytes, which is why Cipher.Decrypt is the same operation as Cipher.Encrypt.

# Pieces:
  - Transform is the pure function at the center of the package. It never modifies its arguments and allocates exactly one output slice.
  - Cipher owns a copy of a key in locked memory, and wipes it when Destroy is called. Destroy is idempotent. If memory can't be locked, NewCipher fails with ErrKeyStorage instead of disturbing other keys.
  - NewReader applies the same screen to an io stream, optionally starting at an offset within the key.
  - GenKey and DeriveKey produce keys from the OS entropy pool or from a passphrase and salt.

# Important note:

The same key (and offset, for streams) must be provided to accurately reverse the process.
Failing to do so will likely result in garbled or partly de-obfuscated data.
*/
package xor

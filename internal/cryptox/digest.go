// Package cryptox holds the cryptographic primitives of assessvault:
// the password verification digest, PBKDF2 key derivation and the
// AES-GCM envelope used to seal stored records.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// DigestSize is the decoded length of a password digest in bytes.
const DigestSize = sha256.Size

// Digest returns the lowercase hex SHA-256 of password.
//
// The digest is unsalted and only suitable for equality checks against the
// stored account digest. It is never used as an encryption key; pass it
// through DeriveKey instead.
func Digest(password []byte) string {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:])
}

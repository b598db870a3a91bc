package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/dmitrijs2005/assessvault/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KDFIterations is the PBKDF2 iteration count. Changing it makes every
	// existing envelope undecryptable.
	KDFIterations = 150_000

	// KeySize is the derived key length (AES-256).
	KeySize = 32

	// SaltSize is the length of a freshly generated account salt.
	SaltSize = 16
)

// LegacySalt is the static salt applied when an account has no salt of its
// own. Only accounts created before per-user salts existed may rely on it.
var LegacySalt = []byte("assessvault-legacy-static-salt-v1")

// Key is a derived symmetric key. The raw key bytes are not retained; only
// the cipher built from them is.
type Key struct {
	aead cipher.AEAD
}

// IsLegacySalt reports whether DeriveKey would fall back to LegacySalt for salt.
func IsLegacySalt(salt string) bool {
	return salt == ""
}

// NewSalt returns a fresh random hex-encoded account salt.
func NewSalt() (string, error) {
	return common.MakeRandHexString(SaltSize)
}

// DeriveKey stretches the hex password digest with the hex salt into an
// AES-256-GCM key. An empty salt selects LegacySalt.
//
// The result is deterministic for the same digest and salt, so records sealed
// in one session open in the next without storing the key.
func DeriveKey(digest, salt string) (*Key, error) {
	digestBytes, err := hex.DecodeString(digest)
	if err != nil || len(digestBytes) != DigestSize {
		return nil, fmt.Errorf("%w: digest must be %d hex-encoded bytes", common.ErrInvalidKeyMaterial, DigestSize)
	}

	saltBytes := LegacySalt
	if !IsLegacySalt(salt) {
		saltBytes, err = hex.DecodeString(salt)
		if err != nil {
			return nil, fmt.Errorf("%w: salt is not valid hex", common.ErrInvalidKeyMaterial)
		}
	}

	raw := pbkdf2.Key(digestBytes, saltBytes, KDFIterations, KeySize, sha256.New)
	defer common.WipeByteArray(raw)

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidKeyMaterial, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidKeyMaterial, err)
	}

	return &Key{aead: aead}, nil
}

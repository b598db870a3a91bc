package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/assessvault/internal/common"
)

// NonceSize is the GCM nonce length in bytes (96 bits).
const NonceSize = 12

const tagSize = 16

// Envelope is a sealed record: the hex nonce and the hex ciphertext with the
// GCM tag appended.
type Envelope struct {
	IV         string `json:"iv"`
	Ciphertext string `json:"ciphertext"`
}

// Marshal encodes the envelope for storage.
func (e *Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// UnmarshalEnvelope decodes a stored envelope. Undecodable input yields
// common.ErrMalformedEnvelope.
func UnmarshalEnvelope(data []byte) (*Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrMalformedEnvelope, err)
	}
	return &e, nil
}

// Encrypt serializes v to JSON and seals it with AES-GCM under key.
//
// A new random nonce is drawn for every call and is also bound as additional
// data, so swapping the iv of two envelopes fails authentication.
func Encrypt(v any, key *Key) (*Envelope, error) {
	if key == nil {
		return nil, common.ErrInvalidKeyMaterial
	}

	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(plaintext)

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	ciphertext := key.aead.Seal(nil, nonce, plaintext, nonce)

	return &Envelope{
		IV:         hex.EncodeToString(nonce),
		Ciphertext: hex.EncodeToString(ciphertext),
	}, nil
}

// Decrypt opens env with key and unmarshals the plaintext JSON into v.
//
// A missing or badly encoded iv or ciphertext yields
// common.ErrMalformedEnvelope. A tag mismatch, whether from a wrong key or
// from modified data, yields common.ErrAuthenticationFailed.
func Decrypt(env *Envelope, key *Key, v any) error {
	if key == nil {
		return common.ErrInvalidKeyMaterial
	}
	if env == nil || env.IV == "" || env.Ciphertext == "" {
		return fmt.Errorf("%w: missing iv or ciphertext", common.ErrMalformedEnvelope)
	}

	nonce, err := hex.DecodeString(env.IV)
	if err != nil || len(nonce) != NonceSize {
		return fmt.Errorf("%w: iv must be %d hex-encoded bytes", common.ErrMalformedEnvelope, NonceSize)
	}
	ciphertext, err := hex.DecodeString(env.Ciphertext)
	if err != nil || len(ciphertext) < tagSize {
		return fmt.Errorf("%w: ciphertext is not valid hex", common.ErrMalformedEnvelope)
	}

	plaintext, err := key.aead.Open(nil, nonce, ciphertext, nonce)
	if err != nil {
		return common.ErrAuthenticationFailed
	}
	defer common.WipeByteArray(plaintext)

	if err := json.Unmarshal(plaintext, v); err != nil {
		return fmt.Errorf("%w: %w", common.ErrMalformedEnvelope, err)
	}
	return nil
}

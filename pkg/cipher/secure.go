package cipher

import (
	"crypto/aes"
	gocipher "crypto/cipher"
	"crypto/pbkdf2"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

const (
	secureMagic      = "N9S"
	secureSaltLen    = 16
	secureIterations = 200_000
	secureKeyLen     = 32
)

// ErrInvalidCiphertext is returned when a secure payload is malformed or
// fails authentication.
var ErrInvalidCiphertext = errors.New("invalid secure ciphertext")

func deriveKey(passphrase string, salt []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyKey
	}
	return pbkdf2.Key(sha256.New, passphrase, salt, secureIterations, secureKeyLen)
}

func newGCM(key []byte) (gocipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return gocipher.NewGCM(block)
}

// EncryptSecure seals text with AES-256-GCM under a PBKDF2-derived key.
// The payload layout is magic || salt || nonce || ciphertext, base64url
// encoded.
func EncryptSecure(text, passphrase string) (string, error) {
	salt := make([]byte, secureSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("cipher: generate salt: %w", err)
	}
	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return "", fmt.Errorf("cipher: %w", err)
	}
	aead, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("cipher: %w", err)
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("cipher: generate nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, []byte(text), nil)
	payload := make([]byte, 0, len(secureMagic)+len(salt)+len(nonce)+len(sealed))
	payload = append(payload, secureMagic...)
	payload = append(payload, salt...)
	payload = append(payload, nonce...)
	payload = append(payload, sealed...)
	return base64.URLEncoding.EncodeToString(payload), nil
}

// DecryptSecure opens a payload produced by EncryptSecure.
func DecryptSecure(ciphertext, passphrase string) (string, error) {
	raw, err := base64.URLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("cipher: %w: %v", ErrInvalidCiphertext, err)
	}
	if len(raw) < len(secureMagic)+secureSaltLen || string(raw[:len(secureMagic)]) != secureMagic {
		return "", fmt.Errorf("cipher: %w", ErrInvalidCiphertext)
	}
	raw = raw[len(secureMagic):]
	salt := raw[:secureSaltLen]
	raw = raw[secureSaltLen:]

	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return "", fmt.Errorf("cipher: %w", err)
	}
	aead, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("cipher: %w", err)
	}
	if len(raw) < aead.NonceSize() {
		return "", fmt.Errorf("cipher: %w", ErrInvalidCiphertext)
	}
	nonce := raw[:aead.NonceSize()]
	sealed := raw[aead.NonceSize():]

	plain, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("cipher: %w: wrong key or corrupted data", ErrInvalidCiphertext)
	}
	return string(plain), nil
}

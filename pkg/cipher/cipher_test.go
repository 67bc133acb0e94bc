package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninefold/novena/pkg/principle"
)

func TestEncryptDecryptRoundtrip(t *testing.T) {
	p := principle.Default()
	plaintexts := []string{
		"hello world",
		"MixedCase WITH 123 digits",
		"symbols! and? marks...",
		"",
	}
	for _, text := range plaintexts {
		ct, err := Encrypt(text, "ninefold", p)
		require.NoError(t, err, text)
		pt, err := Decrypt(ct, "ninefold", p)
		require.NoError(t, err, text)
		assert.Equal(t, text, pt)
	}
}

func TestEncryptChangesText(t *testing.T) {
	p := principle.Default()
	ct, err := Encrypt("hello", "key", p)
	require.NoError(t, err)
	assert.NotEqual(t, "hello", ct)
	assert.Len(t, []rune(ct), 5, "rotation keeps length")
}

func TestEncryptPreservesClassAndSpaces(t *testing.T) {
	p := principle.Default()
	ct, err := Encrypt("ab 12 !.", "key", p)
	require.NoError(t, err)
	runes := []rune(ct)
	assert.Equal(t, ' ', runes[2])
	assert.Equal(t, ' ', runes[5])
}

func TestEncryptLeavesNonASCIILettersAlone(t *testing.T) {
	p := principle.Default()
	ct, err := Encrypt("naïve", "key", p)
	require.NoError(t, err)
	runes := []rune(ct)
	require.Len(t, runes, 5)
	assert.Equal(t, 'ï', runes[2])

	pt, err := Decrypt(ct, "key", p)
	require.NoError(t, err)
	assert.Equal(t, "naïve", pt)
}

func TestEncryptEmptyKey(t *testing.T) {
	p := principle.Default()
	_, err := Encrypt("hello", "", p)
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = Decrypt("hello", "", p)
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestWrongKeyScrambles(t *testing.T) {
	p := principle.Default()
	ct, err := Encrypt("attack at dawn", "right", p)
	require.NoError(t, err)
	pt, err := Decrypt(ct, "wrong", p)
	require.NoError(t, err)
	assert.NotEqual(t, "attack at dawn", pt)
}

func TestSecureRoundtrip(t *testing.T) {
	ct, err := EncryptSecure("the nine remain", "passphrase")
	require.NoError(t, err)
	assert.NotContains(t, ct, "the nine remain")

	pt, err := DecryptSecure(ct, "passphrase")
	require.NoError(t, err)
	assert.Equal(t, "the nine remain", pt)
}

func TestSecureWrongPassphraseFails(t *testing.T) {
	ct, err := EncryptSecure("secret", "correct")
	require.NoError(t, err)
	_, err = DecryptSecure(ct, "incorrect")
	assert.Error(t, err, "GCM authentication must reject a wrong passphrase")
}

func TestSecureRejectsGarbage(t *testing.T) {
	for _, ct := range []string{"", "notbase64!!!", "QUJD"} {
		_, err := DecryptSecure(ct, "passphrase")
		assert.ErrorIs(t, err, ErrInvalidCiphertext, "ciphertext %q", ct)
	}
}

func TestSecureEmptyPassphrase(t *testing.T) {
	_, err := EncryptSecure("secret", "")
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestSecureCiphertextsDiffer(t *testing.T) {
	a, err := EncryptSecure("same input", "same key")
	require.NoError(t, err)
	b, err := EncryptSecure("same input", "same key")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "fresh salt and nonce every call")
}

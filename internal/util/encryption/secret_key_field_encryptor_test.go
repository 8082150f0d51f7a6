package encryption

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEncryptor() *SecretKeyFieldEncryptor {
	return NewSecretKeyFieldEncryptor("0123456789abcdef0123456789abcdef")
}

func Test_Encrypt_Decrypt_RoundTrip(t *testing.T) {
	encryptor := newTestEncryptor()
	itemID := uuid.New()

	encrypted, err := encryptor.Encrypt(itemID, "hunter2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encrypted, encryptedPrefix))
	assert.NotEqual(t, "hunter2", encrypted)

	decrypted, err := encryptor.Decrypt(itemID, encrypted)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", decrypted)
}

func Test_Encrypt_EmptyString_ReturnsEmpty(t *testing.T) {
	encryptor := newTestEncryptor()

	encrypted, err := encryptor.Encrypt(uuid.New(), "")
	require.NoError(t, err)
	assert.Empty(t, encrypted)
}

func Test_Encrypt_AlreadyEncrypted_ReturnsUnchanged(t *testing.T) {
	encryptor := newTestEncryptor()
	itemID := uuid.New()

	encrypted, err := encryptor.Encrypt(itemID, "token-value")
	require.NoError(t, err)

	again, err := encryptor.Encrypt(itemID, encrypted)
	require.NoError(t, err)
	assert.Equal(t, encrypted, again)
}

func Test_Decrypt_Plaintext_ReturnsUnchanged(t *testing.T) {
	encryptor := newTestEncryptor()

	decrypted, err := encryptor.Decrypt(uuid.New(), "not encrypted")
	require.NoError(t, err)
	assert.Equal(t, "not encrypted", decrypted)
}

func Test_Decrypt_MalformedCiphertext_ReturnsError(t *testing.T) {
	encryptor := newTestEncryptor()

	_, err := encryptor.Decrypt(uuid.New(), "enc:!!!:!!!")
	assert.Error(t, err)
}

func Test_Encrypt_DifferentItemIDs_DifferentCiphertext(t *testing.T) {
	encryptor := newTestEncryptor()

	first, err := encryptor.Encrypt(uuid.New(), "hunter2")
	require.NoError(t, err)

	second, err := encryptor.Encrypt(uuid.New(), "hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func Test_Encrypt_ShortMasterKey_ReturnsError(t *testing.T) {
	encryptor := NewSecretKeyFieldEncryptor("too-short")

	_, err := encryptor.Encrypt(uuid.New(), "hunter2")
	assert.Error(t, err)
}

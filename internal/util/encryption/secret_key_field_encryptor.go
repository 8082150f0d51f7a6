package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const encryptedPrefix = "enc:"

// SecretKeyFieldEncryptor encrypts single fields with AES-GCM under a
// master key. The nonce is derived from the owning row's id, so
// re-encrypting the same value for the same row is stable.
type SecretKeyFieldEncryptor struct {
	masterKey func() string
}

func NewSecretKeyFieldEncryptor(masterKey string) *SecretKeyFieldEncryptor {
	return &SecretKeyFieldEncryptor{
		masterKey: func() string { return masterKey },
	}
}

func (e *SecretKeyFieldEncryptor) Encrypt(itemID uuid.UUID, plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	if e.isEncrypted(plaintext) {
		return plaintext, nil
	}

	gcm, err := e.newGCM()
	if err != nil {
		return "", err
	}

	nonce := e.deriveNonce(itemID, gcm.NonceSize())

	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	nonceBase64 := base64.StdEncoding.EncodeToString(nonce)
	ciphertextBase64 := base64.StdEncoding.EncodeToString(ciphertext)

	return fmt.Sprintf("%s%s:%s", encryptedPrefix, nonceBase64, ciphertextBase64), nil
}

func (e *SecretKeyFieldEncryptor) Decrypt(itemID uuid.UUID, ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	if !e.isEncrypted(ciphertext) {
		return ciphertext, nil
	}

	parts := strings.SplitN(ciphertext, ":", 3)
	if len(parts) != 3 {
		return "", errors.New("invalid encrypted format")
	}

	nonce, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("failed to decode nonce: %w", err)
	}

	encryptedData, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	gcm, err := e.newGCM()
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, nonce, encryptedData, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	return string(plaintext), nil
}

func (e *SecretKeyFieldEncryptor) newGCM() (cipher.AEAD, error) {
	masterKey := e.masterKey()
	if len(masterKey) < 32 {
		return nil, errors.New("master key must be at least 32 bytes")
	}

	block, err := aes.NewCipher([]byte(masterKey)[:32])
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return gcm, nil
}

func (e *SecretKeyFieldEncryptor) isEncrypted(value string) bool {
	return strings.HasPrefix(value, encryptedPrefix)
}

func (e *SecretKeyFieldEncryptor) deriveNonce(itemID uuid.UUID, nonceSize int) []byte {
	h := hmac.New(sha256.New, []byte(e.masterKey()))
	h.Write(itemID[:])
	hash := h.Sum(nil)
	return hash[:nonceSize]
}

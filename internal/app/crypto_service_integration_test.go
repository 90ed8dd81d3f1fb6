//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlightlyLoony/rsa-vault/internal/pkg/config"
)

// generateTestKeyPair generates a key pair and returns (privateID, publicID).
func generateTestKeyPair(t *testing.T, services *TestServices) (string, string) {
	t.Helper()

	keyMetas, err := services.KeyVaultService.Generate(context.Background(), 1024)
	require.NoError(t, err)
	require.Len(t, keyMetas, 2)
	return keyMetas[0].ID, keyMetas[1].ID
}

func TestCryptoService_EncryptDecrypt(t *testing.T) {
	services := SetupTestServices(t, config.DBTypeSqlite)
	privateID, publicID := generateTestKeyPair(t, services)

	plainText := []byte("This is a secret message")
	label := []byte("test")

	cipherText, err := services.CryptoService.Encrypt(context.Background(), publicID, plainText, label)
	require.NoError(t, err)
	assert.NotEqual(t, plainText, cipherText)

	decrypted, err := services.CryptoService.Decrypt(context.Background(), privateID, cipherText, label)
	require.NoError(t, err)
	assert.Equal(t, plainText, decrypted)
}

func TestCryptoService_DecryptWithWrongLabel(t *testing.T) {
	services := SetupTestServices(t, config.DBTypeSqlite)
	privateID, publicID := generateTestKeyPair(t, services)

	cipherText, err := services.CryptoService.Encrypt(context.Background(), publicID, []byte("hi!"), []byte("test"))
	require.NoError(t, err)

	_, err = services.CryptoService.Decrypt(context.Background(), privateID, cipherText, []byte("wrong"))
	assert.Error(t, err)
}

func TestCryptoService_SignAndVerify(t *testing.T) {
	services := SetupTestServices(t, config.DBTypeSqlite)
	privateID, publicID := generateTestKeyPair(t, services)

	data := []byte("Data to sign")

	signature, err := services.CryptoService.Sign(context.Background(), privateID, data)
	require.NoError(t, err)

	valid, err := services.CryptoService.Verify(context.Background(), publicID, data, signature)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = services.CryptoService.Verify(context.Background(), publicID, []byte("Tampered data"), signature)
	assert.Error(t, err)
	assert.False(t, valid)
}

func TestCryptoService_KeyTypeMismatch(t *testing.T) {
	services := SetupTestServices(t, config.DBTypeSqlite)
	privateID, publicID := generateTestKeyPair(t, services)

	// encryption and verification require the public half
	_, err := services.CryptoService.Encrypt(context.Background(), privateID, []byte("data"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a public key")

	// decryption and signing require the private half
	_, err = services.CryptoService.Decrypt(context.Background(), publicID, []byte("data"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a private key")

	_, err = services.CryptoService.Sign(context.Background(), publicID, []byte("data"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a private key")
}

func TestCryptoService_UnknownKey(t *testing.T) {
	services := SetupTestServices(t, config.DBTypeSqlite)

	_, err := services.CryptoService.Encrypt(context.Background(), uuid.NewString(), []byte("data"), nil)
	assert.Error(t, err)

	_, err = services.CryptoService.Sign(context.Background(), uuid.NewString(), []byte("data"))
	assert.Error(t, err)
}

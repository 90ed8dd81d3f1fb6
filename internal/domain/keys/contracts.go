package keys

import (
	"context"
)

// KeyVaultService defines methods for generating and managing stored RSA key
// pairs and their metadata.
type KeyVaultService interface {
	// Generate creates a new RSA key pair with the given modulus bit length,
	// stores both halves and returns their metadata.
	Generate(ctx context.Context, bitLength int) ([]*KeyMeta, error)

	// List retrieves all key metadata considering a query filter when set.
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)

	// GetByID retrieves the metadata of a key by its unique ID.
	GetByID(ctx context.Context, keyID string) (*KeyMeta, error)

	// DeleteByID deletes a key and its metadata by ID.
	DeleteByID(ctx context.Context, keyID string) error
}

// CryptoService defines cryptographic operations performed with stored keys.
type CryptoService interface {
	// Encrypt encrypts a plaintext with the stored public key under the
	// given label and returns the ciphertext.
	Encrypt(ctx context.Context, keyID string, plainText, label []byte) ([]byte, error)

	// Decrypt decrypts a ciphertext with the stored private key. The label
	// must match the one used at encryption time.
	Decrypt(ctx context.Context, keyID string, cipherText, label []byte) ([]byte, error)

	// Sign signs data with the stored private key and returns the signature.
	Sign(ctx context.Context, keyID string, data []byte) ([]byte, error)

	// Verify checks a signature over data with the stored public key.
	Verify(ctx context.Context, keyID string, data, signature []byte) (bool, error)
}

// KeyRepository defines the interface for key metadata persistence
type KeyRepository interface {
	Create(ctx context.Context, key *KeyMeta) error
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)
	GetByID(ctx context.Context, keyID string) (*KeyMeta, error)
	DeleteByID(ctx context.Context, keyID string) error
}

package cryptography

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SlightlyLoony/rsa-vault/internal/domain/rsa"
	"github.com/SlightlyLoony/rsa-vault/internal/pkg/logger"
)

// rsaProcessor struct that implements the rsa.Processor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (rsa.Processor, error) {
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// GenerateKeys generates an RSA key pair with the specified modulus bit size
// using the default exponent pair and bit-length limits.
func (r *rsaProcessor) GenerateKeys(bits int) (*rsa.KeyPair, error) {
	pair, err := GenerateKeyPair(rand.Reader, bits, DefaultEncryptExponent, DefaultSignExponent, MinModulusBits, MaxModulusBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}
	r.logger.Info("Generated RSA key pair with ", bits, " bit modulus")
	return pair, nil
}

// Encrypt encrypts a plaintext with RSAES-OAEP under the given label using
// the public key. The plaintext must fit within one modulus block after
// padding; RSA is not meant for bulk data.
func (r *rsaProcessor) Encrypt(plainText, label []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, fmt.Errorf("public key cannot be nil")
	}

	padded, err := Pad(publicKey.N, plainText, label, rand.Reader, sha256.New())
	if err != nil {
		return nil, fmt.Errorf("failed to pad data: %w", err)
	}

	cipherText, err := rsa.EncryptBytes(publicKey, padded)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Info("RSA encryption succeeded")
	return cipherText, nil
}

// Decrypt decrypts an OAEP ciphertext using the private key. The label must
// match the one used at encryption time.
func (r *rsaProcessor) Decrypt(cipherText, label []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}

	padded, err := rsa.DecryptBytes(privateKey, cipherText)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	plainText, err := Unpad(padded, label, sha256.New())
	if err != nil {
		return nil, fmt.Errorf("failed to unpad data: %w", err)
	}

	r.logger.Info("RSA decryption succeeded")
	return plainText, nil
}

// Sign hashes the data with SHA-256 and raises the digest to the private
// signing exponent. Returns the signature bytes or an error if signing fails.
func (r *rsaProcessor) Sign(data []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}

	hashed := sha256.Sum256(data)
	signature, err := rsa.SignBytes(privateKey, hashed[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign data: %w", err)
	}

	r.logger.Info("RSA signing succeeded")
	return signature, nil
}

// Verify checks a signature produced by Sign using the public verification
// exponent. Returns true if the signature is valid, false otherwise.
func (r *rsaProcessor) Verify(data, signature []byte, publicKey *rsa.PublicKey) (bool, error) {
	if publicKey == nil {
		return false, fmt.Errorf("public key cannot be nil")
	}

	recovered, err := rsa.VerifyBytes(publicKey, signature)
	if err != nil {
		return false, fmt.Errorf("failed to verify signature: %w", err)
	}

	hashed := sha256.Sum256(data)
	expected := make([]byte, publicKey.ByteLength())
	copy(expected[len(expected)-len(hashed):], hashed[:])

	if subtle.ConstantTimeCompare(recovered, expected) != 1 {
		return false, fmt.Errorf("signature does not match data")
	}

	r.logger.Info("RSA signature verified successfully")
	return true, nil
}

// SavePrivateKeyToFile saves the private key in its tagged-string encoding.
func (r *rsaProcessor) SavePrivateKeyToFile(privateKey *rsa.PrivateKey, filename string) error {
	if privateKey == nil {
		return fmt.Errorf("private key cannot be nil")
	}

	encoded := rsa.EncodePrivateKey(privateKey)
	if err := os.WriteFile(filepath.Clean(filename), []byte(encoded), 0600); err != nil {
		return fmt.Errorf("failed to write private key file: %w", err)
	}

	r.logger.Info("Saved RSA private key ", filename)
	return nil
}

// SavePublicKeyToFile saves the public key in its tagged-string encoding.
func (r *rsaProcessor) SavePublicKeyToFile(publicKey *rsa.PublicKey, filename string) error {
	if publicKey == nil {
		return fmt.Errorf("public key cannot be nil")
	}

	encoded := rsa.EncodePublicKey(publicKey)
	if err := os.WriteFile(filepath.Clean(filename), []byte(encoded), 0600); err != nil {
		return fmt.Errorf("failed to write public key file: %w", err)
	}

	r.logger.Info("Saved RSA public key ", filename)
	return nil
}

// ReadPrivateKey reads a private key from its tagged-string encoding.
func (r *rsaProcessor) ReadPrivateKey(privateKeyPath string) (*rsa.PrivateKey, error) {
	encoded, err := os.ReadFile(filepath.Clean(privateKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read private key file: %w", err)
	}

	privateKey, err := rsa.ParsePrivateKey(string(encoded))
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key: %w", err)
	}
	return privateKey, nil
}

// ReadPublicKey reads a public key from its tagged-string encoding.
func (r *rsaProcessor) ReadPublicKey(publicKeyPath string) (*rsa.PublicKey, error) {
	encoded, err := os.ReadFile(filepath.Clean(publicKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read public key file: %w", err)
	}

	publicKey, err := rsa.ParsePublicKey(string(encoded))
	if err != nil {
		return nil, fmt.Errorf("unable to parse public key: %w", err)
	}
	return publicKey, nil
}

package app

import (
	"context"
	"fmt"

	"github.com/SlightlyLoony/rsa-vault/internal/domain/keys"
	"github.com/SlightlyLoony/rsa-vault/internal/domain/rsa"
	"github.com/SlightlyLoony/rsa-vault/internal/pkg/logger"
)

// cryptoService implements the CryptoService interface by loading stored key
// material and delegating the cryptographic work to an rsa.Processor.
type cryptoService struct {
	keyRepo   keys.KeyRepository
	processor rsa.Processor
	logger    logger.Logger
}

// NewCryptoService creates a new cryptoService instance
func NewCryptoService(
	keyRepo keys.KeyRepository,
	processor rsa.Processor,
	logger logger.Logger,
) (keys.CryptoService, error) {
	return &cryptoService{
		keyRepo:   keyRepo,
		processor: processor,
		logger:    logger,
	}, nil
}

// Encrypt encrypts a plaintext with the stored public key under the given label.
func (s *cryptoService) Encrypt(ctx context.Context, keyID string, plainText, label []byte) ([]byte, error) {
	publicKey, err := s.loadPublicKey(ctx, keyID)
	if err != nil {
		return nil, err
	}

	cipherText, err := s.processor.Encrypt(plainText, label, publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return cipherText, nil
}

// Decrypt decrypts a ciphertext with the stored private key.
func (s *cryptoService) Decrypt(ctx context.Context, keyID string, cipherText, label []byte) ([]byte, error) {
	privateKey, err := s.loadPrivateKey(ctx, keyID)
	if err != nil {
		return nil, err
	}

	plainText, err := s.processor.Decrypt(cipherText, label, privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return plainText, nil
}

// Sign signs data with the stored private key.
func (s *cryptoService) Sign(ctx context.Context, keyID string, data []byte) ([]byte, error) {
	privateKey, err := s.loadPrivateKey(ctx, keyID)
	if err != nil {
		return nil, err
	}

	signature, err := s.processor.Sign(data, privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return signature, nil
}

// Verify checks a signature over data with the stored public key.
func (s *cryptoService) Verify(ctx context.Context, keyID string, data, signature []byte) (bool, error) {
	publicKey, err := s.loadPublicKey(ctx, keyID)
	if err != nil {
		return false, err
	}

	valid, err := s.processor.Verify(data, signature, publicKey)
	if err != nil {
		return false, fmt.Errorf("%w", err)
	}
	return valid, nil
}

func (s *cryptoService) loadPublicKey(ctx context.Context, keyID string) (*rsa.PublicKey, error) {
	keyMeta, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if keyMeta.Type != keys.KeyTypePublic {
		return nil, fmt.Errorf("key %s is a %s key, expected a public key", keyID, keyMeta.Type)
	}

	publicKey, err := rsa.ParsePublicKey(keyMeta.Material)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored key material: %w", err)
	}
	return publicKey, nil
}

func (s *cryptoService) loadPrivateKey(ctx context.Context, keyID string) (*rsa.PrivateKey, error) {
	keyMeta, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if keyMeta.Type != keys.KeyTypePrivate {
		return nil, fmt.Errorf("key %s is a %s key, expected a private key", keyID, keyMeta.Type)
	}

	privateKey, err := rsa.ParsePrivateKey(keyMeta.Material)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored key material: %w", err)
	}
	return privateKey, nil
}

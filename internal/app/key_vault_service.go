package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SlightlyLoony/rsa-vault/internal/domain/keys"
	"github.com/SlightlyLoony/rsa-vault/internal/domain/rsa"
	"github.com/SlightlyLoony/rsa-vault/internal/pkg/logger"
)

// keyVaultService implements the KeyVaultService interface for generating
// and managing stored RSA key pairs.
type keyVaultService struct {
	keyRepo   keys.KeyRepository
	processor rsa.Processor
	logger    logger.Logger
}

// NewKeyVaultService creates a new keyVaultService instance
func NewKeyVaultService(
	keyRepo keys.KeyRepository,
	processor rsa.Processor,
	logger logger.Logger,
) (keys.KeyVaultService, error) {
	return &keyVaultService{
		keyRepo:   keyRepo,
		processor: processor,
		logger:    logger,
	}, nil
}

// Generate creates a new RSA key pair, stores both halves in their
// tagged-string encoding and returns the private key metadata first.
func (s *keyVaultService) Generate(ctx context.Context, bitLength int) ([]*keys.KeyMeta, error) {
	keyPair, err := s.processor.GenerateKeys(bitLength)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	keyPairID := uuid.New().String()
	now := time.Now()

	privateMeta := &keys.KeyMeta{
		ID:              uuid.New().String(),
		KeyPairID:       keyPairID,
		Algorithm:       keys.AlgorithmRSA,
		BitLength:       bitLength,
		Type:            keys.KeyTypePrivate,
		Material:        rsa.EncodePrivateKey(keyPair.Private),
		DateTimeCreated: now,
	}
	if err := s.keyRepo.Create(ctx, privateMeta); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	publicMeta := &keys.KeyMeta{
		ID:              uuid.New().String(),
		KeyPairID:       keyPairID,
		Algorithm:       keys.AlgorithmRSA,
		BitLength:       bitLength,
		Type:            keys.KeyTypePublic,
		Material:        rsa.EncodePublicKey(keyPair.Public),
		DateTimeCreated: now,
	}
	if err := s.keyRepo.Create(ctx, publicMeta); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Generated key pair with id ", keyPairID)
	return []*keys.KeyMeta{privateMeta, publicMeta}, nil
}

// List retrieves all key metadata considering a query filter when set.
func (s *keyVaultService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	keyMetas, err := s.keyRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return keyMetas, nil
}

// GetByID retrieves the metadata of a key by its unique ID.
func (s *keyVaultService) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	keyMeta, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return keyMeta, nil
}

// DeleteByID deletes a key and its metadata by ID.
func (s *keyVaultService) DeleteByID(ctx context.Context, keyID string) error {
	if err := s.keyRepo.DeleteByID(ctx, keyID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

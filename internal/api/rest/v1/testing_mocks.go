//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SlightlyLoony/rsa-vault/internal/domain/keys"
)

// MockKeyVaultService is a mock implementation of KeyVaultService
type MockKeyVaultService struct {
	mock.Mock
}

func (m *MockKeyVaultService) Generate(ctx context.Context, bitLength int) ([]*keys.KeyMeta, error) {
	args := m.Called(ctx, bitLength)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyMeta), args.Error(1)
}

func (m *MockKeyVaultService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyMeta), args.Error(1)
}

func (m *MockKeyVaultService) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyMeta), args.Error(1)
}

func (m *MockKeyVaultService) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockCryptoService is a mock implementation of CryptoService
type MockCryptoService struct {
	mock.Mock
}

func (m *MockCryptoService) Encrypt(ctx context.Context, keyID string, plainText, label []byte) ([]byte, error) {
	args := m.Called(ctx, keyID, plainText, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCryptoService) Decrypt(ctx context.Context, keyID string, cipherText, label []byte) ([]byte, error) {
	args := m.Called(ctx, keyID, cipherText, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCryptoService) Sign(ctx context.Context, keyID string, data []byte) ([]byte, error) {
	args := m.Called(ctx, keyID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCryptoService) Verify(ctx context.Context, keyID string, data, signature []byte) (bool, error) {
	args := m.Called(ctx, keyID, data, signature)
	return args.Bool(0), args.Error(1)
}

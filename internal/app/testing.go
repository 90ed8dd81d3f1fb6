//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SlightlyLoony/rsa-vault/internal/domain/keys"
	"github.com/SlightlyLoony/rsa-vault/internal/infrastructure/cryptography"
	"github.com/SlightlyLoony/rsa-vault/internal/infrastructure/persistence"
	"github.com/SlightlyLoony/rsa-vault/internal/pkg/testutil"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	KeyVaultService keys.KeyVaultService
	CryptoService   keys.CryptoService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	dbContext := persistence.SetupTestDB(t, dbType)

	processor, err := cryptography.NewRSAProcessor(logger)
	require.NoError(t, err, "Failed to create RSA processor")

	keyVaultService, err := NewKeyVaultService(dbContext.KeyRepo, processor, logger)
	require.NoError(t, err, "Failed to create key vault service")

	cryptoService, err := NewCryptoService(dbContext.KeyRepo, processor, logger)
	require.NoError(t, err, "Failed to create crypto service")

	return &TestServices{
		KeyVaultService: keyVaultService,
		CryptoService:   cryptoService,
		DBContext:       dbContext,
	}
}

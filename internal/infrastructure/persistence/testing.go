//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SlightlyLoony/rsa-vault/internal/domain/keys"
	"github.com/SlightlyLoony/rsa-vault/internal/infrastructure/persistence/models"
	"github.com/SlightlyLoony/rsa-vault/internal/pkg/config"
	"github.com/SlightlyLoony/rsa-vault/internal/pkg/testutil"
)

// Test constants
const (
	TestBitLength1024 = 1024
	TestBitLength2048 = 2048

	TestPublicMaterial  = "n:DKE;eE:EQ;eS:Bw;"
	TestPrivateMaterial = "p:PQ;q:NQ;dE:AZ0;dS:AN8;"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB      *gorm.DB
	KeyRepo keys.KeyRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.DBTypeSqlite:
		settings = config.DatabaseSettings{
			Type: config.DBTypeSqlite,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.DBTypePostgres:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.DBTypePostgres,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = db.AutoMigrate(&models.KeyModel{})
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	logger := testutil.SetupTestLogger(t)

	keyRepo, err := NewGormKeyRepository(db, logger)
	require.NoError(t, err, "Failed to create key repository")

	return &TestContext{
		DB:      db,
		KeyRepo: keyRepo,
	}
}

// CreateTestKey creates a test key with default values
func CreateTestKey(t *testing.T) *keys.KeyMeta {
	t.Helper()

	return &keys.KeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       uuid.NewString(),
		Algorithm:       keys.AlgorithmRSA,
		BitLength:       TestBitLength1024,
		Type:            keys.KeyTypePublic,
		Material:        TestPublicMaterial,
		DateTimeCreated: time.Now(),
	}
}

// CreateTestKeyWithOptions creates a test key with custom options
func CreateTestKeyWithOptions(t *testing.T, keyPairID, keyType string, bitLength int) *keys.KeyMeta {
	t.Helper()

	material := TestPublicMaterial
	if keyType == keys.KeyTypePrivate {
		material = TestPrivateMaterial
	}

	return &keys.KeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       keyPairID,
		Algorithm:       keys.AlgorithmRSA,
		BitLength:       bitLength,
		Type:            keyType,
		Material:        material,
		DateTimeCreated: time.Now(),
	}
}

//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SlightlyLoony/rsa-vault/internal/domain/keys"
	"github.com/SlightlyLoony/rsa-vault/internal/infrastructure/persistence/models"
	"github.com/SlightlyLoony/rsa-vault/internal/pkg/config"
)

func TestKeySqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.DBTypeSqlite)

	key := CreateTestKey(t)

	err := ctx.KeyRepo.Create(context.Background(), key)
	require.NoError(t, err)

	var createdKey models.KeyModel
	err = ctx.DB.First(&createdKey, "id = ?", key.ID).Error
	require.NoError(t, err)
	assert.Equal(t, key.ID, createdKey.ID)
	assert.Equal(t, key.Type, createdKey.Type)
	assert.Equal(t, key.Material, createdKey.Material)
}

func TestKeySqliteRepository_Create_InvalidKey(t *testing.T) {
	ctx := SetupTestDB(t, config.DBTypeSqlite)

	key := CreateTestKey(t)
	key.Material = ""

	err := ctx.KeyRepo.Create(context.Background(), key)
	assert.Error(t, err)
}

func TestKeySqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.DBTypeSqlite)

	key := CreateTestKeyWithOptions(t, uuid.NewString(), keys.KeyTypePrivate, TestBitLength2048)

	err := ctx.KeyRepo.Create(context.Background(), key)
	require.NoError(t, err)

	fetchedKey, err := ctx.KeyRepo.GetByID(context.Background(), key.ID)
	require.NoError(t, err)
	assert.NotNil(t, fetchedKey)
	assert.Equal(t, key.ID, fetchedKey.ID)
	assert.Equal(t, key.Material, fetchedKey.Material)
}

func TestKeySqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.DBTypeSqlite)

	_, err := ctx.KeyRepo.GetByID(context.Background(), uuid.NewString())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestKeySqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.DBTypeSqlite)

	keyPairID := uuid.NewString()
	key1 := CreateTestKeyWithOptions(t, keyPairID, keys.KeyTypePublic, TestBitLength2048)
	key2 := CreateTestKeyWithOptions(t, keyPairID, keys.KeyTypePrivate, TestBitLength2048)

	require.NoError(t, ctx.KeyRepo.Create(context.Background(), key1))
	require.NoError(t, ctx.KeyRepo.Create(context.Background(), key2))

	listed, err := ctx.KeyRepo.List(context.Background(), &keys.KeyQuery{})
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestKeySqliteRepository_List_FilterByType(t *testing.T) {
	ctx := SetupTestDB(t, config.DBTypeSqlite)

	keyPairID := uuid.NewString()
	require.NoError(t, ctx.KeyRepo.Create(context.Background(), CreateTestKeyWithOptions(t, keyPairID, keys.KeyTypePublic, TestBitLength2048)))
	require.NoError(t, ctx.KeyRepo.Create(context.Background(), CreateTestKeyWithOptions(t, keyPairID, keys.KeyTypePrivate, TestBitLength2048)))

	listed, err := ctx.KeyRepo.List(context.Background(), &keys.KeyQuery{Type: keys.KeyTypePrivate})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, keys.KeyTypePrivate, listed[0].Type)
}

func TestKeySqliteRepository_List_SortedAndPaginated(t *testing.T) {
	ctx := SetupTestDB(t, config.DBTypeSqlite)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		key := CreateTestKey(t)
		key.DateTimeCreated = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, ctx.KeyRepo.Create(context.Background(), key))
	}

	listed, err := ctx.KeyRepo.List(context.Background(), &keys.KeyQuery{
		SortBy:    "date_time_created",
		SortOrder: "desc",
		Limit:     2,
	})
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.True(t, listed[0].DateTimeCreated.After(listed[1].DateTimeCreated))
}

func TestKeySqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.DBTypeSqlite)

	key := CreateTestKey(t)

	require.NoError(t, ctx.KeyRepo.Create(context.Background(), key))
	require.NoError(t, ctx.KeyRepo.DeleteByID(context.Background(), key.ID))

	var deletedKey models.KeyModel
	err := ctx.DB.First(&deletedKey, "id = ?", key.ID).Error
	assert.Error(t, err)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

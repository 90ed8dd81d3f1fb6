//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SlightlyLoony/rsa-vault/internal/domain/keys"
)

func TestKeyModel_ToDomain(t *testing.T) {
	keyModel := &KeyModel{
		ID:              "test-id",
		KeyPairID:       "pair-id",
		Algorithm:       "RSA",
		BitLength:       2048,
		Type:            "public",
		Material:        "n:DKE;eE:EQ;eS:Bw;",
		DateTimeCreated: time.Now(),
	}

	keyMeta := keyModel.ToDomain()

	assert.Equal(t, keyModel.ID, keyMeta.ID)
	assert.Equal(t, keyModel.KeyPairID, keyMeta.KeyPairID)
	assert.Equal(t, keyModel.Algorithm, keyMeta.Algorithm)
	assert.Equal(t, keyModel.BitLength, keyMeta.BitLength)
	assert.Equal(t, keyModel.Type, keyMeta.Type)
	assert.Equal(t, keyModel.Material, keyMeta.Material)
	assert.Equal(t, keyModel.DateTimeCreated, keyMeta.DateTimeCreated)
}

func TestKeyModel_FromDomain(t *testing.T) {
	keyMeta := &keys.KeyMeta{
		ID:              "test-id",
		KeyPairID:       "pair-id",
		Algorithm:       "RSA",
		BitLength:       2048,
		Type:            "private",
		Material:        "p:PQ;q:NQ;dE:AZ0;dS:AN8;",
		DateTimeCreated: time.Now(),
	}

	keyModel := &KeyModel{}
	keyModel.FromDomain(keyMeta)

	assert.Equal(t, keyMeta.ID, keyModel.ID)
	assert.Equal(t, keyMeta.KeyPairID, keyModel.KeyPairID)
	assert.Equal(t, keyMeta.Algorithm, keyModel.Algorithm)
	assert.Equal(t, keyMeta.BitLength, keyModel.BitLength)
	assert.Equal(t, keyMeta.Type, keyModel.Type)
	assert.Equal(t, keyMeta.Material, keyModel.Material)
	assert.Equal(t, keyMeta.DateTimeCreated, keyModel.DateTimeCreated)
}

func TestKeyModel_TableName(t *testing.T) {
	assert.Equal(t, "keys", KeyModel{}.TableName())
}

//go:build unit
// +build unit

package keys

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validKeyMeta() *KeyMeta {
	return &KeyMeta{
		ID:              uuid.New().String(),
		KeyPairID:       uuid.New().String(),
		Algorithm:       AlgorithmRSA,
		BitLength:       2048,
		Type:            KeyTypePublic,
		Material:        "n:DKE;eE:EQ;eS:Bw;",
		DateTimeCreated: time.Now(),
	}
}

func TestKeyMeta_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*KeyMeta)
		wantErr bool
	}{
		{"valid public key", func(k *KeyMeta) {}, false},
		{"valid private key", func(k *KeyMeta) { k.Type = KeyTypePrivate }, false},
		{"missing id", func(k *KeyMeta) { k.ID = "" }, true},
		{"malformed id", func(k *KeyMeta) { k.ID = "not-a-uuid" }, true},
		{"missing key pair id", func(k *KeyMeta) { k.KeyPairID = "" }, true},
		{"unsupported algorithm", func(k *KeyMeta) { k.Algorithm = "ECDSA" }, true},
		{"bit length too small", func(k *KeyMeta) { k.BitLength = 512 }, true},
		{"bit length too large", func(k *KeyMeta) { k.BitLength = 32768 }, true},
		{"unknown key type", func(k *KeyMeta) { k.Type = "symmetric" }, true},
		{"missing material", func(k *KeyMeta) { k.Material = "" }, true},
		{"missing creation time", func(k *KeyMeta) { k.DateTimeCreated = time.Time{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := validKeyMeta()
			tt.mutate(meta)

			err := meta.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKeyQuery_Validation(t *testing.T) {
	tests := []struct {
		name    string
		query   *KeyQuery
		wantErr bool
	}{
		{"empty query", &KeyQuery{}, false},
		{"filter by type", &KeyQuery{Type: KeyTypePrivate}, false},
		{"sorted and paginated", &KeyQuery{SortBy: "date_time_created", SortOrder: "desc", Limit: 10, Offset: 20}, false},
		{"unknown type", &KeyQuery{Type: "session"}, true},
		{"unknown sort column", &KeyQuery{SortBy: "material"}, true},
		{"unknown sort order", &KeyQuery{SortBy: "id", SortOrder: "sideways"}, true},
		{"negative offset", &KeyQuery{Offset: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

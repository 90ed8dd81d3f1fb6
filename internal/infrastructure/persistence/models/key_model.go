package models

import (
	"time"

	"github.com/SlightlyLoony/rsa-vault/internal/domain/keys"
)

// KeyModel is the GORM database model for RSA keys (infrastructure concern)
type KeyModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	KeyPairID       string    `gorm:"not null;index;type:uuid"`
	Algorithm       string    `gorm:"not null;type:varchar(20)"`
	BitLength       int       `gorm:"not null;type:integer"`
	Type            string    `gorm:"not null;type:varchar(20)"`
	Material        string    `gorm:"not null;type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeyModel) TableName() string {
	return "keys"
}

// ToDomain converts GORM model to domain entity
func (m *KeyModel) ToDomain() *keys.KeyMeta {
	return &keys.KeyMeta{
		ID:              m.ID,
		KeyPairID:       m.KeyPairID,
		Algorithm:       m.Algorithm,
		BitLength:       m.BitLength,
		Type:            m.Type,
		Material:        m.Material,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyModel) FromDomain(k *keys.KeyMeta) {
	m.ID = k.ID
	m.KeyPairID = k.KeyPairID
	m.Algorithm = k.Algorithm
	m.BitLength = k.BitLength
	m.Type = k.Type
	m.Material = k.Material
	m.DateTimeCreated = k.DateTimeCreated
}

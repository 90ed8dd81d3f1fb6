package v1

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// GenerateKeyRequest represents the payload for generating an RSA key pair
type GenerateKeyRequest struct {
	BitLength int `json:"bit_length" validate:"required,gte=1000,lte=20000"`
}

// Validate checks that all fields in GenerateKeyRequest are valid
func (r *GenerateKeyRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for GenerateKeyRequest: %w", err)
	}
	return nil
}

// EncryptRequest represents the payload for encrypting data with a stored
// public key. Binary fields are base64 in the JSON representation.
type EncryptRequest struct {
	KeyID     string `json:"key_id" validate:"required,uuid4"`
	PlainText []byte `json:"plain_text" validate:"required"`
	Label     []byte `json:"label,omitempty"`
}

// Validate checks that all fields in EncryptRequest are valid
func (r *EncryptRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for EncryptRequest: %w", err)
	}
	return nil
}

// DecryptRequest represents the payload for decrypting a ciphertext with a
// stored private key
type DecryptRequest struct {
	KeyID      string `json:"key_id" validate:"required,uuid4"`
	CipherText []byte `json:"cipher_text" validate:"required"`
	Label      []byte `json:"label,omitempty"`
}

// Validate checks that all fields in DecryptRequest are valid
func (r *DecryptRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for DecryptRequest: %w", err)
	}
	return nil
}

// SignRequest represents the payload for signing data with a stored private key
type SignRequest struct {
	KeyID string `json:"key_id" validate:"required,uuid4"`
	Data  []byte `json:"data" validate:"required"`
}

// Validate checks that all fields in SignRequest are valid
func (r *SignRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for SignRequest: %w", err)
	}
	return nil
}

// VerifyRequest represents the payload for verifying a signature with a
// stored public key
type VerifyRequest struct {
	KeyID     string `json:"key_id" validate:"required,uuid4"`
	Data      []byte `json:"data" validate:"required"`
	Signature []byte `json:"signature" validate:"required"`
}

// Validate checks that all fields in VerifyRequest are valid
func (r *VerifyRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for VerifyRequest: %w", err)
	}
	return nil
}

// KeyMetaResponse represents key metadata returned by the API. The stored
// key material is never included.
type KeyMetaResponse struct {
	ID              string    `json:"id"`
	KeyPairID       string    `json:"key_pair_id"`
	Algorithm       string    `json:"algorithm"`
	BitLength       int       `json:"bit_length"`
	Type            string    `json:"type"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// EncryptResponse carries the ciphertext produced by an encrypt operation
type EncryptResponse struct {
	CipherText []byte `json:"cipher_text"`
}

// DecryptResponse carries the plaintext recovered by a decrypt operation
type DecryptResponse struct {
	PlainText []byte `json:"plain_text"`
}

// SignResponse carries the signature produced by a sign operation
type SignResponse struct {
	Signature []byte `json:"signature"`
}

// VerifyResponse carries the result of a verify operation
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// ErrorResponse represents an error message returned by the API
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message returned by the API
type InfoResponse struct {
	Message string `json:"message"`
}

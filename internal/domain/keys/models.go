package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// KeyMeta represents one half of an RSA key pair together with its stored
// material. Material holds the tagged-string encoding of the key.
type KeyMeta struct {
	ID              string    `validate:"required,uuid4"`
	KeyPairID       string    `validate:"required,uuid4"`
	Algorithm       string    `validate:"required,oneof=RSA"`
	BitLength       int       `validate:"required,gte=1000,lte=20000"`
	Type            string    `validate:"required,oneof=public private"`
	Material        string    `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate checks that all fields in KeyMeta are valid
func (k *KeyMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// KeyQuery represents the parameters used to filter and paginate key
// metadata listings.
type KeyQuery struct {
	Type            string    `validate:"omitempty,oneof=public private"`
	DateTimeCreated time.Time

	SortBy    string `validate:"omitempty,oneof=id key_pair_id bit_length type date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`

	Limit  int `validate:"omitempty,gte=1"`
	Offset int `validate:"omitempty,gte=0"`
}

// Validate checks that all fields in KeyQuery are valid
func (q *KeyQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for KeyQuery: %w", err)
	}
	return nil
}

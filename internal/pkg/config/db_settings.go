package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	DBTypePostgres = "postgres"
	DBTypeSqlite   = "sqlite"
)

// DatabaseSettings holds configuration settings for the metadata database
type DatabaseSettings struct {
	Type   string `yaml:"type" validate:"required"`
	DSN    string `yaml:"dsn" validate:"required"`
	DBName string `yaml:"db_name" validate:"required"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}

package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SlightlyLoony/rsa-vault/internal/domain/keys"
	"github.com/SlightlyLoony/rsa-vault/internal/infrastructure/persistence/models"
	"github.com/SlightlyLoony/rsa-vault/internal/pkg/logger"
)

type gormKeyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeyRepository creates a new GORM-based KeyRepository implementation
func NewGormKeyRepository(db *gorm.DB, logger logger.Logger) (keys.KeyRepository, error) {
	return &gormKeyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormKeyRepository) Create(ctx context.Context, key *keys.KeyMeta) error {
	if err := key.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KeyModel{}
	model.FromDomain(key)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create key: %w", err)
	}

	r.logger.Info("Created key metadata with id ", key.ID)
	return nil
}

func (r *gormKeyRepository) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.KeyModel
	dbQuery := r.db.WithContext(ctx).Model(&models.KeyModel{})

	if query.Type != "" {
		dbQuery = dbQuery.Where("type = ?", query.Type)
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch key metadata: %w", err)
	}

	domainList := make([]*keys.KeyMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormKeyRepository) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	var model models.KeyModel
	if err := r.db.WithContext(ctx).Where("id = ?", keyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("key with ID %s not found", keyID)
		}
		return nil, fmt.Errorf("failed to fetch key: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormKeyRepository) DeleteByID(ctx context.Context, keyID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", keyID).Delete(&models.KeyModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}

	r.logger.Info("Deleted key metadata with id ", keyID)
	return nil
}

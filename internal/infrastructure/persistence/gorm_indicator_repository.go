package persistence

import (
	"context"
	"errors"
	"fmt"

	"cerberus_security_service/internal/domain/oracle"
	"cerberus_security_service/internal/infrastructure/persistence/models"
	"cerberus_security_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormIndicatorRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormIndicatorRepository creates a new GORM-based ThreatIndicatorRepository implementation
func NewGormIndicatorRepository(db *gorm.DB, logger logger.Logger) (oracle.ThreatIndicatorRepository, error) {
	return &gormIndicatorRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormIndicatorRepository) Create(ctx context.Context, indicator *oracle.ThreatIndicator) error {
	if err := indicator.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ThreatIndicatorModel{}
	model.FromDomain(indicator)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create threat indicator: %w", err)
	}

	r.logger.Info("Created threat indicator with id ", indicator.ID)
	return nil
}

func (r *gormIndicatorRepository) List(ctx context.Context, query *oracle.ThreatIndicatorQuery) ([]*oracle.ThreatIndicator, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ThreatIndicatorModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ThreatIndicatorModel{})

	if query.Type != "" {
		dbQuery = dbQuery.Where("type = ?", query.Type)
	}
	if query.Severity != "" {
		dbQuery = dbQuery.Where("severity = ?", query.Severity)
	}
	if query.Source != "" {
		dbQuery = dbQuery.Where("source = ?", query.Source)
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
		return nil, fmt.Errorf("failed to fetch threat indicators: %w", err)
	}

	domainList := make([]*oracle.ThreatIndicator, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormIndicatorRepository) GetByID(ctx context.Context, indicatorID string) (*oracle.ThreatIndicator, error) {
	var model models.ThreatIndicatorModel
	if err := r.db.WithContext(ctx).Where("id = ?", indicatorID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("threat indicator with ID %s not found", indicatorID)
		}
		return nil, fmt.Errorf("failed to fetch threat indicator: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormIndicatorRepository) DeleteByID(ctx context.Context, indicatorID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", indicatorID).Delete(&models.ThreatIndicatorModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete threat indicator: %w", err)
	}

	r.logger.Info("Deleted threat indicator with id ", indicatorID)
	return nil
}

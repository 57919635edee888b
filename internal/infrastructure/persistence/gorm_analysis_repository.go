package persistence

import (
	"context"
	"errors"
	"fmt"

	"cerberus_security_service/internal/domain/watchman"
	"cerberus_security_service/internal/infrastructure/persistence/models"
	"cerberus_security_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAnalysisRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAnalysisRepository creates a new GORM-based PromptAnalysisRepository implementation
func NewGormAnalysisRepository(db *gorm.DB, logger logger.Logger) (watchman.PromptAnalysisRepository, error) {
	return &gormAnalysisRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAnalysisRepository) Create(ctx context.Context, analysis *watchman.PromptAnalysis) error {
	if err := analysis.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PromptAnalysisModel{}
	model.FromDomain(analysis)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create prompt analysis: %w", err)
	}

	r.logger.Info("Created prompt analysis with id ", analysis.ID)
	return nil
}

func (r *gormAnalysisRepository) List(ctx context.Context, query *watchman.PromptAnalysisQuery) ([]*watchman.PromptAnalysis, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.PromptAnalysisModel
	dbQuery := r.db.WithContext(ctx).Model(&models.PromptAnalysisModel{})

	if query.Flagged != nil {
		dbQuery = dbQuery.Where("flagged = ?", *query.Flagged)
	}
	if query.Detector != "" {
		dbQuery = dbQuery.Where("detector = ?", query.Detector)
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
		return nil, fmt.Errorf("failed to fetch prompt analyses: %w", err)
	}

	domainList := make([]*watchman.PromptAnalysis, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormAnalysisRepository) GetByID(ctx context.Context, analysisID string) (*watchman.PromptAnalysis, error) {
	var model models.PromptAnalysisModel
	if err := r.db.WithContext(ctx).Where("id = ?", analysisID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("prompt analysis with ID %s not found", analysisID)
		}
		return nil, fmt.Errorf("failed to fetch prompt analysis: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAnalysisRepository) DeleteByID(ctx context.Context, analysisID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", analysisID).Delete(&models.PromptAnalysisModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete prompt analysis: %w", err)
	}

	r.logger.Info("Deleted prompt analysis with id ", analysisID)
	return nil
}

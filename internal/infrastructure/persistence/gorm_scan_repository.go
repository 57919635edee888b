package persistence

import (
	"context"
	"errors"
	"fmt"

	"cerberus_security_service/internal/domain/engineer"
	"cerberus_security_service/internal/infrastructure/persistence/models"
	"cerberus_security_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormScanRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormScanRepository creates a new GORM-based ScanReportRepository implementation
func NewGormScanRepository(db *gorm.DB, logger logger.Logger) (engineer.ScanReportRepository, error) {
	return &gormScanRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormScanRepository) Create(ctx context.Context, report *engineer.ScanReport) error {
	if err := report.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ScanReportModel{}
	if err := model.FromDomain(report); err != nil {
		return fmt.Errorf("conversion error: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create scan report: %w", err)
	}

	r.logger.Info("Created scan report with id ", report.ID)
	return nil
}

func (r *gormScanRepository) List(ctx context.Context, query *engineer.ScanQuery) ([]*engineer.ScanReport, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ScanReportModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ScanReportModel{})

	if query.TargetName != "" {
		dbQuery = dbQuery.Where("target_name = ?", query.TargetName)
	}
	if query.Severity != "" {
		dbQuery = dbQuery.Where("risk_score >= ?", engineer.SeverityWeight[query.Severity])
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
		return nil, fmt.Errorf("failed to fetch scan reports: %w", err)
	}

	domainList := make([]*engineer.ScanReport, len(modelList))
	for i, model := range modelList {
		report, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		domainList[i] = report
	}

	return domainList, nil
}

func (r *gormScanRepository) GetByID(ctx context.Context, reportID string) (*engineer.ScanReport, error) {
	var model models.ScanReportModel
	if err := r.db.WithContext(ctx).Where("id = ?", reportID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("scan report with ID %s not found", reportID)
		}
		return nil, fmt.Errorf("failed to fetch scan report: %w", err)
	}
	return model.ToDomain()
}

func (r *gormScanRepository) DeleteByID(ctx context.Context, reportID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", reportID).Delete(&models.ScanReportModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete scan report: %w", err)
	}

	r.logger.Info("Deleted scan report with id ", reportID)
	return nil
}

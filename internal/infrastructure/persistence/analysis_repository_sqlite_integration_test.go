//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"cerberus_security_service/internal/domain/watchman"
	"cerberus_security_service/internal/infrastructure/persistence/models"
	"cerberus_security_service/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAnalysisSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	analysis := CreateTestAnalysis(t, false)

	err := ctx.AnalysisRepo.Create(context.Background(), analysis)
	require.NoError(t, err)

	var created models.PromptAnalysisModel
	err = ctx.DB.First(&created, "id = ?", analysis.ID).Error
	require.NoError(t, err)
	assert.Equal(t, analysis.ID, created.ID)
	assert.Equal(t, analysis.Prompt, created.Prompt)
}

func TestAnalysisSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	analysis := CreateTestAnalysis(t, true)

	require.NoError(t, ctx.AnalysisRepo.Create(context.Background(), analysis))

	fetched, err := ctx.AnalysisRepo.GetByID(context.Background(), analysis.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Flagged)
	assert.Equal(t, watchman.DetailInjectionDetected, fetched.Details)
}

func TestAnalysisSqliteRepository_List_FlaggedFilter(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	require.NoError(t, ctx.AnalysisRepo.Create(context.Background(), CreateTestAnalysis(t, true)))
	require.NoError(t, ctx.AnalysisRepo.Create(context.Background(), CreateTestAnalysis(t, false)))
	require.NoError(t, ctx.AnalysisRepo.Create(context.Background(), CreateTestAnalysis(t, false)))

	flagged := true
	query := &watchman.PromptAnalysisQuery{Flagged: &flagged}
	analyses, err := ctx.AnalysisRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, analyses, 1)

	flagged = false
	analyses, err = ctx.AnalysisRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, analyses, 2)
}

func TestAnalysisSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	analysis := CreateTestAnalysis(t, false)

	require.NoError(t, ctx.AnalysisRepo.Create(context.Background(), analysis))
	require.NoError(t, ctx.AnalysisRepo.DeleteByID(context.Background(), analysis.ID))

	var deleted models.PromptAnalysisModel
	err := ctx.DB.First(&deleted, "id = ?", analysis.ID).Error
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestAnalysisSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	analysis, err := ctx.AnalysisRepo.GetByID(context.Background(), uuid.NewString())
	assert.Nil(t, analysis)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAnalysisSqliteRepository_Create_ValidationError(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	invalid := &watchman.PromptAnalysis{}
	err := ctx.AnalysisRepo.Create(context.Background(), invalid)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

// dao/asset_dao_test.go
package dao_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SAHAYOGESHWARAN/guries-sub010/dao"
	"github.com/SAHAYOGESHWARAN/guries-sub010/db"
	backoffice_errors "github.com/SAHAYOGESHWARAN/guries-sub010/errors"
	logger "github.com/SAHAYOGESHWARAN/guries-sub010/logging"
	"github.com/SAHAYOGESHWARAN/guries-sub010/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger.InitLogger(t.TempDir())

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func seedAsset(t *testing.T, assetDAO *dao.AssetDAO) *model.Asset {
	t.Helper()
	now := time.Now()
	asset := &model.Asset{
		Name:          "seed",
		Status:        model.StatusDraft,
		QCStatus:      model.QCStatusPending,
		WorkflowStage: model.StageAdd,
		Version:       1,
		CreatedBy:     "u1",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	entry := model.WorkflowLogEntry{
		Action:        "created",
		Timestamp:     now,
		UserID:        "u1",
		Status:        model.StatusDraft,
		WorkflowStage: model.StageAdd,
	}
	_, err := assetDAO.CreateAsset(context.Background(), asset, entry, nil, nil)
	require.NoError(t, err)
	return asset
}

func TestUpdateWorkflowStateVersionConflict(t *testing.T) {
	assetDAO := dao.NewAssetDAO(newTestDB(t))
	ctx := context.Background()
	asset := seedAsset(t, assetDAO)

	asset.Status = model.StatusPendingQC
	asset.WorkflowStage = model.StageQC
	asset.Version = 2
	entry := model.WorkflowLogEntry{
		Action:        "submitted",
		Timestamp:     time.Now(),
		UserID:        "u1",
		Status:        model.StatusPendingQC,
		WorkflowStage: model.StageQC,
	}

	// A stale reader loses the race.
	err := assetDAO.UpdateWorkflowState(ctx, asset, 7, entry)
	require.Error(t, err)
	assert.True(t, errors.Is(err, backoffice_errors.ErrConcurrentUpdate))

	// The matching version wins.
	require.NoError(t, assetDAO.UpdateWorkflowState(ctx, asset, 1, entry))

	stored, err := assetDAO.GetAsset(ctx, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPendingQC, stored.Status)
	assert.Equal(t, int64(2), stored.Version)
}

func TestWorkflowLogSequenceAppendOnly(t *testing.T) {
	assetDAO := dao.NewAssetDAO(newTestDB(t))
	ctx := context.Background()
	asset := seedAsset(t, assetDAO)

	for i := 0; i < 3; i++ {
		asset.Version++
		entry := model.WorkflowLogEntry{
			Action:    "submitted",
			Timestamp: time.Now(),
			UserID:    "u1",
		}
		require.NoError(t, assetDAO.UpdateWorkflowState(ctx, asset, asset.Version-1, entry))
	}

	entries, err := assetDAO.GetWorkflowLog(ctx, asset.ID, false)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Seq)
	}

	newest, err := assetDAO.GetWorkflowLog(ctx, asset.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 4, newest[0].Seq)
}

func TestGetAssetNotFound(t *testing.T) {
	assetDAO := dao.NewAssetDAO(newTestDB(t))

	_, err := assetDAO.GetAsset(context.Background(), 12345)
	require.Error(t, err)
	assert.True(t, errors.Is(err, backoffice_errors.ErrAssetNotFound))
}

// dao/asset_dao.go

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	backoffice_errors "github.com/SAHAYOGESHWARAN/guries-sub010/errors"
	logger "github.com/SAHAYOGESHWARAN/guries-sub010/logging"
	"github.com/SAHAYOGESHWARAN/guries-sub010/model"
)

type AssetDAO struct {
	DB *gorm.DB
}

func NewAssetDAO(db *gorm.DB) *AssetDAO {
	return &AssetDAO{DB: db}
}

// CreateAsset inserts the asset, its first workflow-log entry and any
// static links in one transaction. Static links are part of upload:
// either everything lands or nothing does.
func (dao *AssetDAO) CreateAsset(ctx context.Context, asset *model.Asset, entry model.WorkflowLogEntry, serviceID *int64, subServiceIDs []int64) (int64, error) {
	start := time.Now()
	logger.Info("Creating new asset", zap.String("name", asset.Name))

	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(asset).Error; err != nil {
			return fmt.Errorf("failed to insert asset: %w", err)
		}

		entry.AssetID = asset.ID
		entry.Seq = 1
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to insert workflow log entry: %w", err)
		}

		if serviceID != nil {
			link := model.ServiceAssetLink{
				AssetID:   asset.ID,
				ServiceID: *serviceID,
				IsStatic:  true,
				CreatedBy: asset.CreatedBy,
				CreatedAt: time.Now(),
			}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("failed to insert static service link: %w", err)
			}
		}

		for _, subServiceID := range subServiceIDs {
			link := model.SubServiceAssetLink{
				AssetID:      asset.ID,
				SubServiceID: subServiceID,
				IsStatic:     true,
				CreatedBy:    asset.CreatedBy,
				CreatedAt:    time.Now(),
			}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("failed to insert static sub-service link: %w", err)
			}
		}

		return nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create asset",
			zap.Error(err),
			zap.String("name", asset.Name),
			zap.Duration("duration", duration))
		return 0, err
	}

	logger.Info("Asset created successfully",
		zap.Int64("assetID", asset.ID),
		zap.Duration("duration", duration))
	return asset.ID, nil
}

// GetAsset fetches one asset by id, without its workflow log.
func (dao *AssetDAO) GetAsset(ctx context.Context, assetID int64) (*model.Asset, error) {
	var asset model.Asset
	err := dao.DB.WithContext(ctx).First(&asset, assetID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, backoffice_errors.ErrAssetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch asset %d: %w", assetID, err)
	}
	return &asset, nil
}

// ListAssets returns a page of assets, newest first.
func (dao *AssetDAO) ListAssets(ctx context.Context, limit, offset int) ([]*model.Asset, error) {
	var assets []*model.Asset
	err := dao.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

// ListPendingQC returns the QC queue: assets whose qc_status is
// Pending or Rework, oldest submission first.
func (dao *AssetDAO) ListPendingQC(ctx context.Context) ([]*model.Asset, error) {
	var assets []*model.Asset
	err := dao.DB.WithContext(ctx).
		Where("qc_status IN ?", []model.QCStatus{model.QCStatusPending, model.QCStatusRework}).
		Order("updated_at ASC").
		Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending qc assets: %w", err)
	}
	return assets, nil
}

// UpdateWorkflowState persists the workflow columns of the asset and
// appends the log entry in one transaction. The update is conditional
// on the version the caller read; a lost race surfaces as
// ErrConcurrentUpdate instead of silently overwriting.
func (dao *AssetDAO) UpdateWorkflowState(ctx context.Context, asset *model.Asset, expectedVersion int64, entry model.WorkflowLogEntry) error {
	start := time.Now()

	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Asset{}).
			Where("id = ? AND version = ?", asset.ID, expectedVersion).
			Updates(map[string]interface{}{
				"status":         asset.Status,
				"qc_status":      asset.QCStatus,
				"workflow_stage": asset.WorkflowStage,
				"rework_count":   asset.ReworkCount,
				"linking_active": asset.LinkingActive,
				"qc_reviewer_id": asset.QCReviewerID,
				"qc_reviewed_at": asset.QCReviewedAt,
				"qc_remarks":     asset.QCRemarks,
				"qc_score":       asset.QCScore,
				"version":        asset.Version,
				"updated_at":     time.Now(),
			})
		if res.Error != nil {
			return fmt.Errorf("failed to update asset workflow state: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return backoffice_errors.ErrConcurrentUpdate
		}

		var maxSeq int
		if err := tx.Model(&model.WorkflowLogEntry{}).
			Where("asset_id = ?", asset.ID).
			Select("COALESCE(MAX(seq), 0)").
			Scan(&maxSeq).Error; err != nil {
			return fmt.Errorf("failed to read workflow log sequence: %w", err)
		}

		entry.AssetID = asset.ID
		entry.Seq = maxSeq + 1
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to append workflow log entry: %w", err)
		}
		return nil
	})

	duration := time.Since(start)
	if err != nil {
		if !errors.Is(err, backoffice_errors.ErrConcurrentUpdate) {
			logger.Error("Failed to update workflow state",
				zap.Error(err),
				zap.Int64("assetID", asset.ID),
				zap.Duration("duration", duration))
		}
		return err
	}

	logger.Info("Workflow state updated",
		zap.Int64("assetID", asset.ID),
		zap.String("action", entry.Action),
		zap.String("qcStatus", string(asset.QCStatus)),
		zap.Duration("duration", duration))
	return nil
}

// GetWorkflowLog returns the asset's history. Storage order is seq
// ascending; newestFirst flips it for display.
func (dao *AssetDAO) GetWorkflowLog(ctx context.Context, assetID int64, newestFirst bool) ([]model.WorkflowLogEntry, error) {
	order := "seq ASC"
	if newestFirst {
		order = "seq DESC"
	}

	var entries []model.WorkflowLogEntry
	err := dao.DB.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Order(order).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workflow log for asset %d: %w", assetID, err)
	}
	return entries, nil
}

// CountAssets returns the total asset count for pagination metadata.
func (dao *AssetDAO) CountAssets(ctx context.Context) (int64, error) {
	var count int64
	if err := dao.DB.WithContext(ctx).Model(&model.Asset{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}
	return count, nil
}

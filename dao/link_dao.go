// dao/link_dao.go

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

type LinkDAO struct {
	DB *gorm.DB
}

func NewLinkDAO(db *gorm.DB) *LinkDAO {
	return &LinkDAO{DB: db}
}

// CreateServiceLink inserts a service link. Creating a link that
// already exists for the (asset, service) pair is a no-op returning
// the existing row, so upload retries stay safe.
func (dao *LinkDAO) CreateServiceLink(ctx context.Context, assetID, serviceID int64, createdBy string, isStatic bool) (*model.ServiceAssetLink, error) {
	var existing model.ServiceAssetLink
	err := dao.DB.WithContext(ctx).
		Where("asset_id = ? AND service_id = ?", assetID, serviceID).
		First(&existing).Error
	if err == nil {
		logger.Debug("Service link already exists",
			zap.Int64("assetID", assetID),
			zap.Int64("serviceID", serviceID))
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing service link: %w", err)
	}

	link := model.ServiceAssetLink{
		AssetID:   assetID,
		ServiceID: serviceID,
		IsStatic:  isStatic,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}
	if err := dao.DB.WithContext(ctx).Create(&link).Error; err != nil {
		return nil, fmt.Errorf("failed to create service link: %w", err)
	}

	logger.Info("Service link created",
		zap.Int64("assetID", assetID),
		zap.Int64("serviceID", serviceID),
		zap.Bool("isStatic", isStatic))
	return &link, nil
}

// CreateSubServiceLink inserts a sub-service link with the same
// idempotency rule as CreateServiceLink.
func (dao *LinkDAO) CreateSubServiceLink(ctx context.Context, assetID, subServiceID int64, createdBy string, isStatic bool) (*model.SubServiceAssetLink, error) {
	var existing model.SubServiceAssetLink
	err := dao.DB.WithContext(ctx).
		Where("asset_id = ? AND sub_service_id = ?", assetID, subServiceID).
		First(&existing).Error
	if err == nil {
		logger.Debug("Sub-service link already exists",
			zap.Int64("assetID", assetID),
			zap.Int64("subServiceID", subServiceID))
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing sub-service link: %w", err)
	}

	link := model.SubServiceAssetLink{
		AssetID:      assetID,
		SubServiceID: subServiceID,
		IsStatic:     isStatic,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now(),
	}
	if err := dao.DB.WithContext(ctx).Create(&link).Error; err != nil {
		return nil, fmt.Errorf("failed to create sub-service link: %w", err)
	}

	logger.Info("Sub-service link created",
		zap.Int64("assetID", assetID),
		zap.Int64("subServiceID", subServiceID),
		zap.Bool("isStatic", isStatic))
	return &link, nil
}

// GetServiceLink returns the link row for the pair, or ErrLinkNotFound.
func (dao *LinkDAO) GetServiceLink(ctx context.Context, assetID, serviceID int64) (*model.ServiceAssetLink, error) {
	var link model.ServiceAssetLink
	err := dao.DB.WithContext(ctx).
		Where("asset_id = ? AND service_id = ?", assetID, serviceID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, backoffice_errors.ErrLinkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service link: %w", err)
	}
	return &link, nil
}

// GetSubServiceLink returns the link row for the pair, or ErrLinkNotFound.
func (dao *LinkDAO) GetSubServiceLink(ctx context.Context, assetID, subServiceID int64) (*model.SubServiceAssetLink, error) {
	var link model.SubServiceAssetLink
	err := dao.DB.WithContext(ctx).
		Where("asset_id = ? AND sub_service_id = ?", assetID, subServiceID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, backoffice_errors.ErrLinkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sub-service link: %w", err)
	}
	return &link, nil
}

// DeleteServiceLink removes a dynamic link. The is_static guard is
// repeated in SQL so a racing caller cannot slip past the service
// layer's check.
func (dao *LinkDAO) DeleteServiceLink(ctx context.Context, assetID, serviceID int64) error {
	res := dao.DB.WithContext(ctx).
		Where("asset_id = ? AND service_id = ? AND is_static = ?", assetID, serviceID, false).
		Delete(&model.ServiceAssetLink{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete service link: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return backoffice_errors.ErrStaticLinkProtected
	}

	logger.Info("Service link removed",
		zap.Int64("assetID", assetID),
		zap.Int64("serviceID", serviceID))
	return nil
}

// DeleteSubServiceLink removes a dynamic sub-service link.
func (dao *LinkDAO) DeleteSubServiceLink(ctx context.Context, assetID, subServiceID int64) error {
	res := dao.DB.WithContext(ctx).
		Where("asset_id = ? AND sub_service_id = ? AND is_static = ?", assetID, subServiceID, false).
		Delete(&model.SubServiceAssetLink{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete sub-service link: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return backoffice_errors.ErrStaticLinkProtected
	}

	logger.Info("Sub-service link removed",
		zap.Int64("assetID", assetID),
		zap.Int64("subServiceID", subServiceID))
	return nil
}

// ListLinkedAssets returns assets joined through the service link
// table, with link metadata exposed per row. An unknown service id
// yields an empty result, not an error. visibleOnly applies the
// canonical visibility rule (assets.linking_active = true); otherwise
// filtering is left to the caller.
func (dao *LinkDAO) ListLinkedAssets(ctx context.Context, serviceID int64, visibleOnly bool) ([]model.LinkedAsset, error) {
	query := dao.DB.WithContext(ctx).
		Table("assets").
		Select("assets.*, service_asset_links.is_static AS link_is_static, service_asset_links.created_at AS linked_at").
		Joins("JOIN service_asset_links ON service_asset_links.asset_id = assets.id").
		Where("service_asset_links.service_id = ?", serviceID)
	if visibleOnly {
		query = query.Where("assets.linking_active = ?", true)
	}

	var rows []model.LinkedAsset
	if err := query.Order("service_asset_links.created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list linked assets for service %d: %w", serviceID, err)
	}
	return rows, nil
}

// ListLinkedAssetsBySubService is ListLinkedAssets for sub-services.
func (dao *LinkDAO) ListLinkedAssetsBySubService(ctx context.Context, subServiceID int64, visibleOnly bool) ([]model.LinkedAsset, error) {
	query := dao.DB.WithContext(ctx).
		Table("assets").
		Select("assets.*, sub_service_asset_links.is_static AS link_is_static, sub_service_asset_links.created_at AS linked_at").
		Joins("JOIN sub_service_asset_links ON sub_service_asset_links.asset_id = assets.id").
		Where("sub_service_asset_links.sub_service_id = ?", subServiceID)
	if visibleOnly {
		query = query.Where("assets.linking_active = ?", true)
	}

	var rows []model.LinkedAsset
	if err := query.Order("sub_service_asset_links.created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list linked assets for sub-service %d: %w", subServiceID, err)
	}
	return rows, nil
}

// CountServiceLinks returns the number of links for an asset/service
// pair, used by tests and integrity checks.
func (dao *LinkDAO) CountServiceLinks(ctx context.Context, assetID int64) (int64, error) {
	var count int64
	err := dao.DB.WithContext(ctx).
		Model(&model.ServiceAssetLink{}).
		Where("asset_id = ?", assetID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count service links: %w", err)
	}
	return count, nil
}

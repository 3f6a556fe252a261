// dao/master_dao.go

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

// MasterDAO covers the small master-data tables: countries, platforms,
// workflow stage masters and QC weightage configs.
type MasterDAO struct {
	DB *gorm.DB
}

func NewMasterDAO(db *gorm.DB) *MasterDAO {
	return &MasterDAO{DB: db}
}

func (dao *MasterDAO) CreateCountry(ctx context.Context, country *model.Country) (int64, error) {
	country.CreatedAt = time.Now()
	country.UpdatedAt = time.Now()
	if err := dao.DB.WithContext(ctx).Create(country).Error; err != nil {
		return 0, fmt.Errorf("failed to create country: %w", err)
	}
	logger.Info("Country created", zap.String("code", country.Code))
	return country.ID, nil
}

func (dao *MasterDAO) ListCountries(ctx context.Context) ([]*model.Country, error) {
	var countries []*model.Country
	if err := dao.DB.WithContext(ctx).Order("name ASC").Find(&countries).Error; err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return countries, nil
}

func (dao *MasterDAO) DeleteCountry(ctx context.Context, countryID int64) error {
	res := dao.DB.WithContext(ctx).Delete(&model.Country{}, countryID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete country %d: %w", countryID, res.Error)
	}
	if res.RowsAffected == 0 {
		return backoffice_errors.ErrMasterNotFound
	}
	return nil
}

func (dao *MasterDAO) CreatePlatform(ctx context.Context, platform *model.Platform) (int64, error) {
	platform.CreatedAt = time.Now()
	platform.UpdatedAt = time.Now()
	if err := dao.DB.WithContext(ctx).Create(platform).Error; err != nil {
		return 0, fmt.Errorf("failed to create platform: %w", err)
	}
	logger.Info("Platform created", zap.String("name", platform.Name))
	return platform.ID, nil
}

func (dao *MasterDAO) ListPlatforms(ctx context.Context) ([]*model.Platform, error) {
	var platforms []*model.Platform
	if err := dao.DB.WithContext(ctx).Order("name ASC").Find(&platforms).Error; err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	return platforms, nil
}

func (dao *MasterDAO) DeletePlatform(ctx context.Context, platformID int64) error {
	res := dao.DB.WithContext(ctx).Delete(&model.Platform{}, platformID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete platform %d: %w", platformID, res.Error)
	}
	if res.RowsAffected == 0 {
		return backoffice_errors.ErrMasterNotFound
	}
	return nil
}

func (dao *MasterDAO) ListWorkflowStages(ctx context.Context) ([]*model.WorkflowStageMaster, error) {
	var stages []*model.WorkflowStageMaster
	if err := dao.DB.WithContext(ctx).Order("sort_order ASC").Find(&stages).Error; err != nil {
		return nil, fmt.Errorf("failed to list workflow stages: %w", err)
	}
	return stages, nil
}

func (dao *MasterDAO) CreateWorkflowStage(ctx context.Context, stage *model.WorkflowStageMaster) (int64, error) {
	stage.CreatedAt = time.Now()
	stage.UpdatedAt = time.Now()
	if err := dao.DB.WithContext(ctx).Create(stage).Error; err != nil {
		return 0, fmt.Errorf("failed to create workflow stage: %w", err)
	}
	return stage.ID, nil
}

func (dao *MasterDAO) CreateWeightageConfig(ctx context.Context, config *model.QCWeightageConfig) (int64, error) {
	config.CreatedAt = time.Now()
	config.UpdatedAt = time.Now()
	if err := dao.DB.WithContext(ctx).Create(config).Error; err != nil {
		return 0, fmt.Errorf("failed to create weightage config: %w", err)
	}
	logger.Info("Weightage config created", zap.String("name", config.Name))
	return config.ID, nil
}

func (dao *MasterDAO) GetWeightageConfig(ctx context.Context, configID int64) (*model.QCWeightageConfig, error) {
	var config model.QCWeightageConfig
	err := dao.DB.WithContext(ctx).First(&config, configID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, backoffice_errors.ErrMasterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weightage config %d: %w", configID, err)
	}
	return &config, nil
}

func (dao *MasterDAO) ListWeightageConfigs(ctx context.Context) ([]*model.QCWeightageConfig, error) {
	var configs []*model.QCWeightageConfig
	if err := dao.DB.WithContext(ctx).Order("name ASC").Find(&configs).Error; err != nil {
		return nil, fmt.Errorf("failed to list weightage configs: %w", err)
	}
	return configs, nil
}

func (dao *MasterDAO) UpdateWeightageConfig(ctx context.Context, config *model.QCWeightageConfig) error {
	config.UpdatedAt = time.Now()
	res := dao.DB.WithContext(ctx).Model(&model.QCWeightageConfig{}).
		Where("id = ?", config.ID).
		Updates(map[string]interface{}{
			"name":              config.Name,
			"content_weight":    config.ContentWeight,
			"design_weight":     config.DesignWeight,
			"seo_weight":        config.SEOWeight,
			"compliance_weight": config.ComplianceWeight,
			"active":            config.Active,
			"updated_at":        config.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update weightage config %d: %w", config.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return backoffice_errors.ErrMasterNotFound
	}
	return nil
}

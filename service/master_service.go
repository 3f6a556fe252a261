// service/master_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/SAHAYOGESHWARAN/guries-sub010/auth"
	"github.com/SAHAYOGESHWARAN/guries-sub010/dao"
	backoffice_errors "github.com/SAHAYOGESHWARAN/guries-sub010/errors"
	logger "github.com/SAHAYOGESHWARAN/guries-sub010/logging"
	"github.com/SAHAYOGESHWARAN/guries-sub010/model"
	"github.com/SAHAYOGESHWARAN/guries-sub010/util"
)

// IMasterService manages the master-data tables behind the admin UI
// dropdowns and the QC weightage configuration.
type IMasterService interface {
	CreateCountry(ctx context.Context, country model.Country, userID, role string) (*model.Country, error)
	ListCountries(ctx context.Context) ([]*model.Country, error)
	DeleteCountry(ctx context.Context, countryID int64, userID, role string) error
	CreatePlatform(ctx context.Context, platform model.Platform, userID, role string) (*model.Platform, error)
	ListPlatforms(ctx context.Context) ([]*model.Platform, error)
	DeletePlatform(ctx context.Context, platformID int64, userID, role string) error
	ListWorkflowStages(ctx context.Context) ([]*model.WorkflowStageMaster, error)
	CreateWorkflowStage(ctx context.Context, stage model.WorkflowStageMaster, userID, role string) (*model.WorkflowStageMaster, error)
	CreateWeightageConfig(ctx context.Context, config model.QCWeightageConfig, userID, role string) (*model.QCWeightageConfig, error)
	GetWeightageConfig(ctx context.Context, configID int64) (*model.QCWeightageConfig, error)
	ListWeightageConfigs(ctx context.Context) ([]*model.QCWeightageConfig, error)
	UpdateWeightageConfig(ctx context.Context, config model.QCWeightageConfig, userID, role string) (*model.QCWeightageConfig, error)
}

type MasterService struct {
	masterDAO      *dao.MasterDAO
	permissions    *auth.Registry
	validationUtil *util.ValidationUtil
}

// NewMasterService creates a new instance of MasterService
func NewMasterService(
	masterDAO *dao.MasterDAO,
	permissions *auth.Registry,
	validationUtil *util.ValidationUtil,
) *MasterService {
	return &MasterService{
		masterDAO:      masterDAO,
		permissions:    permissions,
		validationUtil: validationUtil,
	}
}

func (s *MasterService) CreateCountry(ctx context.Context, country model.Country, userID, role string) (*model.Country, error) {
	if !s.permissions.HasPermission(role, auth.PermManageMasters) {
		return nil, backoffice_errors.ErrPermissionDenied
	}
	if err := s.validationUtil.ValidateCountry(country); err != nil {
		return nil, fmt.Errorf("%w: %v", backoffice_errors.ErrInvalidMasterData, err)
	}

	countryID, err := s.masterDAO.CreateCountry(ctx, &country)
	if err != nil {
		logger.Error("Error creating country", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("failed to create country: %w", err)
	}
	country.ID = countryID
	return &country, nil
}

func (s *MasterService) ListCountries(ctx context.Context) ([]*model.Country, error) {
	return s.masterDAO.ListCountries(ctx)
}

func (s *MasterService) DeleteCountry(ctx context.Context, countryID int64, userID, role string) error {
	if !s.permissions.HasPermission(role, auth.PermManageMasters) {
		return backoffice_errors.ErrPermissionDenied
	}
	return s.masterDAO.DeleteCountry(ctx, countryID)
}

func (s *MasterService) CreatePlatform(ctx context.Context, platform model.Platform, userID, role string) (*model.Platform, error) {
	if !s.permissions.HasPermission(role, auth.PermManageMasters) {
		return nil, backoffice_errors.ErrPermissionDenied
	}
	if err := s.validationUtil.ValidatePlatform(platform); err != nil {
		return nil, fmt.Errorf("%w: %v", backoffice_errors.ErrInvalidMasterData, err)
	}

	platformID, err := s.masterDAO.CreatePlatform(ctx, &platform)
	if err != nil {
		logger.Error("Error creating platform", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("failed to create platform: %w", err)
	}
	platform.ID = platformID
	return &platform, nil
}

func (s *MasterService) ListPlatforms(ctx context.Context) ([]*model.Platform, error) {
	return s.masterDAO.ListPlatforms(ctx)
}

func (s *MasterService) DeletePlatform(ctx context.Context, platformID int64, userID, role string) error {
	if !s.permissions.HasPermission(role, auth.PermManageMasters) {
		return backoffice_errors.ErrPermissionDenied
	}
	return s.masterDAO.DeletePlatform(ctx, platformID)
}

func (s *MasterService) ListWorkflowStages(ctx context.Context) ([]*model.WorkflowStageMaster, error) {
	return s.masterDAO.ListWorkflowStages(ctx)
}

func (s *MasterService) CreateWorkflowStage(ctx context.Context, stage model.WorkflowStageMaster, userID, role string) (*model.WorkflowStageMaster, error) {
	if !s.permissions.HasPermission(role, auth.PermManageMasters) {
		return nil, backoffice_errors.ErrPermissionDenied
	}
	if stage.Name == "" {
		return nil, fmt.Errorf("%w: stage name cannot be empty", backoffice_errors.ErrInvalidMasterData)
	}

	stageID, err := s.masterDAO.CreateWorkflowStage(ctx, &stage)
	if err != nil {
		logger.Error("Error creating workflow stage", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("failed to create workflow stage: %w", err)
	}
	stage.ID = stageID
	return &stage, nil
}

// CreateWeightageConfig validates the 100-percent rule before any write.
func (s *MasterService) CreateWeightageConfig(ctx context.Context, config model.QCWeightageConfig, userID, role string) (*model.QCWeightageConfig, error) {
	if !s.permissions.HasPermission(role, auth.PermManageMasters) {
		return nil, backoffice_errors.ErrPermissionDenied
	}
	if err := s.validationUtil.ValidateWeightageConfig(config); err != nil {
		return nil, fmt.Errorf("%w: %v", backoffice_errors.ErrInvalidWeightage, err)
	}

	configID, err := s.masterDAO.CreateWeightageConfig(ctx, &config)
	if err != nil {
		logger.Error("Error creating weightage config", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("failed to create weightage config: %w", err)
	}
	config.ID = configID
	return &config, nil
}

func (s *MasterService) GetWeightageConfig(ctx context.Context, configID int64) (*model.QCWeightageConfig, error) {
	return s.masterDAO.GetWeightageConfig(ctx, configID)
}

func (s *MasterService) ListWeightageConfigs(ctx context.Context) ([]*model.QCWeightageConfig, error) {
	return s.masterDAO.ListWeightageConfigs(ctx)
}

func (s *MasterService) UpdateWeightageConfig(ctx context.Context, config model.QCWeightageConfig, userID, role string) (*model.QCWeightageConfig, error) {
	if !s.permissions.HasPermission(role, auth.PermManageMasters) {
		return nil, backoffice_errors.ErrPermissionDenied
	}
	if err := s.validationUtil.ValidateWeightageConfig(config); err != nil {
		return nil, fmt.Errorf("%w: %v", backoffice_errors.ErrInvalidWeightage, err)
	}

	if err := s.masterDAO.UpdateWeightageConfig(ctx, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

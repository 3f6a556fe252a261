// service/taxonomy_service.go
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

// ITaxonomyService manages the service/sub-service content pages the
// link registry points into.
type ITaxonomyService interface {
	CreateService(ctx context.Context, service model.Service, userID, role string) (*model.Service, error)
	GetService(ctx context.Context, serviceID int64) (*model.Service, error)
	ListServices(ctx context.Context, limit, offset int) ([]*model.Service, error)
	UpdateService(ctx context.Context, service model.Service, userID, role string) (*model.Service, error)
	CreateSubService(ctx context.Context, subService model.SubService, userID, role string) (*model.SubService, error)
	GetSubService(ctx context.Context, subServiceID int64) (*model.SubService, error)
	ListSubServices(ctx context.Context, serviceID int64) ([]*model.SubService, error)
}

type TaxonomyService struct {
	taxonomyDAO    *dao.TaxonomyDAO
	permissions    *auth.Registry
	validationUtil *util.ValidationUtil
	cacheService   *util.CacheService
}

// NewTaxonomyService creates a new instance of TaxonomyService
func NewTaxonomyService(
	taxonomyDAO *dao.TaxonomyDAO,
	permissions *auth.Registry,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
) *TaxonomyService {
	return &TaxonomyService{
		taxonomyDAO:    taxonomyDAO,
		permissions:    permissions,
		validationUtil: validationUtil,
		cacheService:   cacheService,
	}
}

func (s *TaxonomyService) CreateService(ctx context.Context, service model.Service, userID, role string) (*model.Service, error) {
	if !s.permissions.HasPermission(role, auth.PermManageMasters) {
		return nil, backoffice_errors.ErrPermissionDenied
	}
	if err := s.validationUtil.ValidateService(service); err != nil {
		return nil, fmt.Errorf("%w: %v", backoffice_errors.ErrInvalidMasterData, err)
	}

	serviceID, err := s.taxonomyDAO.CreateService(ctx, &service)
	if err != nil {
		logger.Error("Error creating service", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	service.ID = serviceID

	if err := s.cacheService.SetService(ctx, service); err != nil {
		logger.Warn("Failed to cache service", zap.Error(err), zap.Int64("serviceID", serviceID))
	}

	return &service, nil
}

func (s *TaxonomyService) GetService(ctx context.Context, serviceID int64) (*model.Service, error) {
	cached, err := s.cacheService.GetService(ctx, serviceID)
	if err == nil && cached != nil {
		return cached, nil
	}

	service, err := s.taxonomyDAO.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetService(ctx, *service); err != nil {
		logger.Warn("Failed to cache service", zap.Error(err), zap.Int64("serviceID", serviceID))
	}
	return service, nil
}

func (s *TaxonomyService) ListServices(ctx context.Context, limit, offset int) ([]*model.Service, error) {
	services, err := s.taxonomyDAO.ListServices(ctx, limit, offset)
	if err != nil {
		logger.Error("Error listing services", zap.Error(err))
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *TaxonomyService) UpdateService(ctx context.Context, service model.Service, userID, role string) (*model.Service, error) {
	if !s.permissions.HasPermission(role, auth.PermManageMasters) {
		return nil, backoffice_errors.ErrPermissionDenied
	}
	if err := s.validationUtil.ValidateService(service); err != nil {
		return nil, fmt.Errorf("%w: %v", backoffice_errors.ErrInvalidMasterData, err)
	}

	if err := s.taxonomyDAO.UpdateService(ctx, &service); err != nil {
		return nil, err
	}

	if err := s.cacheService.DeleteService(ctx, service.ID); err != nil {
		logger.Warn("Failed to invalidate service cache", zap.Error(err), zap.Int64("serviceID", service.ID))
	}
	return &service, nil
}

func (s *TaxonomyService) CreateSubService(ctx context.Context, subService model.SubService, userID, role string) (*model.SubService, error) {
	if !s.permissions.HasPermission(role, auth.PermManageMasters) {
		return nil, backoffice_errors.ErrPermissionDenied
	}
	if err := s.validationUtil.ValidateSubService(subService); err != nil {
		return nil, fmt.Errorf("%w: %v", backoffice_errors.ErrInvalidMasterData, err)
	}

	// Parent must exist
	if _, err := s.taxonomyDAO.GetService(ctx, subService.ServiceID); err != nil {
		return nil, err
	}

	subServiceID, err := s.taxonomyDAO.CreateSubService(ctx, &subService)
	if err != nil {
		logger.Error("Error creating sub-service", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("failed to create sub-service: %w", err)
	}
	subService.ID = subServiceID

	return &subService, nil
}

func (s *TaxonomyService) GetSubService(ctx context.Context, subServiceID int64) (*model.SubService, error) {
	return s.taxonomyDAO.GetSubService(ctx, subServiceID)
}

func (s *TaxonomyService) ListSubServices(ctx context.Context, serviceID int64) ([]*model.SubService, error) {
	subServices, err := s.taxonomyDAO.ListSubServices(ctx, serviceID)
	if err != nil {
		logger.Error("Error listing sub-services", zap.Error(err))
		return nil, fmt.Errorf("failed to list sub-services: %w", err)
	}
	return subServices, nil
}

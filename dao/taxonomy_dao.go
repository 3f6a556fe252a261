// dao/taxonomy_dao.go

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

type TaxonomyDAO struct {
	DB *gorm.DB
}

func NewTaxonomyDAO(db *gorm.DB) *TaxonomyDAO {
	return &TaxonomyDAO{DB: db}
}

func (dao *TaxonomyDAO) CreateService(ctx context.Context, service *model.Service) (int64, error) {
	service.CreatedAt = time.Now()
	service.UpdatedAt = time.Now()
	if err := dao.DB.WithContext(ctx).Create(service).Error; err != nil {
		return 0, fmt.Errorf("failed to create service: %w", err)
	}
	logger.Info("Service created", zap.Int64("serviceID", service.ID), zap.String("name", service.Name))
	return service.ID, nil
}

func (dao *TaxonomyDAO) GetService(ctx context.Context, serviceID int64) (*model.Service, error) {
	var service model.Service
	err := dao.DB.WithContext(ctx).First(&service, serviceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, backoffice_errors.ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service %d: %w", serviceID, err)
	}
	return &service, nil
}

func (dao *TaxonomyDAO) ListServices(ctx context.Context, limit, offset int) ([]*model.Service, error) {
	var services []*model.Service
	err := dao.DB.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&services).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (dao *TaxonomyDAO) UpdateService(ctx context.Context, service *model.Service) error {
	service.UpdatedAt = time.Now()
	res := dao.DB.WithContext(ctx).Model(&model.Service{}).
		Where("id = ?", service.ID).
		Updates(map[string]interface{}{
			"name":        service.Name,
			"slug":        service.Slug,
			"description": service.Description,
			"content":     service.Content,
			"updated_at":  service.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update service %d: %w", service.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return backoffice_errors.ErrServiceNotFound
	}
	return nil
}

func (dao *TaxonomyDAO) CreateSubService(ctx context.Context, subService *model.SubService) (int64, error) {
	subService.CreatedAt = time.Now()
	subService.UpdatedAt = time.Now()
	if err := dao.DB.WithContext(ctx).Create(subService).Error; err != nil {
		return 0, fmt.Errorf("failed to create sub-service: %w", err)
	}
	logger.Info("Sub-service created", zap.Int64("subServiceID", subService.ID), zap.String("name", subService.Name))
	return subService.ID, nil
}

func (dao *TaxonomyDAO) GetSubService(ctx context.Context, subServiceID int64) (*model.SubService, error) {
	var subService model.SubService
	err := dao.DB.WithContext(ctx).First(&subService, subServiceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, backoffice_errors.ErrSubServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sub-service %d: %w", subServiceID, err)
	}
	return &subService, nil
}

func (dao *TaxonomyDAO) ListSubServices(ctx context.Context, serviceID int64) ([]*model.SubService, error) {
	var subServices []*model.SubService
	query := dao.DB.WithContext(ctx).Order("name ASC")
	if serviceID != 0 {
		query = query.Where("service_id = ?", serviceID)
	}
	if err := query.Find(&subServices).Error; err != nil {
		return nil, fmt.Errorf("failed to list sub-services: %w", err)
	}
	return subServices, nil
}

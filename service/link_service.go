// service/link_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/SAHAYOGESHWARAN/guries-sub010/audit"
	"github.com/SAHAYOGESHWARAN/guries-sub010/auth"
	"github.com/SAHAYOGESHWARAN/guries-sub010/dao"
	backoffice_errors "github.com/SAHAYOGESHWARAN/guries-sub010/errors"
	logger "github.com/SAHAYOGESHWARAN/guries-sub010/logging"
	"github.com/SAHAYOGESHWARAN/guries-sub010/model"
	"github.com/SAHAYOGESHWARAN/guries-sub010/util"
)

// ILinkService is the link registry contract. Static links are created
// only through asset upload; this service manages dynamic links and
// enforces static-link protection on removal.
type ILinkService interface {
	LinkToService(ctx context.Context, req model.LinkRequest, userID, role string) (*model.ServiceAssetLink, error)
	LinkToSubService(ctx context.Context, req model.LinkRequest, userID, role string) (*model.SubServiceAssetLink, error)
	UnlinkFromService(ctx context.Context, req model.LinkRequest, userID, role string) error
	UnlinkFromSubService(ctx context.Context, req model.LinkRequest, userID, role string) error
	ListServiceAssets(ctx context.Context, serviceID int64, visibleOnly bool) ([]model.LinkedAsset, error)
	ListSubServiceAssets(ctx context.Context, subServiceID int64, visibleOnly bool) ([]model.LinkedAsset, error)
}

// LinkService handles business logic for asset-to-taxonomy links.
type LinkService struct {
	linkDAO        *dao.LinkDAO
	assetDAO       *dao.AssetDAO
	permissions    *auth.Registry
	auditService   audit.Service
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

// NewLinkService creates a new instance of LinkService
func NewLinkService(
	linkDAO *dao.LinkDAO,
	assetDAO *dao.AssetDAO,
	permissions *auth.Registry,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	eventBus *util.EventBus,
) *LinkService {
	return &LinkService{
		linkDAO:        linkDAO,
		assetDAO:       assetDAO,
		permissions:    permissions,
		auditService:   auditService,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

// LinkToService creates a dynamic link between an asset and a service.
func (s *LinkService) LinkToService(ctx context.Context, req model.LinkRequest, userID, role string) (*model.ServiceAssetLink, error) {
	if !s.permissions.HasPermission(role, auth.PermManageLinks) {
		return nil, backoffice_errors.ErrPermissionDenied
	}
	if err := s.validationUtil.ValidateLinkRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", backoffice_errors.ErrInvalidLinkData, err)
	}

	// Link creation against a missing asset is an error, unlike list
	// operations where an unknown service just yields an empty set.
	if _, err := s.assetDAO.GetAsset(ctx, req.AssetID); err != nil {
		return nil, err
	}

	link, err := s.linkDAO.CreateServiceLink(ctx, req.AssetID, req.ServiceID, userID, false)
	if err != nil {
		logger.Error("Error creating service link", zap.Error(err), zap.Int64("assetID", req.AssetID))
		return nil, fmt.Errorf("failed to create service link: %w", err)
	}

	s.recordAudit(ctx, req.AssetID, userID, "linked_to_service", fmt.Sprintf("service %d", req.ServiceID))
	s.eventBus.Publish(ctx, "asset.linked", *link)

	return link, nil
}

// LinkToSubService creates a dynamic link between an asset and a sub-service.
func (s *LinkService) LinkToSubService(ctx context.Context, req model.LinkRequest, userID, role string) (*model.SubServiceAssetLink, error) {
	if !s.permissions.HasPermission(role, auth.PermManageLinks) {
		return nil, backoffice_errors.ErrPermissionDenied
	}
	if err := s.validationUtil.ValidateLinkRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", backoffice_errors.ErrInvalidLinkData, err)
	}

	if _, err := s.assetDAO.GetAsset(ctx, req.AssetID); err != nil {
		return nil, err
	}

	link, err := s.linkDAO.CreateSubServiceLink(ctx, req.AssetID, req.SubServiceID, userID, false)
	if err != nil {
		logger.Error("Error creating sub-service link", zap.Error(err), zap.Int64("assetID", req.AssetID))
		return nil, fmt.Errorf("failed to create sub-service link: %w", err)
	}

	s.recordAudit(ctx, req.AssetID, userID, "linked_to_subservice", fmt.Sprintf("sub-service %d", req.SubServiceID))
	s.eventBus.Publish(ctx, "asset.linked", *link)

	return link, nil
}

// UnlinkFromService removes a dynamic link. A static link survives:
// the call fails with ErrStaticLinkProtected and the row is untouched.
func (s *LinkService) UnlinkFromService(ctx context.Context, req model.LinkRequest, userID, role string) error {
	if !s.permissions.HasPermission(role, auth.PermManageLinks) {
		return backoffice_errors.ErrPermissionDenied
	}

	link, err := s.linkDAO.GetServiceLink(ctx, req.AssetID, req.ServiceID)
	if err != nil {
		return err
	}
	if link.IsStatic {
		logger.Warn("Blocked removal of static service link",
			zap.Int64("assetID", req.AssetID),
			zap.Int64("serviceID", req.ServiceID),
			zap.String("userID", userID))
		return backoffice_errors.ErrStaticLinkProtected
	}

	if err := s.linkDAO.DeleteServiceLink(ctx, req.AssetID, req.ServiceID); err != nil {
		if errors.Is(err, backoffice_errors.ErrStaticLinkProtected) {
			return err
		}
		logger.Error("Error removing service link", zap.Error(err), zap.Int64("assetID", req.AssetID))
		return fmt.Errorf("failed to remove service link: %w", err)
	}

	s.recordAudit(ctx, req.AssetID, userID, "unlinked_from_service", fmt.Sprintf("service %d", req.ServiceID))
	s.eventBus.Publish(ctx, "asset.unlinked", req)

	return nil
}

// UnlinkFromSubService removes a dynamic sub-service link.
func (s *LinkService) UnlinkFromSubService(ctx context.Context, req model.LinkRequest, userID, role string) error {
	if !s.permissions.HasPermission(role, auth.PermManageLinks) {
		return backoffice_errors.ErrPermissionDenied
	}

	link, err := s.linkDAO.GetSubServiceLink(ctx, req.AssetID, req.SubServiceID)
	if err != nil {
		return err
	}
	if link.IsStatic {
		logger.Warn("Blocked removal of static sub-service link",
			zap.Int64("assetID", req.AssetID),
			zap.Int64("subServiceID", req.SubServiceID),
			zap.String("userID", userID))
		return backoffice_errors.ErrStaticLinkProtected
	}

	if err := s.linkDAO.DeleteSubServiceLink(ctx, req.AssetID, req.SubServiceID); err != nil {
		if errors.Is(err, backoffice_errors.ErrStaticLinkProtected) {
			return err
		}
		logger.Error("Error removing sub-service link", zap.Error(err), zap.Int64("assetID", req.AssetID))
		return fmt.Errorf("failed to remove sub-service link: %w", err)
	}

	s.recordAudit(ctx, req.AssetID, userID, "unlinked_from_subservice", fmt.Sprintf("sub-service %d", req.SubServiceID))
	s.eventBus.Publish(ctx, "asset.unlinked", req)

	return nil
}

// ListServiceAssets returns every asset linked to the service with its
// link metadata. Callers apply the visibility rule themselves unless
// they ask for visibleOnly.
func (s *LinkService) ListServiceAssets(ctx context.Context, serviceID int64, visibleOnly bool) ([]model.LinkedAsset, error) {
	assets, err := s.linkDAO.ListLinkedAssets(ctx, serviceID, visibleOnly)
	if err != nil {
		logger.Error("Error listing linked assets", zap.Error(err), zap.Int64("serviceID", serviceID))
		return nil, fmt.Errorf("failed to list linked assets: %w", err)
	}
	return assets, nil
}

// ListSubServiceAssets is ListServiceAssets for sub-services.
func (s *LinkService) ListSubServiceAssets(ctx context.Context, subServiceID int64, visibleOnly bool) ([]model.LinkedAsset, error) {
	assets, err := s.linkDAO.ListLinkedAssetsBySubService(ctx, subServiceID, visibleOnly)
	if err != nil {
		logger.Error("Error listing linked assets", zap.Error(err), zap.Int64("subServiceID", subServiceID))
		return nil, fmt.Errorf("failed to list linked assets: %w", err)
	}
	return assets, nil
}

func (s *LinkService) recordAudit(ctx context.Context, assetID int64, userID, action, details string) {
	entry := audit.Entry{
		Timestamp: time.Now(),
		UserID:    userID,
		Action:    action,
		AssetID:   assetID,
		Details:   details,
	}
	if err := s.auditService.LogAction(ctx, entry); err != nil {
		logger.Warn("Failed to write audit record",
			zap.Error(err),
			zap.Int64("assetID", assetID),
			zap.String("action", action))
	}
}

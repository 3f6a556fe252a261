// service/asset_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/SAHAYOGESHWARAN/guries-sub010/audit"
	"github.com/SAHAYOGESHWARAN/guries-sub010/auth"
	"github.com/SAHAYOGESHWARAN/guries-sub010/dao"
	backoffice_errors "github.com/SAHAYOGESHWARAN/guries-sub010/errors"
	logger "github.com/SAHAYOGESHWARAN/guries-sub010/logging"
	"github.com/SAHAYOGESHWARAN/guries-sub010/model"
	"github.com/SAHAYOGESHWARAN/guries-sub010/util"
	"github.com/SAHAYOGESHWARAN/guries-sub010/workflow"
)

// IAssetService is the asset lifecycle contract consumed by the HTTP
// layer. Every mutating operation takes the caller's identity; the
// permission gate is consulted before any state is touched.
type IAssetService interface {
	CreateAsset(ctx context.Context, req model.CreateAssetRequest, userID, role string) (*model.Asset, error)
	BulkCreateAssets(ctx context.Context, reqs []model.CreateAssetRequest, userID, role string) ([]int64, error)
	GetAsset(ctx context.Context, assetID int64) (*model.Asset, error)
	ListAssets(ctx context.Context, limit, offset int) ([]*model.Asset, error)
	ListPendingQC(ctx context.Context) ([]*model.Asset, error)
	SubmitForQC(ctx context.Context, assetID int64, userID, role string) (*model.Asset, error)
	ReviewAsset(ctx context.Context, assetID int64, req model.QCDecisionRequest, userID, role string) (*model.Asset, error)
	GetHistory(ctx context.Context, assetID int64, newestFirst bool) ([]model.WorkflowLogEntry, error)
}

// AssetService owns asset creation and every QC workflow transition.
type AssetService struct {
	assetDAO        *dao.AssetDAO
	permissions     *auth.Registry
	auditService    audit.Service
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus

	// Serializes transitions per asset id within this process. The
	// DAO's version check covers writers in other processes.
	assetLocks *util.KeyedMutex
}

// NewAssetService creates a new instance of AssetService
func NewAssetService(
	assetDAO *dao.AssetDAO,
	permissions *auth.Registry,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *AssetService {
	service := &AssetService{
		assetDAO:        assetDAO,
		permissions:     permissions,
		auditService:    auditService,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		assetLocks:      util.NewKeyedMutex(),
	}

	// Set up event subscriptions
	eventBus.Subscribe("asset.created", service.handleAssetCreated)
	eventBus.Subscribe("asset.qc_decided", service.handleQCDecided)

	return service
}

func (s *AssetService) handleAssetCreated(ctx context.Context, event util.Event) error {
	asset, ok := event.Payload.(model.Asset)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	logger.Info("Asset created event received", zap.Int64("assetID", asset.ID))

	if err := s.notificationSvc.NotifyAssetChange(ctx, "created", asset); err != nil {
		logger.Warn("Failed to send asset creation notification", zap.Error(err), zap.Int64("assetID", asset.ID))
	}
	return nil
}

func (s *AssetService) handleQCDecided(ctx context.Context, event util.Event) error {
	payload, ok := event.Payload.(map[string]interface{})
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	asset, ok := payload["asset"].(model.Asset)
	if !ok {
		return fmt.Errorf("invalid asset payload type: %T", payload["asset"])
	}
	decision, _ := payload["decision"].(string)

	if err := s.notificationSvc.NotifyQCDecision(ctx, decision, asset); err != nil {
		logger.Warn("Failed to send qc decision notification", zap.Error(err), zap.Int64("assetID", asset.ID))
	}
	return nil
}

// CreateAsset handles upload: the asset starts in Draft/Pending with
// linking inactive, and any selected service/sub-services become
// static links in the same transaction.
func (s *AssetService) CreateAsset(ctx context.Context, req model.CreateAssetRequest, userID, role string) (*model.Asset, error) {
	if !s.permissions.HasPermission(role, auth.PermUploadAssets) {
		return nil, backoffice_errors.ErrPermissionDenied
	}
	if err := s.validationUtil.ValidateAsset(req); err != nil {
		return nil, fmt.Errorf("%w: %v", backoffice_errors.ErrInvalidAssetData, err)
	}

	now := time.Now()
	state, entry, err := workflow.Apply(workflow.State{}, workflow.ActionCreate, workflow.Payload{
		UserID:    userID,
		Timestamp: now,
	})
	if err != nil {
		return nil, err
	}

	asset := &model.Asset{
		Name:      req.Name,
		Type:      req.Type,
		Category:  req.Category,
		Format:    req.Format,
		CreatedBy: userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	state.ApplyTo(asset)

	assetID, err := s.assetDAO.CreateAsset(ctx, asset, entry, req.LinkedServiceID, req.LinkedSubServiceIDs)
	if err != nil {
		logger.Error("Error creating asset", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	s.recordAudit(ctx, assetID, userID, "created", req.Name)

	// Update cache
	if err := s.cacheService.SetAsset(ctx, *asset); err != nil {
		logger.Warn("Failed to cache asset", zap.Error(err), zap.Int64("assetID", assetID))
	}

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, "asset.created", *asset)

	logger.Info("Asset created successfully", zap.Int64("assetID", assetID), zap.String("userID", userID))
	return asset, nil
}

// BulkCreateAssets creates multiple assets in parallel
func (s *AssetService) BulkCreateAssets(ctx context.Context, reqs []model.CreateAssetRequest, userID, role string) ([]int64, error) {
	g, ctx := errgroup.WithContext(ctx)
	assetIDs := make([]int64, len(reqs))

	// Limit concurrency to avoid overwhelming the store
	semaphore := make(chan struct{}, 10)

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			created, err := s.CreateAsset(ctx, req, userID, role)
			if err != nil {
				return err
			}
			assetIDs[i] = created.ID
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("Error in bulk create assets", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("failed to bulk create assets: %w", err)
	}

	logger.Info("Bulk create assets completed", zap.Int("count", len(assetIDs)), zap.String("userID", userID))
	return assetIDs, nil
}

// GetAsset retrieves an asset by its ID
func (s *AssetService) GetAsset(ctx context.Context, assetID int64) (*model.Asset, error) {
	// Try to get from cache first
	cachedAsset, err := s.cacheService.GetAsset(ctx, assetID)
	if err == nil && cachedAsset != nil {
		return cachedAsset, nil
	}

	asset, err := s.assetDAO.GetAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}

	// Update cache
	if err := s.cacheService.SetAsset(ctx, *asset); err != nil {
		logger.Warn("Failed to cache asset", zap.Error(err), zap.Int64("assetID", assetID))
	}

	return asset, nil
}

// ListAssets retrieves a page of assets
func (s *AssetService) ListAssets(ctx context.Context, limit, offset int) ([]*model.Asset, error) {
	assets, err := s.assetDAO.ListAssets(ctx, limit, offset)
	if err != nil {
		logger.Error("Error listing assets", zap.Error(err), zap.Int("limit", limit), zap.Int("offset", offset))
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

// ListPendingQC retrieves the review queue (Pending and Rework assets).
func (s *AssetService) ListPendingQC(ctx context.Context) ([]*model.Asset, error) {
	assets, err := s.assetDAO.ListPendingQC(ctx)
	if err != nil {
		logger.Error("Error listing pending qc assets", zap.Error(err))
		return nil, fmt.Errorf("failed to list pending qc assets: %w", err)
	}
	return assets, nil
}

// SubmitForQC moves an asset into the review queue.
func (s *AssetService) SubmitForQC(ctx context.Context, assetID int64, userID, role string) (*model.Asset, error) {
	if !s.permissions.HasPermission(role, auth.PermSubmitForQC) {
		return nil, backoffice_errors.ErrPermissionDenied
	}

	return s.applyTransition(ctx, assetID, workflow.ActionSubmit, workflow.Payload{
		UserID:    userID,
		Timestamp: time.Now(),
	})
}

// ReviewAsset records a reviewer verdict: approve, reject or rework.
// Approval activates the asset's links; rejection and rework force
// them inactive. Unauthorized callers fail before any mutation.
func (s *AssetService) ReviewAsset(ctx context.Context, assetID int64, req model.QCDecisionRequest, userID, role string) (*model.Asset, error) {
	if err := s.validationUtil.ValidateQCDecision(req); err != nil {
		return nil, fmt.Errorf("%w: %v", backoffice_errors.ErrInvalidQCAction, err)
	}

	action, err := workflow.ParseAction(req.Action)
	if err != nil || !action.IsQCDecision() {
		return nil, backoffice_errors.ErrInvalidQCAction
	}

	if !s.permissions.HasPermission(role, auth.PermPerformQCReview) {
		return nil, backoffice_errors.ErrPermissionDenied
	}

	return s.applyTransition(ctx, assetID, action, workflow.Payload{
		UserID:    userID,
		Remarks:   req.Remarks,
		Score:     req.Score,
		Timestamp: time.Now(),
	})
}

// applyTransition runs one workflow transition to completion: fetch
// under the per-asset lock, apply the engine, persist conditionally,
// then fan out audit/cache/events. The audit fan-out is best-effort;
// the per-asset workflow log is written with the state change itself.
func (s *AssetService) applyTransition(ctx context.Context, assetID int64, action workflow.Action, p workflow.Payload) (*model.Asset, error) {
	s.assetLocks.Lock(assetID)
	defer s.assetLocks.Unlock(assetID)

	asset, err := s.assetDAO.GetAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}

	expectedVersion := asset.Version
	state, entry, err := workflow.Apply(workflow.StateOf(asset), action, p)
	if err != nil {
		return nil, err
	}
	state.ApplyTo(asset)

	if err := s.assetDAO.UpdateWorkflowState(ctx, asset, expectedVersion, entry); err != nil {
		logger.Error("Error applying workflow transition",
			zap.Error(err),
			zap.Int64("assetID", assetID),
			zap.String("action", string(action)))
		return nil, err
	}

	s.recordAudit(ctx, assetID, p.UserID, entry.Action, p.Remarks)

	if err := s.cacheService.DeleteAsset(ctx, assetID); err != nil {
		logger.Warn("Failed to invalidate asset cache", zap.Error(err), zap.Int64("assetID", assetID))
	}

	if action.IsQCDecision() {
		s.eventBus.Publish(ctx, "asset.qc_decided", map[string]interface{}{
			"asset":    *asset,
			"decision": entry.Action,
		})
	}

	logger.Info("Workflow transition applied",
		zap.Int64("assetID", assetID),
		zap.String("action", entry.Action),
		zap.String("userID", p.UserID))
	return asset, nil
}

// GetHistory returns the asset's workflow log. Display defaults to
// newest-first; storage stays append-only oldest-first.
func (s *AssetService) GetHistory(ctx context.Context, assetID int64, newestFirst bool) ([]model.WorkflowLogEntry, error) {
	if _, err := s.assetDAO.GetAsset(ctx, assetID); err != nil {
		return nil, err
	}
	return s.assetDAO.GetWorkflowLog(ctx, assetID, newestFirst)
}

// recordAudit appends to the cross-asset audit table. Failures are
// logged and never abort the parent transition.
func (s *AssetService) recordAudit(ctx context.Context, assetID int64, userID, action, details string) {
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

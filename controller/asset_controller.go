// controller/asset_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	backoffice_errors "github.com/SAHAYOGESHWARAN/guries-sub010/errors"
	"github.com/SAHAYOGESHWARAN/guries-sub010/model"
	"github.com/SAHAYOGESHWARAN/guries-sub010/service"
	"github.com/SAHAYOGESHWARAN/guries-sub010/util"
	helper_util "github.com/SAHAYOGESHWARAN/guries-sub010/util/helper"
)

type AssetController struct {
	assetService service.IAssetService
}

func NewAssetController(assetService service.IAssetService) *AssetController {
	return &AssetController{
		assetService: assetService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AssetController) RegisterRoutes(r *gin.RouterGroup) {
	assets := r.Group("/assets")
	{
		assets.POST("", ac.CreateAsset)
		assets.POST("/bulk", ac.BulkCreateAssets)
		assets.GET("", ac.ListAssets)
		assets.GET("/pending-qc", ac.ListPendingQC)
		assets.GET("/:id", ac.GetAsset)
		assets.POST("/:id/submit", ac.SubmitForQC)
		assets.POST("/:id/qc", ac.ReviewAsset)
		assets.GET("/:id/history", ac.GetHistory)
	}
}

// CreateAsset endpoint
func (ac *AssetController) CreateAsset(c *gin.Context) {
	var req model.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid asset data", backoffice_errors.ErrInvalidAssetData)
		return
	}
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	asset, err := ac.assetService.CreateAsset(c, req, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, backoffice_errors.ErrPermissionDenied):
			util.RespondWithError(c, http.StatusForbidden, "Permission denied", err)
		case errors.Is(err, backoffice_errors.ErrInvalidAssetData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid asset data", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create asset", err)
		}
		return
	}

	c.JSON(http.StatusCreated, asset)
}

// BulkCreateAssets endpoint
func (ac *AssetController) BulkCreateAssets(c *gin.Context) {
	var reqs []model.CreateAssetRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid asset data", backoffice_errors.ErrInvalidAssetData)
		return
	}
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	assetIDs, err := ac.assetService.BulkCreateAssets(c, reqs, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, backoffice_errors.ErrPermissionDenied):
			util.RespondWithError(c, http.StatusForbidden, "Permission denied", err)
		case errors.Is(err, backoffice_errors.ErrInvalidAssetData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid asset data", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create assets", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"assetIds": assetIDs})
}

// GetAsset endpoint
func (ac *AssetController) GetAsset(c *gin.Context) {
	assetID, err := helper_util.GetIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid asset id", err)
		return
	}

	asset, err := ac.assetService.GetAsset(c, assetID)
	if err != nil {
		if errors.Is(err, backoffice_errors.ErrAssetNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Asset not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve asset", err)
		}
		return
	}

	c.JSON(http.StatusOK, asset)
}

// ListAssets endpoint
func (ac *AssetController) ListAssets(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	assets, err := ac.assetService.ListAssets(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list assets", err)
		return
	}

	c.JSON(http.StatusOK, assets)
}

// ListPendingQC endpoint returns the reviewer queue.
func (ac *AssetController) ListPendingQC(c *gin.Context) {
	assets, err := ac.assetService.ListPendingQC(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list pending qc assets", err)
		return
	}

	c.JSON(http.StatusOK, assets)
}

// SubmitForQC endpoint
func (ac *AssetController) SubmitForQC(c *gin.Context) {
	assetID, err := helper_util.GetIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid asset id", err)
		return
	}
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	asset, err := ac.assetService.SubmitForQC(c, assetID, userID, role)
	if err != nil {
		ac.respondWithTransitionError(c, err, "Failed to submit asset for qc")
		return
	}

	c.JSON(http.StatusOK, asset)
}

// ReviewAsset endpoint records an approve/reject/rework verdict.
func (ac *AssetController) ReviewAsset(c *gin.Context) {
	assetID, err := helper_util.GetIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid asset id", err)
		return
	}
	var req model.QCDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid qc decision", backoffice_errors.ErrInvalidQCAction)
		return
	}
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	asset, err := ac.assetService.ReviewAsset(c, assetID, req, userID, role)
	if err != nil {
		ac.respondWithTransitionError(c, err, "Failed to review asset")
		return
	}

	c.JSON(http.StatusOK, asset)
}

// GetHistory endpoint returns the asset's workflow log, newest first.
func (ac *AssetController) GetHistory(c *gin.Context) {
	assetID, err := helper_util.GetIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid asset id", err)
		return
	}

	entries, err := ac.assetService.GetHistory(c, assetID, true)
	if err != nil {
		if errors.Is(err, backoffice_errors.ErrAssetNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Asset not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve asset history", err)
		}
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (ac *AssetController) respondWithTransitionError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, backoffice_errors.ErrAssetNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Asset not found", err)
	case errors.Is(err, backoffice_errors.ErrPermissionDenied):
		util.RespondWithError(c, http.StatusForbidden, "Permission denied", err)
	case errors.Is(err, backoffice_errors.ErrInvalidQCAction):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid qc decision", err)
	case errors.Is(err, backoffice_errors.ErrInvalidTransition):
		util.RespondWithError(c, http.StatusConflict, "Invalid workflow transition", err)
	case errors.Is(err, backoffice_errors.ErrConcurrentUpdate):
		util.RespondWithError(c, http.StatusConflict, "Asset was modified concurrently", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fallback, err)
	}
}

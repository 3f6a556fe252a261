// controller/link_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	backoffice_errors "github.com/SAHAYOGESHWARAN/guries-sub010/errors"
	"github.com/SAHAYOGESHWARAN/guries-sub010/model"
	"github.com/SAHAYOGESHWARAN/guries-sub010/service"
	"github.com/SAHAYOGESHWARAN/guries-sub010/util"
)

type LinkController struct {
	linkService service.ILinkService
}

func NewLinkController(linkService service.ILinkService) *LinkController {
	return &LinkController{
		linkService: linkService,
	}
}

// RegisterRoutes registers the API routes
func (lc *LinkController) RegisterRoutes(r *gin.RouterGroup) {
	links := r.Group("/assets")
	{
		links.POST("/link-to-service", lc.LinkToService)
		links.POST("/link-to-subservice", lc.LinkToSubService)
		links.POST("/unlink-from-service", lc.UnlinkFromService)
		links.POST("/unlink-from-subservice", lc.UnlinkFromSubService)
	}
}

// LinkToService endpoint creates a dynamic asset-to-service link.
func (lc *LinkController) LinkToService(c *gin.Context) {
	var req model.LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid link data", backoffice_errors.ErrInvalidLinkData)
		return
	}
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	link, err := lc.linkService.LinkToService(c, req, userID, role)
	if err != nil {
		lc.respondWithLinkError(c, err, "Failed to create service link")
		return
	}

	c.JSON(http.StatusCreated, link)
}

// LinkToSubService endpoint creates a dynamic asset-to-sub-service link.
func (lc *LinkController) LinkToSubService(c *gin.Context) {
	var req model.LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid link data", backoffice_errors.ErrInvalidLinkData)
		return
	}
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	link, err := lc.linkService.LinkToSubService(c, req, userID, role)
	if err != nil {
		lc.respondWithLinkError(c, err, "Failed to create sub-service link")
		return
	}

	c.JSON(http.StatusCreated, link)
}

// UnlinkFromService endpoint removes a dynamic link. Static links are
// refused with 403.
func (lc *LinkController) UnlinkFromService(c *gin.Context) {
	var req model.LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid link data", backoffice_errors.ErrInvalidLinkData)
		return
	}
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	if err := lc.linkService.UnlinkFromService(c, req, userID, role); err != nil {
		lc.respondWithLinkError(c, err, "Failed to remove service link")
		return
	}

	c.Status(http.StatusNoContent)
}

// UnlinkFromSubService endpoint removes a dynamic sub-service link.
func (lc *LinkController) UnlinkFromSubService(c *gin.Context) {
	var req model.LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid link data", backoffice_errors.ErrInvalidLinkData)
		return
	}
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	if err := lc.linkService.UnlinkFromSubService(c, req, userID, role); err != nil {
		lc.respondWithLinkError(c, err, "Failed to remove sub-service link")
		return
	}

	c.Status(http.StatusNoContent)
}

func (lc *LinkController) respondWithLinkError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, backoffice_errors.ErrPermissionDenied):
		util.RespondWithError(c, http.StatusForbidden, "Permission denied", err)
	case errors.Is(err, backoffice_errors.ErrStaticLinkProtected):
		util.RespondWithError(c, http.StatusForbidden, "Static links cannot be removed", err)
	case errors.Is(err, backoffice_errors.ErrAssetNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Asset not found", err)
	case errors.Is(err, backoffice_errors.ErrLinkNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Link not found", err)
	case errors.Is(err, backoffice_errors.ErrInvalidLinkData):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid link data", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fallback, err)
	}
}

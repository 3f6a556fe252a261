// controller/service_controller.go
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

// ServiceController exposes the service/sub-service pages and the
// per-service asset listing consumed by the public site renderer.
type ServiceController struct {
	taxonomyService service.ITaxonomyService
	linkService     service.ILinkService
}

func NewServiceController(taxonomyService service.ITaxonomyService, linkService service.ILinkService) *ServiceController {
	return &ServiceController{
		taxonomyService: taxonomyService,
		linkService:     linkService,
	}
}

// RegisterRoutes registers the API routes
func (sc *ServiceController) RegisterRoutes(r *gin.RouterGroup) {
	services := r.Group("/services")
	{
		services.POST("", sc.CreateService)
		services.GET("", sc.ListServices)
		services.GET("/:id", sc.GetService)
		services.PUT("/:id", sc.UpdateService)
		services.GET("/:id/assets", sc.ListServiceAssets)
		services.GET("/:id/sub-services", sc.ListSubServices)
	}
	subServices := r.Group("/sub-services")
	{
		subServices.POST("", sc.CreateSubService)
		subServices.GET("/:id", sc.GetSubService)
		subServices.GET("/:id/assets", sc.ListSubServiceAssets)
	}
}

// CreateService endpoint
func (sc *ServiceController) CreateService(c *gin.Context) {
	var svc model.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid service data", backoffice_errors.ErrInvalidMasterData)
		return
	}
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	created, err := sc.taxonomyService.CreateService(c, svc, userID, role)
	if err != nil {
		sc.respondWithTaxonomyError(c, err, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetService endpoint
func (sc *ServiceController) GetService(c *gin.Context) {
	serviceID, err := helper_util.GetIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid service id", err)
		return
	}

	svc, err := sc.taxonomyService.GetService(c, serviceID)
	if err != nil {
		if errors.Is(err, backoffice_errors.ErrServiceNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Service not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service", err)
		}
		return
	}

	c.JSON(http.StatusOK, svc)
}

// ListServices endpoint
func (sc *ServiceController) ListServices(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	services, err := sc.taxonomyService.ListServices(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list services", err)
		return
	}

	c.JSON(http.StatusOK, services)
}

// UpdateService endpoint
func (sc *ServiceController) UpdateService(c *gin.Context) {
	serviceID, err := helper_util.GetIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid service id", err)
		return
	}
	var svc model.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid service data", backoffice_errors.ErrInvalidMasterData)
		return
	}
	svc.ID = serviceID
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	updated, err := sc.taxonomyService.UpdateService(c, svc, userID, role)
	if err != nil {
		sc.respondWithTaxonomyError(c, err, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ListServiceAssets endpoint returns the assets linked to a service.
// With ?visible=true only approved assets with active linking are
// returned, which is what the page renderer asks for.
func (sc *ServiceController) ListServiceAssets(c *gin.Context) {
	serviceID, err := helper_util.GetIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid service id", err)
		return
	}
	visibleOnly := c.Query("visible") == "true"

	assets, err := sc.linkService.ListServiceAssets(c, serviceID, visibleOnly)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list linked assets", err)
		return
	}

	c.JSON(http.StatusOK, assets)
}

// CreateSubService endpoint
func (sc *ServiceController) CreateSubService(c *gin.Context) {
	var sub model.SubService
	if err := c.ShouldBindJSON(&sub); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid sub-service data", backoffice_errors.ErrInvalidMasterData)
		return
	}
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	created, err := sc.taxonomyService.CreateSubService(c, sub, userID, role)
	if err != nil {
		sc.respondWithTaxonomyError(c, err, "Failed to create sub-service")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetSubService endpoint
func (sc *ServiceController) GetSubService(c *gin.Context) {
	subServiceID, err := helper_util.GetIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid sub-service id", err)
		return
	}

	sub, err := sc.taxonomyService.GetSubService(c, subServiceID)
	if err != nil {
		if errors.Is(err, backoffice_errors.ErrSubServiceNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Sub-service not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve sub-service", err)
		}
		return
	}

	c.JSON(http.StatusOK, sub)
}

// ListSubServices endpoint lists the sub-services of a service.
func (sc *ServiceController) ListSubServices(c *gin.Context) {
	serviceID, err := helper_util.GetIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid service id", err)
		return
	}

	subServices, err := sc.taxonomyService.ListSubServices(c, serviceID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list sub-services", err)
		return
	}

	c.JSON(http.StatusOK, subServices)
}

// ListSubServiceAssets endpoint returns the assets linked to a sub-service.
func (sc *ServiceController) ListSubServiceAssets(c *gin.Context) {
	subServiceID, err := helper_util.GetIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid sub-service id", err)
		return
	}
	visibleOnly := c.Query("visible") == "true"

	assets, err := sc.linkService.ListSubServiceAssets(c, subServiceID, visibleOnly)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list linked assets", err)
		return
	}

	c.JSON(http.StatusOK, assets)
}

func (sc *ServiceController) respondWithTaxonomyError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, backoffice_errors.ErrPermissionDenied):
		util.RespondWithError(c, http.StatusForbidden, "Permission denied", err)
	case errors.Is(err, backoffice_errors.ErrServiceNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Service not found", err)
	case errors.Is(err, backoffice_errors.ErrSubServiceNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Sub-service not found", err)
	case errors.Is(err, backoffice_errors.ErrInvalidMasterData):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid data", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fallback, err)
	}
}

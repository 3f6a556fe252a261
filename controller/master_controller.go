// controller/master_controller.go
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

type MasterController struct {
	masterService service.IMasterService
}

func NewMasterController(masterService service.IMasterService) *MasterController {
	return &MasterController{
		masterService: masterService,
	}
}

// RegisterRoutes registers the API routes
func (mc *MasterController) RegisterRoutes(r *gin.RouterGroup) {
	masters := r.Group("/masters")
	{
		masters.POST("/countries", mc.CreateCountry)
		masters.GET("/countries", mc.ListCountries)
		masters.DELETE("/countries/:id", mc.DeleteCountry)
		masters.POST("/platforms", mc.CreatePlatform)
		masters.GET("/platforms", mc.ListPlatforms)
		masters.DELETE("/platforms/:id", mc.DeletePlatform)
		masters.GET("/workflow-stages", mc.ListWorkflowStages)
		masters.POST("/workflow-stages", mc.CreateWorkflowStage)
		masters.POST("/qc-weightages", mc.CreateWeightageConfig)
		masters.GET("/qc-weightages", mc.ListWeightageConfigs)
		masters.GET("/qc-weightages/:id", mc.GetWeightageConfig)
		masters.PUT("/qc-weightages/:id", mc.UpdateWeightageConfig)
	}
}

// CreateCountry endpoint
func (mc *MasterController) CreateCountry(c *gin.Context) {
	var country model.Country
	if err := c.ShouldBindJSON(&country); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid country data", backoffice_errors.ErrInvalidMasterData)
		return
	}
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	created, err := mc.masterService.CreateCountry(c, country, userID, role)
	if err != nil {
		mc.respondWithMasterError(c, err, "Failed to create country")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListCountries endpoint
func (mc *MasterController) ListCountries(c *gin.Context) {
	countries, err := mc.masterService.ListCountries(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list countries", err)
		return
	}

	c.JSON(http.StatusOK, countries)
}

// DeleteCountry endpoint
func (mc *MasterController) DeleteCountry(c *gin.Context) {
	countryID, err := helper_util.GetIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid country id", err)
		return
	}
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	if err := mc.masterService.DeleteCountry(c, countryID, userID, role); err != nil {
		mc.respondWithMasterError(c, err, "Failed to delete country")
		return
	}

	c.Status(http.StatusNoContent)
}

// CreatePlatform endpoint
func (mc *MasterController) CreatePlatform(c *gin.Context) {
	var platform model.Platform
	if err := c.ShouldBindJSON(&platform); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid platform data", backoffice_errors.ErrInvalidMasterData)
		return
	}
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	created, err := mc.masterService.CreatePlatform(c, platform, userID, role)
	if err != nil {
		mc.respondWithMasterError(c, err, "Failed to create platform")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListPlatforms endpoint
func (mc *MasterController) ListPlatforms(c *gin.Context) {
	platforms, err := mc.masterService.ListPlatforms(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list platforms", err)
		return
	}

	c.JSON(http.StatusOK, platforms)
}

// DeletePlatform endpoint
func (mc *MasterController) DeletePlatform(c *gin.Context) {
	platformID, err := helper_util.GetIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid platform id", err)
		return
	}
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	if err := mc.masterService.DeletePlatform(c, platformID, userID, role); err != nil {
		mc.respondWithMasterError(c, err, "Failed to delete platform")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListWorkflowStages endpoint returns the ordered stage master rows.
func (mc *MasterController) ListWorkflowStages(c *gin.Context) {
	stages, err := mc.masterService.ListWorkflowStages(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list workflow stages", err)
		return
	}

	c.JSON(http.StatusOK, stages)
}

// CreateWorkflowStage endpoint
func (mc *MasterController) CreateWorkflowStage(c *gin.Context) {
	var stage model.WorkflowStageMaster
	if err := c.ShouldBindJSON(&stage); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid workflow stage data", backoffice_errors.ErrInvalidMasterData)
		return
	}
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	created, err := mc.masterService.CreateWorkflowStage(c, stage, userID, role)
	if err != nil {
		mc.respondWithMasterError(c, err, "Failed to create workflow stage")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// CreateWeightageConfig endpoint
func (mc *MasterController) CreateWeightageConfig(c *gin.Context) {
	var config model.QCWeightageConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid weightage config", backoffice_errors.ErrInvalidWeightage)
		return
	}
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	created, err := mc.masterService.CreateWeightageConfig(c, config, userID, role)
	if err != nil {
		mc.respondWithMasterError(c, err, "Failed to create weightage config")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetWeightageConfig endpoint
func (mc *MasterController) GetWeightageConfig(c *gin.Context) {
	configID, err := helper_util.GetIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid config id", err)
		return
	}

	config, err := mc.masterService.GetWeightageConfig(c, configID)
	if err != nil {
		if errors.Is(err, backoffice_errors.ErrMasterNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Weightage config not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve weightage config", err)
		}
		return
	}

	c.JSON(http.StatusOK, config)
}

// ListWeightageConfigs endpoint
func (mc *MasterController) ListWeightageConfigs(c *gin.Context) {
	configs, err := mc.masterService.ListWeightageConfigs(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list weightage configs", err)
		return
	}

	c.JSON(http.StatusOK, configs)
}

// UpdateWeightageConfig endpoint
func (mc *MasterController) UpdateWeightageConfig(c *gin.Context) {
	configID, err := helper_util.GetIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid config id", err)
		return
	}
	var config model.QCWeightageConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid weightage config", backoffice_errors.ErrInvalidWeightage)
		return
	}
	config.ID = configID
	userID := util.GetUserIDFromContext(c)
	if userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", backoffice_errors.ErrUnauthorized)
		return
	}
	role := util.GetUserRoleFromContext(c)

	updated, err := mc.masterService.UpdateWeightageConfig(c, config, userID, role)
	if err != nil {
		mc.respondWithMasterError(c, err, "Failed to update weightage config")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (mc *MasterController) respondWithMasterError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, backoffice_errors.ErrPermissionDenied):
		util.RespondWithError(c, http.StatusForbidden, "Permission denied", err)
	case errors.Is(err, backoffice_errors.ErrMasterNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Master record not found", err)
	case errors.Is(err, backoffice_errors.ErrInvalidWeightage):
		util.RespondWithError(c, http.StatusBadRequest, "Weightage components must sum to 100", err)
	case errors.Is(err, backoffice_errors.ErrInvalidMasterData):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid master data", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fallback, err)
	}
}

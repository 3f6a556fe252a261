// controller/link_controller_test.go
package controller_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	"github.com/SAHAYOGESHWARAN/guries-sub010/controller"
	backoffice_errors "github.com/SAHAYOGESHWARAN/guries-sub010/errors"
	logger "github.com/SAHAYOGESHWARAN/guries-sub010/logging"
	"github.com/SAHAYOGESHWARAN/guries-sub010/middleware"
	"github.com/SAHAYOGESHWARAN/guries-sub010/model"
	"github.com/SAHAYOGESHWARAN/guries-sub010/test/mock"
)

func setupLinkRouter(t *testing.T, linkService *mock.MockLinkService) *gin.Engine {
	t.Helper()
	logger.InitLogger(t.TempDir())
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.Identity())
	api := r.Group("/api/v1")
	controller.NewLinkController(linkService).RegisterRoutes(api)
	return r
}

func TestLinkController(t *testing.T) {
	linkService := new(mock.MockLinkService)
	router := setupLinkRouter(t, linkService)

	t.Run("LinkToService_Success", func(t *testing.T) {
		linkService.On("LinkToService", testify_mock.Anything, testify_mock.Anything, "tester", "manager").
			Return(&model.ServiceAssetLink{ID: 1, AssetID: 7, ServiceID: 3}, nil).Once()

		w := doRequest(router, "POST", "/api/v1/assets/link-to-service", `{"assetId":7,"serviceId":3}`, "manager")
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("LinkToService_AssetNotFound", func(t *testing.T) {
		linkService.On("LinkToService", testify_mock.Anything, testify_mock.Anything, "tester", "manager").
			Return(nil, backoffice_errors.ErrAssetNotFound).Once()

		w := doRequest(router, "POST", "/api/v1/assets/link-to-service", `{"assetId":404,"serviceId":3}`, "manager")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("UnlinkFromService_StaticProtected", func(t *testing.T) {
		linkService.On("UnlinkFromService", testify_mock.Anything, testify_mock.Anything, "tester", "admin").
			Return(backoffice_errors.ErrStaticLinkProtected).Once()

		w := doRequest(router, "POST", "/api/v1/assets/unlink-from-service", `{"assetId":7,"serviceId":3}`, "admin")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("UnlinkFromService_Success", func(t *testing.T) {
		linkService.On("UnlinkFromService", testify_mock.Anything, testify_mock.Anything, "tester", "manager").
			Return(nil).Once()

		w := doRequest(router, "POST", "/api/v1/assets/unlink-from-service", `{"assetId":7,"serviceId":3}`, "manager")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("UnlinkFromSubService_NotFound", func(t *testing.T) {
		linkService.On("UnlinkFromSubService", testify_mock.Anything, testify_mock.Anything, "tester", "manager").
			Return(backoffice_errors.ErrLinkNotFound).Once()

		w := doRequest(router, "POST", "/api/v1/assets/unlink-from-subservice", `{"assetId":7,"subServiceId":5}`, "manager")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("LinkToSubService_PermissionDenied", func(t *testing.T) {
		linkService.On("LinkToSubService", testify_mock.Anything, testify_mock.Anything, "tester", "user").
			Return(nil, backoffice_errors.ErrPermissionDenied).Once()

		w := doRequest(router, "POST", "/api/v1/assets/link-to-subservice", `{"assetId":7,"subServiceId":5}`, "user")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	linkService.AssertExpectations(t)
}

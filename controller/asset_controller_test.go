// controller/asset_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
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

func setupAssetRouter(t *testing.T, assetService *mock.MockAssetService) *gin.Engine {
	t.Helper()
	logger.InitLogger(t.TempDir())
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.Identity())
	api := r.Group("/api/v1")
	controller.NewAssetController(assetService).RegisterRoutes(api)
	return r
}

func doRequest(router *gin.Engine, method, path, body, role string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, reader)
	if role != "" {
		req.Header.Set("x-user-id", "tester")
		req.Header.Set("x-user-role", role)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAssetController(t *testing.T) {
	assetService := new(mock.MockAssetService)
	router := setupAssetRouter(t, assetService)

	t.Run("CreateAsset_Success", func(t *testing.T) {
		assetService.On("CreateAsset", testify_mock.Anything, testify_mock.Anything, "tester", "user").
			Return(&model.Asset{ID: 1, Name: "banner"}, nil).Once()

		w := doRequest(router, "POST", "/api/v1/assets", `{"name":"banner"}`, "user")
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("CreateAsset_MissingIdentity", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/v1/assets", `{"name":"banner"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("CreateAsset_PermissionDenied", func(t *testing.T) {
		assetService.On("CreateAsset", testify_mock.Anything, testify_mock.Anything, "tester", "guest").
			Return(nil, backoffice_errors.ErrPermissionDenied).Once()

		w := doRequest(router, "POST", "/api/v1/assets", `{"name":"banner"}`, "guest")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("CreateAsset_InvalidBody", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/v1/assets", `{"name":`, "user")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetAsset_Success", func(t *testing.T) {
		assetService.On("GetAsset", testify_mock.Anything, int64(7)).
			Return(&model.Asset{ID: 7, Name: "banner"}, nil).Once()

		w := doRequest(router, "GET", "/api/v1/assets/7", "", "user")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetAsset_NotFound", func(t *testing.T) {
		assetService.On("GetAsset", testify_mock.Anything, int64(8)).
			Return(nil, backoffice_errors.ErrAssetNotFound).Once()

		w := doRequest(router, "GET", "/api/v1/assets/8", "", "user")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GetAsset_BadID", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/assets/abc", "", "user")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("SubmitForQC_Success", func(t *testing.T) {
		assetService.On("SubmitForQC", testify_mock.Anything, int64(7), "tester", "user").
			Return(&model.Asset{ID: 7, Status: model.StatusPendingQC}, nil).Once()

		w := doRequest(router, "POST", "/api/v1/assets/7/submit", "", "user")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("SubmitForQC_InvalidTransition", func(t *testing.T) {
		assetService.On("SubmitForQC", testify_mock.Anything, int64(7), "tester", "user").
			Return(nil, backoffice_errors.ErrInvalidTransition).Once()

		w := doRequest(router, "POST", "/api/v1/assets/7/submit", "", "user")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("ReviewAsset_Success", func(t *testing.T) {
		assetService.On("ReviewAsset", testify_mock.Anything, int64(7), testify_mock.Anything, "tester", "qc").
			Return(&model.Asset{ID: 7, QCStatus: model.QCStatusApproved}, nil).Once()

		w := doRequest(router, "POST", "/api/v1/assets/7/qc", `{"action":"approve","score":95}`, "qc")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ReviewAsset_InvalidAction", func(t *testing.T) {
		assetService.On("ReviewAsset", testify_mock.Anything, int64(7), testify_mock.Anything, "tester", "qc").
			Return(nil, backoffice_errors.ErrInvalidQCAction).Once()

		w := doRequest(router, "POST", "/api/v1/assets/7/qc", `{"action":"publish"}`, "qc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ReviewAsset_ConcurrentUpdate", func(t *testing.T) {
		assetService.On("ReviewAsset", testify_mock.Anything, int64(7), testify_mock.Anything, "tester", "qc").
			Return(nil, backoffice_errors.ErrConcurrentUpdate).Once()

		w := doRequest(router, "POST", "/api/v1/assets/7/qc", `{"action":"approve"}`, "qc")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("ReviewAsset_Forbidden", func(t *testing.T) {
		assetService.On("ReviewAsset", testify_mock.Anything, int64(7), testify_mock.Anything, "tester", "user").
			Return(nil, backoffice_errors.ErrPermissionDenied).Once()

		w := doRequest(router, "POST", "/api/v1/assets/7/qc", `{"action":"approve"}`, "user")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("ListAssets_Success", func(t *testing.T) {
		assets := []*model.Asset{{ID: 1}, {ID: 2}}
		assetService.On("ListAssets", testify_mock.Anything, 10, 0).
			Return(assets, nil).Once()

		w := doRequest(router, "GET", "/api/v1/assets", "", "user")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ListPendingQC_Success", func(t *testing.T) {
		assets := []*model.Asset{{ID: 3, QCStatus: model.QCStatusPending}}
		assetService.On("ListPendingQC", testify_mock.Anything).
			Return(assets, nil).Once()

		w := doRequest(router, "GET", "/api/v1/assets/pending-qc", "", "qc")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetHistory_Success", func(t *testing.T) {
		entries := []model.WorkflowLogEntry{{Seq: 2, Action: "submitted"}, {Seq: 1, Action: "created"}}
		assetService.On("GetHistory", testify_mock.Anything, int64(7), true).
			Return(entries, nil).Once()

		w := doRequest(router, "GET", "/api/v1/assets/7/history", "", "user")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("BulkCreateAssets_Success", func(t *testing.T) {
		assetService.On("BulkCreateAssets", testify_mock.Anything, testify_mock.Anything, "tester", "user").
			Return([]int64{1, 2}, nil).Once()

		w := doRequest(router, "POST", "/api/v1/assets/bulk", `[{"name":"a"},{"name":"b"}]`, "user")
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	assetService.AssertExpectations(t)
}

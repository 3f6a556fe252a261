// test/mock/services.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SAHAYOGESHWARAN/guries-sub010/model"
)

// MockAssetService is a mock implementation of service.IAssetService
type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) CreateAsset(ctx context.Context, req model.CreateAssetRequest, userID, role string) (*model.Asset, error) {
	args := m.Called(ctx, req, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) BulkCreateAssets(ctx context.Context, reqs []model.CreateAssetRequest, userID, role string) ([]int64, error) {
	args := m.Called(ctx, reqs, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockAssetService) GetAsset(ctx context.Context, assetID int64) (*model.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) ListAssets(ctx context.Context, limit, offset int) ([]*model.Asset, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Asset), args.Error(1)
}

func (m *MockAssetService) ListPendingQC(ctx context.Context) ([]*model.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Asset), args.Error(1)
}

func (m *MockAssetService) SubmitForQC(ctx context.Context, assetID int64, userID, role string) (*model.Asset, error) {
	args := m.Called(ctx, assetID, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) ReviewAsset(ctx context.Context, assetID int64, req model.QCDecisionRequest, userID, role string) (*model.Asset, error) {
	args := m.Called(ctx, assetID, req, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) GetHistory(ctx context.Context, assetID int64, newestFirst bool) ([]model.WorkflowLogEntry, error) {
	args := m.Called(ctx, assetID, newestFirst)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WorkflowLogEntry), args.Error(1)
}

// MockLinkService is a mock implementation of service.ILinkService
type MockLinkService struct {
	mock.Mock
}

func (m *MockLinkService) LinkToService(ctx context.Context, req model.LinkRequest, userID, role string) (*model.ServiceAssetLink, error) {
	args := m.Called(ctx, req, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceAssetLink), args.Error(1)
}

func (m *MockLinkService) LinkToSubService(ctx context.Context, req model.LinkRequest, userID, role string) (*model.SubServiceAssetLink, error) {
	args := m.Called(ctx, req, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubServiceAssetLink), args.Error(1)
}

func (m *MockLinkService) UnlinkFromService(ctx context.Context, req model.LinkRequest, userID, role string) error {
	args := m.Called(ctx, req, userID, role)
	return args.Error(0)
}

func (m *MockLinkService) UnlinkFromSubService(ctx context.Context, req model.LinkRequest, userID, role string) error {
	args := m.Called(ctx, req, userID, role)
	return args.Error(0)
}

func (m *MockLinkService) ListServiceAssets(ctx context.Context, serviceID int64, visibleOnly bool) ([]model.LinkedAsset, error) {
	args := m.Called(ctx, serviceID, visibleOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LinkedAsset), args.Error(1)
}

func (m *MockLinkService) ListSubServiceAssets(ctx context.Context, subServiceID int64, visibleOnly bool) ([]model.LinkedAsset, error) {
	args := m.Called(ctx, subServiceID, visibleOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LinkedAsset), args.Error(1)
}

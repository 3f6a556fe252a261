// util/cache_service.go

package util

import (
	"context"

	"github.com/SAHAYOGESHWARAN/guries-sub010/db"
	"github.com/SAHAYOGESHWARAN/guries-sub010/model"
)

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetAsset(ctx context.Context, assetID int64) (*model.Asset, error) {
	return db.GetCachedAsset(ctx, assetID)
}

func (c *CacheService) SetAsset(ctx context.Context, asset model.Asset) error {
	return db.CacheAsset(ctx, &asset)
}

func (c *CacheService) DeleteAsset(ctx context.Context, assetID int64) error {
	return db.DeleteCachedAsset(ctx, assetID)
}

func (c *CacheService) GetService(ctx context.Context, serviceID int64) (*model.Service, error) {
	return db.GetCachedService(ctx, serviceID)
}

func (c *CacheService) SetService(ctx context.Context, service model.Service) error {
	return db.CacheService(ctx, &service)
}

func (c *CacheService) DeleteService(ctx context.Context, serviceID int64) error {
	return db.DeleteCachedService(ctx, serviceID)
}

// model/link.go
package model

import "time"

// ServiceAssetLink joins an asset to a service. IsStatic is set at
// creation and never changes; static links survive every unlink path
// short of deleting the owning asset.
type ServiceAssetLink struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	AssetID   int64     `json:"asset_id" gorm:"index:idx_service_asset,unique;not null"`
	ServiceID int64     `json:"service_id" gorm:"index:idx_service_asset,unique;not null"`
	IsStatic  bool      `json:"is_static" gorm:"not null;default:false"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for the ServiceAssetLink model.
func (ServiceAssetLink) TableName() string {
	return "service_asset_links"
}

// SubServiceAssetLink joins an asset to a sub-service.
type SubServiceAssetLink struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	AssetID      int64     `json:"asset_id" gorm:"index:idx_subservice_asset,unique;not null"`
	SubServiceID int64     `json:"sub_service_id" gorm:"index:idx_subservice_asset,unique;not null"`
	IsStatic     bool      `json:"is_static" gorm:"not null;default:false"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for the SubServiceAssetLink model.
func (SubServiceAssetLink) TableName() string {
	return "sub_service_asset_links"
}

// LinkedAsset is one row of a linked-assets listing: the asset joined
// with its link metadata so callers can apply the visibility rule.
type LinkedAsset struct {
	Asset
	LinkIsStatic bool      `json:"link_is_static"`
	LinkedAt     time.Time `json:"linked_at"`
}

// LinkRequest is the body for explicit link/unlink operations.
type LinkRequest struct {
	AssetID      int64 `json:"assetId" binding:"required"`
	ServiceID    int64 `json:"serviceId,omitempty"`
	SubServiceID int64 `json:"subServiceId,omitempty"`
}

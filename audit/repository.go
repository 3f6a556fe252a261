// audit/repository.go
package audit

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LogAction(ctx context.Context, entry Entry) error
	QueryLogs(ctx context.Context, from, to time.Time, userID string, assetID int64) ([]Entry, error)
}

// GormRepository persists audit entries in the qc_audit_log table of
// the primary relational store.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a repository over the given store handle.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// LogAction appends one audit record. Records are never updated.
func (r *GormRepository) LogAction(ctx context.Context, entry Entry) error {
	record := QCAuditRecord{
		AssetID:   entry.AssetID,
		UserID:    entry.UserID,
		Action:    entry.Action,
		Details:   entry.Details,
		Timestamp: entry.Timestamp,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("error inserting audit record: %w", err)
	}
	return nil
}

// QueryLogs returns entries within the time frame, optionally filtered
// by user and asset, newest first.
func (r *GormRepository) QueryLogs(ctx context.Context, from, to time.Time, userID string, assetID int64) ([]Entry, error) {
	query := r.db.WithContext(ctx).
		Model(&QCAuditRecord{}).
		Where("timestamp >= ? AND timestamp <= ?", from, to)

	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if assetID != 0 {
		query = query.Where("asset_id = ?", assetID)
	}

	var records []QCAuditRecord
	if err := query.Order("timestamp DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("error querying audit records: %w", err)
	}

	entries := make([]Entry, len(records))
	for i, rec := range records {
		entries[i] = Entry{
			Timestamp: rec.Timestamp,
			UserID:    rec.UserID,
			Action:    rec.Action,
			AssetID:   rec.AssetID,
			Details:   rec.Details,
		}
	}
	return entries, nil
}

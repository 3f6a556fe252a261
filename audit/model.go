// audit/model.go
package audit

import "time"

// Entry is one status-affecting action recorded for cross-asset
// querying. The per-asset workflow log is stored separately on the
// asset; this table answers "what did reviewer X do last week".
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	AssetID   int64     `json:"asset_id"`
	Details   string    `json:"details,omitempty"`
}

// QCAuditRecord is the persisted form of an Entry.
type QCAuditRecord struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	AssetID   int64     `json:"asset_id" gorm:"index;not null"`
	UserID    string    `json:"user_id" gorm:"index"`
	Action    string    `json:"action" gorm:"not null"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp" gorm:"index;not null"`
}

// TableName returns the database table name for the QCAuditRecord model.
func (QCAuditRecord) TableName() string {
	return "qc_audit_log"
}

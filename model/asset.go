// model/asset.go
package model

import "time"

// QCStatus is the quality-control verdict currently attached to an asset.
type QCStatus string

const (
	QCStatusPending  QCStatus = "Pending"
	QCStatusApproved QCStatus = "Approved"
	QCStatusRejected QCStatus = "Rejected"
	QCStatusRework   QCStatus = "Rework"
)

// WorkflowStage is the coarse-grained pipeline position of an asset.
type WorkflowStage string

const (
	StageAdd     WorkflowStage = "Add"
	StageSubmit  WorkflowStage = "Submit"
	StageQC      WorkflowStage = "QC"
	StageApprove WorkflowStage = "Approve"
	StagePublish WorkflowStage = "Publish"
)

// AssetStatus is the business-facing label shown in the admin UI.
type AssetStatus string

const (
	StatusDraft           AssetStatus = "Draft"
	StatusPendingQC       AssetStatus = "Pending QC"
	StatusPublished       AssetStatus = "Published"
	StatusRejected        AssetStatus = "Rejected"
	StatusReworkRequested AssetStatus = "Rework Requested"
)

// Asset is a digital content unit under QC governance. The content
// fields (Type, Category, Format) are opaque to the workflow engine.
type Asset struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Format   string `json:"format"`

	Status        AssetStatus   `json:"status" gorm:"not null;default:Draft"`
	QCStatus      QCStatus      `json:"qc_status" gorm:"column:qc_status;not null;default:Pending"`
	WorkflowStage WorkflowStage `json:"workflow_stage" gorm:"not null;default:Add"`
	ReworkCount   int           `json:"rework_count" gorm:"not null;default:0"`
	LinkingActive bool          `json:"linking_active" gorm:"not null;default:false"`

	QCReviewerID string     `json:"qc_reviewer_id,omitempty" gorm:"column:qc_reviewer_id"`
	QCReviewedAt *time.Time `json:"qc_reviewed_at,omitempty" gorm:"column:qc_reviewed_at"`
	QCRemarks    string     `json:"qc_remarks,omitempty" gorm:"column:qc_remarks"`
	QCScore      *int       `json:"qc_score,omitempty" gorm:"column:qc_score"`

	// Version backs the conditional UPDATE used for optimistic
	// concurrency on QC transitions.
	Version int64 `json:"version" gorm:"not null;default:0"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	WorkflowLog []WorkflowLogEntry `json:"workflow_log,omitempty" gorm:"foreignKey:AssetID"`
}

// TableName returns the database table name for the Asset model.
func (Asset) TableName() string {
	return "assets"
}

// WorkflowLogEntry is one immutable row of an asset's workflow history.
// Entries are strictly append-only; Seq preserves insertion order.
type WorkflowLogEntry struct {
	ID            int64         `json:"-" gorm:"primaryKey"`
	AssetID       int64         `json:"-" gorm:"index:idx_asset_seq,unique;not null"`
	Seq           int           `json:"seq" gorm:"index:idx_asset_seq,unique;not null"`
	Action        string        `json:"action" gorm:"not null"`
	Timestamp     time.Time     `json:"timestamp" gorm:"not null"`
	UserID        string        `json:"user_id"`
	Status        AssetStatus   `json:"status"`
	WorkflowStage WorkflowStage `json:"workflow_stage"`
	Remarks       string        `json:"remarks,omitempty"`
}

// TableName returns the database table name for the WorkflowLogEntry model.
func (WorkflowLogEntry) TableName() string {
	return "asset_workflow_logs"
}

// CreateAssetRequest is the upload payload. Selecting a service or
// sub-services at upload time produces static links.
type CreateAssetRequest struct {
	Name                string  `json:"name" binding:"required"`
	Type                string  `json:"type"`
	Category            string  `json:"category"`
	Format              string  `json:"format"`
	LinkedServiceID     *int64  `json:"linked_service_id,omitempty"`
	LinkedSubServiceIDs []int64 `json:"linked_sub_service_ids,omitempty"`
}

// QCDecisionRequest carries a reviewer's verdict on a pending asset.
type QCDecisionRequest struct {
	Action  string `json:"action" binding:"required"`
	Remarks string `json:"remarks"`
	Score   *int   `json:"score,omitempty"`
}

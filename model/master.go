// model/master.go
package model

import "time"

// Country master record.
type Country struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Code      string    `json:"code" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for the Country model.
func (Country) TableName() string {
	return "countries"
}

// Platform master record (ad/social platforms assets are produced for).
type Platform struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for the Platform model.
func (Platform) TableName() string {
	return "platforms"
}

// WorkflowStageMaster is the display configuration for a pipeline stage.
type WorkflowStageMaster struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	SortOrder int       `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for the WorkflowStageMaster model.
func (WorkflowStageMaster) TableName() string {
	return "workflow_stage_masters"
}

// QCWeightageConfig assigns review weight percentages to QC criteria.
// The weights of one config must sum to exactly 100.
type QCWeightageConfig struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"uniqueIndex;not null"`
	ContentWeight    int       `json:"content_weight" gorm:"not null"`
	DesignWeight     int       `json:"design_weight" gorm:"not null"`
	SEOWeight        int       `json:"seo_weight" gorm:"column:seo_weight;not null"`
	ComplianceWeight int       `json:"compliance_weight" gorm:"not null"`
	Active           bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName returns the database table name for the QCWeightageConfig model.
func (QCWeightageConfig) TableName() string {
	return "qc_weightage_configs"
}

// WeightSum returns the total of all weight percentages.
func (c QCWeightageConfig) WeightSum() int {
	return c.ContentWeight + c.DesignWeight + c.SEOWeight + c.ComplianceWeight
}

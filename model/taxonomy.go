// model/taxonomy.go
package model

import "time"

// Service is a content taxonomy node owning zero or more asset links.
// The workflow engine reads services but never mutates them.
type Service struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for the Service model.
func (Service) TableName() string {
	return "services"
}

// SubService is a second-level taxonomy node under a service.
type SubService struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	ServiceID   int64     `json:"service_id" gorm:"index;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for the SubService model.
func (SubService) TableName() string {
	return "sub_services"
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resource is a support link shown in the resource directory.
type Resource struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null;size:200" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	URL         string    `gorm:"not null;size:500" json:"url"`
	Category    string    `gorm:"not null;size:100;index" json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate ensures UUID is set before creation
func (r *Resource) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (Resource) TableName() string {
	return "resources"
}
